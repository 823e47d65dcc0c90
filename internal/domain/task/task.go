// Package task holds the task entity the mobile application tracks and the
// aggregation that turns a task list into completion counters.
package task

import "time"

// Task is a single item on a user's task list.
type Task struct {
	ID          int64
	UserID      int64
	Title       string
	Description string
	Completed   bool
	Priority    string
	Deadline    time.Time
	CreatedAt   time.Time
}

// Filter holds optional filter criteria for listing tasks.
// Zero-value fields mean "no filter" for that dimension.
type Filter struct {
	UserID *int64
}

// ForUser returns a Filter restricted to the given user.
func ForUser(userID int64) Filter {
	return Filter{UserID: &userID}
}
