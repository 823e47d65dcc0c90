// Package task implements the Anti-Corruption Layer translators for the
// downstream task API's task resources.
package task

// TaskDTO matches the task objects returned by GET /tasks. The API uses
// camelCase keys and encodes timestamps as strings.
type TaskDTO struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"userId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
	CreatedAt   string `json:"createdAt"`
}
