package task

import (
	"strings"
	"time"

	"github.com/guessgame/completionrate/internal/domain/task"
)

// timeLayouts lists the timestamp encodings seen from the task API, most
// common first. Deadlines entered on the device are sent without seconds.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ToDomainTask converts a downstream TaskDTO to a domain Task. Unparseable
// timestamps become the zero time; they never affect completion counts.
func ToDomainTask(dto *TaskDTO) task.Task {
	return task.Task{
		ID:          dto.ID,
		UserID:      dto.UserID,
		Title:       dto.Title,
		Description: dto.Description,
		Completed:   dto.Completed,
		Priority:    strings.ToLower(strings.TrimSpace(dto.Priority)),
		Deadline:    parseTime(dto.Deadline),
		CreatedAt:   parseTime(dto.CreatedAt),
	}
}

// ToDomainTaskList converts the downstream task array to domain tasks.
func ToDomainTaskList(dtos []TaskDTO) []task.Task {
	tasks := make([]task.Task, len(dtos))
	for i := range dtos {
		tasks[i] = ToDomainTask(&dtos[i])
	}
	return tasks
}

func parseTime(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
