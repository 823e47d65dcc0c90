// Package rate implements the completion-rate calculation shared by the JNI
// library, the analytics service and the CLI.
package rate

import "fmt"

// percent is the scale factor applied to the completed/total ratio.
const percent float32 = 100

// Calculate returns the integer completion percentage of completed over total.
//
// The ratio is computed in single precision and truncated toward zero, so
// 1/3 yields 33 and 2/3 yields 66. A non-positive total yields 0. Inputs are
// not clamped: completed > total produces values above 100 and a negative
// completed count produces a negative result. Counts whose percentage does not
// fit in an int32 are not handled.
func Calculate(completed, total int32) int32 {
	if total <= 0 {
		return 0
	}
	ratio := float32(float32(completed) / float32(total))
	return int32(ratio * percent)
}

// Summary is the set of counters the analytics screen displays.
type Summary struct {
	Total     int32
	Completed int32
	Remaining int32
	Rate      int32
}

// Summarize builds a Summary from the two counters. Remaining is
// total - completed and may be negative when completed exceeds total.
func Summarize(completed, total int32) Summary {
	return Summary{
		Total:     total,
		Completed: completed,
		Remaining: total - completed,
		Rate:      Calculate(completed, total),
	}
}

// Label renders the rate the way the analytics screen shows it, for example
// "Completion Rate: 66%".
func (s Summary) Label() string {
	return fmt.Sprintf("Completion Rate: %d%%", s.Rate)
}
