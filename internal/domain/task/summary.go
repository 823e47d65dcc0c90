package task

import (
	"math"

	"github.com/guessgame/completionrate/internal/domain/rate"
)

// Summarize counts total and completed tasks and derives the completion
// summary from them. Returns a zero Summary if the slice is empty.
func Summarize(tasks []Task) rate.Summary {
	var completed int
	for i := range tasks {
		if tasks[i].Completed {
			completed++
		}
	}
	return rate.Summarize(toInt32(completed), toInt32(len(tasks)))
}

// toInt32 converts a non-negative count to int32, clamping at the int32
// maximum.
func toInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(n)
}
