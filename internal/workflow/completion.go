package workflow

import (
	"math"

	"qa-tracker-backend/internal/database/models"
)

// CountCompleted returns how many step flags are set
func CountCompleted(statuses []models.StepStatus) int {
	completed := 0
	for _, s := range statuses {
		if s.Completed {
			completed++
		}
	}
	return completed
}

// CompletionPercentage is round(100 * completed / total), and 0 for an empty step list.
func CompletionPercentage(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// NormalizeStepStatuses aligns flags to a step list of the given length. An empty
// input means nothing was completed.
func NormalizeStepStatuses(statuses []models.StepStatus, steps int) ([]models.StepStatus, bool) {
	if len(statuses) == 0 {
		return make([]models.StepStatus, steps), true
	}
	if len(statuses) != steps {
		return nil, false
	}
	return statuses, true
}
