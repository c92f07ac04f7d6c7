package analytics

import (
	"fmt"

	"github.com/mmerino90/wellness-tracker/models"
)

// RateFunc computes the completion rate of a habit in percent.
type RateFunc func(models.Habit) (float64, error)

// HabitCompletionSeries pairs every active habit with its completion rate,
// preserving the input order. The first rate error aborts the series.
func HabitCompletionSeries(habits []models.Habit, rate RateFunc) ([]models.HabitRate, error) {
	series := make([]models.HabitRate, 0, len(habits))
	for _, h := range habits {
		if !h.IsActive {
			continue
		}
		r, err := rate(h)
		if err != nil {
			return nil, fmt.Errorf("completion rate of habit %d: %w", h.HabitID, err)
		}
		series = append(series, models.HabitRate{HabitID: h.HabitID, HabitName: h.HabitName, Rate: r})
	}
	return series, nil
}

// ClampPercent limits p to [0, 100].
func ClampPercent(p float64) float64 {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
