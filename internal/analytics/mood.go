package analytics

import (
	"sort"

	"github.com/mmerino90/wellness-tracker/models"
)

// Overview counts every entry and computes mean, max and min over the
// integer-parsable levels only. Without numeric entries the statistics
// are zero.
func Overview(entries []models.MoodEntry) models.OverviewStats {
	stats := models.OverviewStats{Count: len(entries)}

	var sum, numeric int
	for _, e := range entries {
		level, ok := e.IntLevel()
		if !ok {
			continue
		}
		if numeric == 0 || level > stats.Max {
			stats.Max = level
		}
		if numeric == 0 || level < stats.Min {
			stats.Min = level
		}
		sum += level
		numeric++
	}

	if numeric > 0 {
		stats.Mean = float64(sum) / float64(numeric)
	}
	return stats
}

// MoodDistribution counts entries per raw mood level, labels ascending.
func MoodDistribution(entries []models.MoodEntry) []models.Bucket {
	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.MoodLevel]++
	}
	return sortedBuckets(counts)
}

// DailyMoodTrend averages the levels of each UTC calendar day, dates
// ascending. Non-numeric levels count as 0.
func DailyMoodTrend(entries []models.MoodEntry) []models.DailyAverage {
	type acc struct {
		sum float64
		n   int
	}

	days := make(map[string]*acc)
	for _, e := range entries {
		d := e.Day()
		a, ok := days[d]
		if !ok {
			a = &acc{}
			days[d] = a
		}
		a.sum += e.FloatLevel()
		a.n++
	}

	trend := make([]models.DailyAverage, 0, len(days))
	for d, a := range days {
		trend = append(trend, models.DailyAverage{Date: d, Average: a.sum / float64(a.n)})
	}
	sort.Slice(trend, func(i, j int) bool { return trend[i].Date < trend[j].Date })
	return trend
}

func sortedBuckets(counts map[string]int) []models.Bucket {
	buckets := make([]models.Bucket, 0, len(counts))
	for label, n := range counts {
		buckets = append(buckets, models.Bucket{Label: label, Count: n})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Label < buckets[j].Label })
	return buckets
}
