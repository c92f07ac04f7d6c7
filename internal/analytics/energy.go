package analytics

import (
	"sort"

	"github.com/mmerino90/wellness-tracker/models"
)

// TopEmotions is the number of buckets EmotionFrequency keeps.
const TopEmotions = 10

// EnergyHistogram counts entries per energy level. low, medium and high are
// always present in that order; any other non-empty label gets its own
// bucket after them, labels ascending. Entries without an energy level are
// skipped.
func EnergyHistogram(entries []models.MoodEntry) []models.Bucket {
	fixed := make(map[models.EnergyLevel]int, len(models.EnergyLevels))
	extra := make(map[string]int)

	for _, e := range entries {
		switch {
		case e.EnergyLevel == "":
		case e.EnergyLevel.Valid():
			fixed[e.EnergyLevel]++
		default:
			extra[string(e.EnergyLevel)]++
		}
	}

	buckets := make([]models.Bucket, 0, len(models.EnergyLevels)+len(extra))
	for _, level := range models.EnergyLevels {
		buckets = append(buckets, models.Bucket{Label: string(level), Count: fixed[level]})
	}
	return append(buckets, sortedBuckets(extra)...)
}

// EmotionFrequency counts entries per non-empty emotional context and keeps
// the TopEmotions most frequent, count descending then label ascending.
func EmotionFrequency(entries []models.MoodEntry) []models.Bucket {
	counts := make(map[string]int)
	for _, e := range entries {
		if e.EmotionalContext == "" {
			continue
		}
		counts[e.EmotionalContext]++
	}

	buckets := sortedBuckets(counts)
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	if len(buckets) > TopEmotions {
		buckets = buckets[:TopEmotions]
	}
	return buckets
}
