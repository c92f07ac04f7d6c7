package analytics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmerino90/wellness-tracker/models"
)

func moods(levels ...string) []models.MoodEntry {
	entries := make([]models.MoodEntry, 0, len(levels))
	for _, l := range levels {
		entries = append(entries, models.MoodEntry{MoodLevel: l})
	}
	return entries
}

func moodAt(level, ts string) models.MoodEntry {
	t, err := time.Parse(models.TimestampLayout, ts)
	if err != nil {
		panic(err)
	}
	return models.MoodEntry{MoodLevel: level, Timestamp: t}
}

func TestOverview(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.MoodEntry
		want    models.OverviewStats
	}{
		{
			name: "empty",
			want: models.OverviewStats{},
		},
		{
			name:    "non-numeric ignored in stats but counted",
			entries: moods("4", "6", "8", "n/a"),
			want:    models.OverviewStats{Count: 4, Mean: 6, Max: 8, Min: 4},
		},
		{
			name:    "only labels",
			entries: moods("happy", "sad"),
			want:    models.OverviewStats{Count: 2},
		},
		{
			name:    "single value",
			entries: moods("7"),
			want:    models.OverviewStats{Count: 1, Mean: 7, Max: 7, Min: 7},
		},
		{
			name:    "decimals are not integers",
			entries: moods("5.5", "3", " 9 "),
			want:    models.OverviewStats{Count: 3, Mean: 6, Max: 9, Min: 3},
		},
		{
			name:    "negative and zero",
			entries: moods("0", "-2", "2"),
			want:    models.OverviewStats{Count: 3, Mean: 0, Max: 2, Min: -2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overview(tt.entries)
			assert.Equal(t, tt.want.Count, got.Count)
			assert.InDelta(t, tt.want.Mean, got.Mean, 1e-9)
			assert.Equal(t, tt.want.Max, got.Max)
			assert.Equal(t, tt.want.Min, got.Min)
		})
	}
}

func TestMoodDistribution(t *testing.T) {
	got := MoodDistribution(moods("7", "10", "7", "happy", "3"))
	assert.Equal(t, []models.Bucket{
		{Label: "10", Count: 1},
		{Label: "3", Count: 1},
		{Label: "7", Count: 2},
		{Label: "happy", Count: 1},
	}, got)

	assert.Empty(t, MoodDistribution(nil))
}

func TestDailyMoodTrend(t *testing.T) {
	entries := []models.MoodEntry{
		moodAt("6", "2026-05-02 23:59:59"),
		moodAt("8", "2026-05-01 08:00:00"),
		moodAt("4", "2026-05-02 00:00:00"),
		moodAt("bad", "2026-05-01 21:00:00"),
		moodAt("7.5", "2026-05-03 12:00:00"),
	}

	got := DailyMoodTrend(entries)
	require.Len(t, got, 3)

	assert.Equal(t, "2026-05-01", got[0].Date)
	assert.InDelta(t, 4.0, got[0].Average, 1e-9)
	assert.Equal(t, "2026-05-02", got[1].Date)
	assert.InDelta(t, 5.0, got[1].Average, 1e-9)
	assert.Equal(t, "2026-05-03", got[2].Date)
	assert.InDelta(t, 7.5, got[2].Average, 1e-9)

	assert.Empty(t, DailyMoodTrend(nil))
}

func TestDailyMoodTrend_UsesUTCDate(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	entry := models.MoodEntry{MoodLevel: "5", Timestamp: time.Date(2026, 5, 2, 1, 0, 0, 0, loc)}

	got := DailyMoodTrend([]models.MoodEntry{entry})
	require.Len(t, got, 1)
	assert.Equal(t, "2026-05-01", got[0].Date)
}

func TestEnergyHistogram(t *testing.T) {
	tests := []struct {
		name   string
		levels []models.EnergyLevel
		want   []models.Bucket
	}{
		{
			name: "fixed buckets always present",
			want: []models.Bucket{{Label: "low"}, {Label: "medium"}, {Label: "high"}},
		},
		{
			name:   "counts and skips empty",
			levels: []models.EnergyLevel{"high", "low", "high", ""},
			want:   []models.Bucket{{Label: "low", Count: 1}, {Label: "medium"}, {Label: "high", Count: 2}},
		},
		{
			name:   "unknown labels follow sorted",
			levels: []models.EnergyLevel{"wired", "medium", "drained", "wired"},
			want: []models.Bucket{
				{Label: "low"}, {Label: "medium", Count: 1}, {Label: "high"},
				{Label: "drained", Count: 1}, {Label: "wired", Count: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := make([]models.MoodEntry, 0, len(tt.levels))
			for _, l := range tt.levels {
				entries = append(entries, models.MoodEntry{EnergyLevel: l})
			}
			assert.Equal(t, tt.want, EnergyHistogram(entries))
		})
	}
}

func TestEmotionFrequency(t *testing.T) {
	var entries []models.MoodEntry
	add := func(label string, n int) {
		for j := 0; j < n; j++ {
			entries = append(entries, models.MoodEntry{EmotionalContext: label})
		}
	}
	add("calm", 3)
	add("anxious", 5)
	add("", 4)
	add("bored", 3)

	got := EmotionFrequency(entries)
	assert.Equal(t, []models.Bucket{
		{Label: "anxious", Count: 5},
		{Label: "bored", Count: 3},
		{Label: "calm", Count: 3},
	}, got)
}

func TestEmotionFrequency_TopTen(t *testing.T) {
	var entries []models.MoodEntry
	for i := 0; i < 12; i++ {
		for j := 0; j < i+1; j++ {
			entries = append(entries, models.MoodEntry{EmotionalContext: fmt.Sprintf("e%02d", i)})
		}
	}

	got := EmotionFrequency(entries)
	require.Len(t, got, TopEmotions)
	assert.Equal(t, models.Bucket{Label: "e11", Count: 12}, got[0])
	assert.Equal(t, models.Bucket{Label: "e02", Count: 3}, got[TopEmotions-1])
}

func TestHabitCompletionSeries(t *testing.T) {
	habits := []models.Habit{
		{HabitID: 1, HabitName: "Run", IsActive: true},
		{HabitID: 2, HabitName: "Old", IsActive: false},
		{HabitID: 3, HabitName: "Read", IsActive: true},
	}

	rates := map[int64]float64{1: 50, 3: 100.0 / 3}
	got, err := HabitCompletionSeries(habits, func(h models.Habit) (float64, error) {
		return rates[h.HabitID], nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.HabitRate{HabitID: 1, HabitName: "Run", Rate: 50}, got[0])
	assert.Equal(t, int64(3), got[1].HabitID)
	assert.InDelta(t, 33.33, got[1].Rate, 0.01)

	t.Run("error propagates", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := HabitCompletionSeries(habits, func(models.Habit) (float64, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no habits", func(t *testing.T) {
		got, err := HabitCompletionSeries(nil, nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestClampPercent(t *testing.T) {
	assert.Equal(t, 0.0, ClampPercent(-5))
	assert.Equal(t, 42.5, ClampPercent(42.5))
	assert.Equal(t, 100.0, ClampPercent(130))
}
