// Package analytics holds the pure aggregations behind the dashboard:
// overview statistics, mood distribution and trend, habit completion
// series, energy histogram and emotion frequency.
//
// Functions never touch storage and never mutate their input. Mood levels
// are free text, so every aggregation states how it treats non-numeric
// values.
package analytics
