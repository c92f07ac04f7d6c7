package models

import "time"

const (
	// DateLayout is the layout of calendar dates as stored and compared.
	DateLayout = time.DateOnly

	// TimestampLayout is the layout the application writes timestamps in.
	TimestampLayout = time.DateTime
)

// DateOf returns the UTC calendar date of t.
func DateOf(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DateRange is an inclusive span of UTC calendar days in "2006-01-02" form.
type DateRange struct {
	Start string
	End   string
}
