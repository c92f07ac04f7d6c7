package store

import (
	"time"

	"github.com/mmerino90/wellness-tracker/models"
)

// timestamp renders t, or the current time when t is zero, in the layout
// the schema stores.
func timestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(models.TimestampLayout)
}

// nowStamp is the current time in the stored layout.
func nowStamp() string {
	return timestamp(time.Time{})
}

// nullable maps an empty string to SQL NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
