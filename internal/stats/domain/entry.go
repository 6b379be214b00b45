// Package domain defines the daily completion statistics model.
package domain

import "time"

// DateLayout is the calendar-day key for a stats entry.
const DateLayout = "2006-01-02"

// DailyEntry counts the tasks completed on one calendar day (UTC).
type DailyEntry struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completedCount"`
}

// Day formats a point in time as a stats date key.
func Day(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
