package services

import "time"

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// windowStart is the start of an N-day window ending today.
func windowStart(days int) time.Time {
	return dayStart(time.Now().AddDate(0, 0, -days))
}

// weekStart truncates to the Monday of t's week at midnight.
func weekStart(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	return dayStart(t).AddDate(0, 0, -(wd - 1))
}

func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
