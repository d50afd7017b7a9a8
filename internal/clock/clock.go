package clock

import "time"

// Location is the fixed UTC+3 offset all dates are recorded in.
// A constant offset, no DST rules.
var Location = time.FixedZone("UTC+3", 3*60*60)

func Now() time.Time {
	return time.Now().In(Location)
}

// Date formats t as the "YYYY-MM-DD" key used for daily records.
func Date(t time.Time) string {
	return t.Format("2006-01-02")
}

// WeekStart returns the date string of the Monday on or before t's
// calendar date. Used as a grouping label only, never for row identity.
func WeekStart(t time.Time) string {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -daysSinceMonday).Format("2006-01-02")
}

// Stamp formats t as the "HH:MM" time of day shown in replies.
func Stamp(t time.Time) string {
	return t.Format("15:04")
}
