package timeutil

import "time"

// DateLayout is the YYYY-MM-DD form used for archive names and the manifest.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string as midnight UTC.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats t as YYYY-MM-DD in t's own location, so a build generated in the display
// timezone is archived under that zone's calendar date.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// RetentionCutoff returns midnight UTC of now's calendar date minus days. Dates strictly before
// the cutoff fall outside the retention window.
func RetentionCutoff(now time.Time, days int) time.Time {
	if days < 0 {
		days = 0
	}
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -days)
}

// Expired reports whether the YYYY-MM-DD date lies before the retention cutoff. Unparseable
// dates never expire.
func Expired(date string, now time.Time, days int) bool {
	parsed, err := ParseDate(date)
	if err != nil {
		return false
	}
	return parsed.Before(RetentionCutoff(now, days))
}
