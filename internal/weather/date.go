package weather

import (
	"fmt"
	"strings"
	"time"
)

const displayDateLayout = "Monday 02 January 2006"

// timestampLayouts lists the ISO-8601 shapes accepted by ParseTimestamp, most common first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp.
//
// The UTC offset, when present, is kept as the location of the returned time,
// so the calendar date is the one written in the input.
func ParseTimestamp(iso string) (time.Time, error) {
	s := strings.TrimSpace(iso)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, iso)
}

// FormatDate turns an ISO-8601 timestamp into "Weekday DD Month YYYY",
// e.g. "2021-07-05T07:00:00+08:00" becomes "Monday 05 July 2021".
func FormatDate(iso string) (string, error) {
	t, err := ParseTimestamp(iso)
	if err != nil {
		return "", err
	}
	return t.Format(displayDateLayout), nil
}
