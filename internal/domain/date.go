package domain

import (
	"fmt"
	"time"
)

// dateLayout pairs a timestamp layout with whether it carries no zone, in
// which case the wall clock is read in the display location.
type dateLayout struct {
	layout string
	local  bool
}

// dateLayouts are tried in order when parsing a remote timestamp.
// Date-only values are read as UTC midnight.
var dateLayouts = []dateLayout{
	{layout: time.RFC3339Nano},
	{layout: "2006-01-02T15:04:05.999999999", local: true},
	{layout: "2006-01-02T15:04", local: true},
	{layout: "2006-01-02"},
}

// ParseDate parses an ISO-8601 timestamp as returned by the GitHub API.
// Date-times without a zone are interpreted in loc; a nil loc means time.Local.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, l := range dateLayouts {
		var (
			t   time.Time
			err error
		)
		if l.local {
			t, err = time.ParseInLocation(l.layout, s, loc)
		} else {
			t, err = time.Parse(l.layout, s)
		}
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// FormatDate renders s as D/M/YYYY in loc, without zero padding.
// A nil loc means time.Local.
func FormatDate(s string, loc *time.Location) (string, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := ParseDate(s, loc)
	if err != nil {
		return "", err
	}
	t = t.In(loc)
	return fmt.Sprintf("%d/%d/%04d", t.Day(), int(t.Month()), t.Year()), nil
}
