package cookiekit

import (
	"errors"
	"time"
)

// IMF-fixdate plus the formats RFC 9110 requires accepting for legacy
// senders, and a couple seen in the wild. Two-digit years follow the
// Chrome-style pivot: 0-68 map to 2000-2068, 69-99 to 1969-1999, which is
// exactly how the time package resolves the "06" layout.
var httpDateLayouts = []string{
	"Mon, 02 Jan 2006 15:04:05 GMT",
	"Monday, 02-Jan-06 15:04:05 GMT",
	"Mon, 02-Jan-2006 15:04:05 GMT",
	"Mon Jan _2 15:04:05 2006",
}

// maxExpires is the latest instant representable in a cookie's Expires
// attribute. Serialization clamps to it; parsing rejects anything beyond it.
var maxExpires = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

var errBadDate = errors.New("cookiekit.unparseable_date")

func parseHTTPDate(v string) (time.Time, error) {
	for _, layout := range httpDateLayouts {
		t, err := time.Parse(layout, v)
		if err != nil {
			continue
		}
		t = t.UTC()
		if t.After(maxExpires) {
			return time.Time{}, errBadDate
		}
		return t, nil
	}
	return time.Time{}, errBadDate
}

// formatHTTPDate renders t as an IMF-fixdate, clamping instants past the
// year 9999 to maxExpires. Clamping happens only here: parsed and
// programmatically set values stay untouched in the cookie itself.
func formatHTTPDate(t time.Time) string {
	t = t.UTC()
	if t.After(maxExpires) {
		t = maxExpires
	}
	return t.Format("Mon, 02 Jan 2006 15:04:05 GMT")
}
