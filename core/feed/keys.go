package feed

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout is the canonical YYYY-MM-DD rendering used in partition keys
// and in the feed payload. All dates are UTC calendar days.
const DateLayout = "2006-01-02"

// time.Parse alone accepts some non-canonical spellings (e.g. "2021-5-1"),
// so the shape is pinned first.
var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ParseDate validates a YYYY-MM-DD string as a real calendar date and
// returns it as a UTC midnight instant.
func ParseDate(s string) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q does not match YYYY-MM-DD", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a valid calendar date: %w", s, err)
	}
	return t, nil
}

// FormatDate renders an instant as the canonical YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ProfileCreationsKey returns the partition key of the global profile
// creation stream for a date. Profile creations are not service scoped.
func ProfileCreationsKey(date time.Time) string {
	return "P-" + FormatDate(date)
}

// ServiceSubscriptionsKey returns the partition key of the explicit
// subscribe stream for a date and service.
func ServiceSubscriptionsKey(date time.Time, serviceID string) string {
	return fmt.Sprintf("S-%s-%s-S", FormatDate(date), serviceID)
}

// ServiceUnsubscriptionsKey returns the partition key of the explicit
// unsubscribe stream for a date and service.
func ServiceUnsubscriptionsKey(date time.Time, serviceID string) string {
	return fmt.Sprintf("S-%s-%s-U", FormatDate(date), serviceID)
}
