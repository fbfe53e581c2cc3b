package feed

import "time"

// AvailableSince returns the instant from which the feed for date is
// queryable: midnight UTC of the following day, when the day's event
// records are guaranteed complete.
func AvailableSince(date time.Time) time.Time {
	d := date.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
}

// CheckAvailable rejects requests for dates whose records are not complete
// yet. It runs before any scan so premature requests never reach the store.
// A now exactly at the availability instant passes.
func CheckAvailable(date, now time.Time) error {
	since := AvailableSince(date)
	if now.Before(since) {
		return &NotYetAvailableError{Date: date, AvailableSince: since}
	}
	return nil
}
