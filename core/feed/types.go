package feed

// UserSet is a set of pseudonymous user identifiers. Events carry each user
// at most once per output regardless of how many rows mention them.
type UserSet map[string]struct{}

// Add inserts id into the set.
func (s UserSet) Add(id string) {
	s[id] = struct{}{}
}

// Contains reports whether id is a member of the set.
func (s UserSet) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Values returns the members in unspecified order.
func (s UserSet) Values() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	return out
}

// SubscriptionsFeed is the reconciled daily feed for one service: the users
// who became subscribed on the date and the users who unsubscribed. Element
// order within the slices is unspecified; both are always present (possibly
// empty) in the JSON rendering.
type SubscriptionsFeed struct {
	// DateUTC is the feed date in YYYY-MM-DD.
	DateUTC string `json:"dateUTC"`
	// Subscriptions lists users who became subscribed on the date.
	Subscriptions []string `json:"subscriptions"`
	// Unsubscriptions lists users who unsubscribed on the date without a
	// same-day profile creation.
	Unsubscriptions []string `json:"unsubscriptions"`
}
