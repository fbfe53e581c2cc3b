package feed

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Reconciler reconstructs the daily subscriptions feed of a service from
// the three event streams recorded for a date: global profile creations,
// explicit subscribes and explicit unsubscribes.
type Reconciler struct {
	collector *UserSetCollector
	logger    *zap.Logger
}

// NewReconciler returns a reconciler reading streams through collector.
func NewReconciler(collector *UserSetCollector, logger *zap.Logger) *Reconciler {
	return &Reconciler{collector: collector, logger: logger}
}

// Reconcile computes the feed for date and serviceID.
//
// The three stream reads share no state and run concurrently. Their sets
// combine with unsubscribe precedence for profile-derived members:
//
//	subscriptions   = (profiles - unsubscribed) union (subscribed - profiles)
//	unsubscriptions = unsubscribed - profiles
//
// A user whose profile was created on the date counts as subscribed to
// every service unless they unsubscribed from this one the same day, and
// an explicit subscribe only counts when the user is not already covered
// by a profile creation, so nobody is reported twice within a slice. A
// user who created their profile and unsubscribed the same day is in
// neither slice. Any failed stream read aborts with its *StoreQueryError.
func (r *Reconciler) Reconcile(ctx context.Context, date time.Time, serviceID string) (*SubscriptionsFeed, error) {
	var (
		profileSet UserSet
		subSet     UserSet
		unsubSet   UserSet
		profileErr error
		subErr     error
		unsubErr   error
		wg         sync.WaitGroup
	)

	// Collect the three streams concurrently
	wg.Add(3)

	go func() {
		defer wg.Done()
		profileSet, profileErr = r.collector.Collect(ctx, ProfileCreationsKey(date))
	}()

	go func() {
		defer wg.Done()
		subSet, subErr = r.collector.Collect(ctx, ServiceSubscriptionsKey(date, serviceID))
	}()

	go func() {
		defer wg.Done()
		unsubSet, unsubErr = r.collector.Collect(ctx, ServiceUnsubscriptionsKey(date, serviceID))
	}()

	wg.Wait()

	// Check for errors
	if profileErr != nil {
		return nil, profileErr
	}
	if subErr != nil {
		return nil, subErr
	}
	if unsubErr != nil {
		return nil, unsubErr
	}

	subscriptions := make([]string, 0, len(profileSet)+len(subSet))
	for id := range profileSet {
		if !unsubSet.Contains(id) {
			subscriptions = append(subscriptions, id)
		}
	}
	for id := range subSet {
		if !profileSet.Contains(id) {
			subscriptions = append(subscriptions, id)
		}
	}

	unsubscriptions := make([]string, 0, len(unsubSet))
	for id := range unsubSet {
		if !profileSet.Contains(id) {
			unsubscriptions = append(unsubscriptions, id)
		}
	}

	r.logger.Debug("Feed reconciled",
		zap.String("date", FormatDate(date)),
		zap.String("service_id", serviceID),
		zap.Int("profile_creations", len(profileSet)),
		zap.Int("subscribe_events", len(subSet)),
		zap.Int("unsubscribe_events", len(unsubSet)),
		zap.Int("subscriptions", len(subscriptions)),
		zap.Int("unsubscriptions", len(unsubscriptions)),
	)

	return &SubscriptionsFeed{
		DateUTC:         FormatDate(date),
		Subscriptions:   subscriptions,
		Unsubscriptions: unsubscriptions,
	}, nil
}
