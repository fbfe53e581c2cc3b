package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/alexgpeppe/io-functions-services/core/eventstore"
)

// Client is a mock implementation of eventstore.Client
type Client struct {
	mock.Mock
}

func (m *Client) QueryPage(ctx context.Context, partitionKey string, token eventstore.ContinuationToken, pageSize int) ([]eventstore.UserEvent, eventstore.ContinuationToken, error) {
	args := m.Called(ctx, partitionKey, token, pageSize)
	var events []eventstore.UserEvent
	if v, ok := args.Get(0).([]eventstore.UserEvent); ok {
		events = v
	}
	var next eventstore.ContinuationToken
	if v, ok := args.Get(1).(eventstore.ContinuationToken); ok {
		next = v
	} else if s, ok := args.Get(1).(string); ok {
		next = eventstore.ContinuationToken(s)
	}
	return events, next, args.Error(2)
}
