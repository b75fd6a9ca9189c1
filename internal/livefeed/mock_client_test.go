package livefeed_test

import (
	"sync/atomic"

	"complaintdesk/backend/internal/models"
)

type MockClient struct {
	id          string
	userID      string
	RecvChannel chan models.FeedEvent
	closed      atomic.Bool
}

func newMockClient(id, userID string, buffer int) *MockClient {
	return &MockClient{
		id:          id,
		userID:      userID,
		RecvChannel: make(chan models.FeedEvent, buffer),
	}
}

func (c *MockClient) GetID() string     { return c.id }
func (c *MockClient) GetUserID() string { return c.userID }

func (c *MockClient) GetSendChannel() chan<- models.FeedEvent { return c.RecvChannel }

func (c *MockClient) Run() {
	// Not needed for testing
}

func (c *MockClient) Close() {
	c.closed.Store(true)
}

func (c *MockClient) Closed() bool {
	return c.closed.Load()
}
