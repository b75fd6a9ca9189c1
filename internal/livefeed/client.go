package livefeed

import "complaintdesk/backend/internal/models"

// Client is the interface for one connected feed subscriber. It abstracts the
// underlying transport so the hub can manage connections uniformly.
type Client interface {
	// GetID returns the unique identifier of this connection. One staff
	// user may hold several connections (several open tabs).
	GetID() string
	// GetUserID returns the staff user the connection belongs to.
	GetUserID() string

	// GetSendChannel returns the channel the hub pushes feed events into.
	GetSendChannel() chan<- models.FeedEvent

	// Run starts the client's read and write pumps.
	Run()
	// Close shuts down the client's send channel and connection.
	Close()
}
