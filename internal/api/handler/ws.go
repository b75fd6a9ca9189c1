package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"complaintdesk/backend/internal/config"
	"complaintdesk/backend/internal/livefeed"
	"complaintdesk/backend/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Same-origin staff dashboard only; tighten before serving cross-origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeFeed upgrades an authenticated staff connection to a WebSocket and
// registers it with the live feed hub.
func (h *Handler) ServeFeed(c *gin.Context) {
	token, err := c.Cookie(config.SessionCookieName)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session cookie missing"})
		return
	}

	userID, err := h.Auth.Authorize(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &livefeed.WebSocketClient{
		ID:     uuid.New().String(),
		UserID: userID,
		Conn:   conn,
		Hub:    h.Hub,
		Send:   make(chan models.FeedEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()
}
