package handlers

import (
	"log"
	"net/http"

	"github.com/certitrack/backend/services"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for now
	},
}

// FeedHandler exposes the live record-event feed.
type FeedHandler struct {
	Hub *services.EventHub
}

// HandleWebSocket upgrades the connection and registers the client with the
// event hub. The route sits outside the authenticated API group; a missing
// identity just means an anonymous viewer.
// GET /ws/feed
func (h *FeedHandler) HandleWebSocket(c *gin.Context) {
	if h.Hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Event hub not initialized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("⚠️ WebSocket upgrade failed: %v", err)
		return
	}

	client := services.NewEventClient(h.Hub, conn, currentUserID(c), c.ClientIP())
	h.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}

// GetStats returns event hub statistics
// GET /api/feed/stats
func (h *FeedHandler) GetStats(c *gin.Context) {
	if h.Hub == nil {
		c.JSON(http.StatusOK, gin.H{"enabled": false})
		return
	}

	stats := h.Hub.Stats()
	c.JSON(http.StatusOK, gin.H{
		"enabled":       true,
		"clients":       stats.Clients,
		"eventsRelayed": stats.EventsRelayed,
	})
}
