package controller

import (
	"io"

	"github.com/gin-gonic/gin"
)

// sseStream pipes messages from a channel into an SSE connection until
// the channel closes or the client disconnects.
func sseStream(event string, ch <-chan []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		c.Stream(func(w io.Writer) bool {
			select {
			case msg, ok := <-ch:
				if !ok {
					return false
				}
				c.SSEvent(event, string(msg))
				c.Writer.Flush()
				return true
			case <-c.Request.Context().Done():
				return false
			}
		})
	}
}

// SSECrypto godoc
// @Summary Stream watchlist and portfolio refreshes
// @Description Server-Sent Events carrying refreshed collection snapshots.
// @Tags crypto
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Router /api/crypto/stream [get]
func SSECrypto(ch <-chan []byte) gin.HandlerFunc {
	return sseStream("crypto", ch)
}

// SSENotifications godoc
// @Summary Stream alert notifications
// @Description Server-Sent Events the panel turns into browser notifications.
// @Tags notifications
// @Produce text/event-stream
// @Success 200 {string} string "SSE stream"
// @Router /api/notifications/stream [get]
func SSENotifications(ch <-chan []byte) gin.HandlerFunc {
	return sseStream("notification", ch)
}
