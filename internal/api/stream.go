package api

import (
	"io"

	"github.com/gin-gonic/gin"

	"wastesync-backend-go/internal/result"
)

// streamSubscription forwards a live tri-state subscription to the client as
// Server-Sent Events. Each emission becomes one "state" event whose payload
// is the JSON envelope of the Result. The subscription is stopped, and with
// it the backend listener released, as soon as the client disconnects or
// the stream ends, so a torn-down screen can never leak a listener.
func streamSubscription[T any](c *gin.Context, sub *result.Subscription[T]) {
	defer sub.Stop()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case r, ok := <-sub.Updates():
			if !ok {
				return false
			}
			c.SSEvent("state", r)
			return true
		case <-clientGone:
			return false
		}
	})
}
