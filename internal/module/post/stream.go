package post

import (
	"io"

	"github.com/gin-gonic/gin"

	"student-portal-system/internal/global/feed"
	"student-portal-system/internal/global/response"
)

// Stream serves the live feed as server-sent events: the current snapshot
// immediately, then a fresh snapshot for every feed change. When no change
// channel is available it answers 503 at once so viewers fall back to
// polling rather than hanging on a dead stream.
func Stream(c *gin.Context) {
	limit := feedLimit(c)

	ticks, cancel, err := feed.Subscribe(c.Request.Context())
	if err != nil {
		response.Fail(c, response.ErrUnavailable.WithOrigin(err))
		return
	}
	defer cancel()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	send := func() bool {
		dtos, err := loadFeed(limit)
		if err != nil {
			log.Error("feed snapshot failed", "error", err)
			return false
		}
		c.SSEvent("posts", dtos)
		return true
	}

	if !send() {
		return
	}
	c.Writer.Flush()

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case _, ok := <-ticks:
			if !ok {
				return false
			}
			return send()
		}
	})
}
