// Package feed is the change-notification channel behind the live post
// stream. Writers publish a "changed" event after every post mutation;
// stream handlers subscribe and re-read the feed on each event. Redis
// pub/sub carries the events; without Redis, Subscribe fails fast so the
// caller can fall back to polling.
package feed

import (
	"context"
	"errors"
	"log/slog"

	"student-portal-system/internal/global/database"
)

const channel = "portal:feed:changed"

// ErrUnavailable means no change channel is configured; viewers should
// poll instead.
var ErrUnavailable = errors.New("feed change channel unavailable")

// Publish signals that the posts collection changed. Best effort: a dead
// channel only degrades liveness, so failures are logged and swallowed.
func Publish(ctx context.Context, log *slog.Logger) {
	if database.RDB == nil {
		return
	}
	if err := database.RDB.Publish(ctx, channel, "changed").Err(); err != nil {
		log.Warn("feed publish failed", "error", err)
	}
}

// Subscribe returns a channel that receives a tick for every feed change.
// The returned cancel function tears the subscription down; it is safe to
// call more than once.
func Subscribe(ctx context.Context) (<-chan struct{}, func(), error) {
	if database.RDB == nil {
		return nil, nil, ErrUnavailable
	}

	sub := database.RDB.Subscribe(ctx, channel)
	// Force the subscription onto the wire before reporting success.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, err
	}

	ticks := make(chan struct{}, 1)
	done := make(chan struct{})

	go func() {
		defer close(ticks)
		ch := sub.Channel()
		for {
			select {
			case <-done:
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				// Coalesce bursts: one pending tick is enough.
				select {
				case ticks <- struct{}{}:
				default:
				}
			}
		}
	}()

	var closed bool
	cancel := func() {
		if closed {
			return
		}
		closed = true
		close(done)
		_ = sub.Close()
	}
	return ticks, cancel, nil
}
