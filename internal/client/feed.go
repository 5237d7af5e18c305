package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"student-portal-system/internal/model"
)

var errStreamUnavailable = errors.New("live feed stream unavailable")

// FeedSubscriber delivers near-live feed snapshots. It tries the server's
// event stream once; if that cannot be established it falls back to
// interval polling. The fallback decision is made here, at the boundary,
// not retried throughout the page's lifetime.
type FeedSubscriber struct {
	Client       *Client
	Limit        int
	PollInterval time.Duration
}

func NewFeedSubscriber(c *Client) *FeedSubscriber {
	return &FeedSubscriber{
		Client:       c,
		PollInterval: 30 * time.Second,
	}
}

// Subscribe yields a sequence of post snapshots until ctx is cancelled. The
// channel is closed on teardown.
func (f *FeedSubscriber) Subscribe(ctx context.Context) <-chan []model.PostDTO {
	snapshots := make(chan []model.PostDTO, 1)

	resp, err := f.openStream(ctx)
	if err != nil {
		go f.poll(ctx, snapshots)
		return snapshots
	}

	go f.consumeStream(ctx, resp, snapshots)
	return snapshots
}

func (f *FeedSubscriber) openStream(ctx context.Context) (*resty.Response, error) {
	req := f.Client.stream.R().
		SetContext(ctx).
		SetDoNotParseResponse(true)
	if f.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(f.Limit))
	}

	resp, err := req.Get("/posts/stream")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != 200 {
		_ = resp.RawBody().Close()
		return nil, errStreamUnavailable
	}
	return resp, nil
}

// consumeStream forwards every SSE data frame as a snapshot. A broken
// stream ends the subscription; the page re-subscribes if it still cares.
func (f *FeedSubscriber) consumeStream(ctx context.Context, resp *resty.Response, snapshots chan<- []model.PostDTO) {
	defer close(snapshots)
	body := resp.RawBody()
	defer body.Close()

	go func() {
		// Unblock the scanner when the subscriber goes away.
		<-ctx.Done()
		_ = body.Close()
	}()

	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if !bytes.HasPrefix(line, []byte("data:")) {
			continue
		}
		payload := bytes.TrimSpace(bytes.TrimPrefix(line, []byte("data:")))

		var posts []model.PostDTO
		if err := json.Unmarshal(payload, &posts); err != nil {
			continue
		}
		select {
		case snapshots <- posts:
		case <-ctx.Done():
			return
		}
	}
}

// poll is the fallback path: one immediate snapshot, then one per interval.
func (f *FeedSubscriber) poll(ctx context.Context, snapshots chan<- []model.PostDTO) {
	defer close(snapshots)

	fetch := func() {
		posts, err := f.Client.Posts(ctx, f.Limit)
		if err != nil {
			return
		}
		select {
		case snapshots <- posts:
		case <-ctx.Done():
		}
	}

	fetch()

	ticker := time.NewTicker(f.PollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}
