package inpaint

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gorilla/websocket"
)

// Notification is one backend push message. The backend streams job
// lifecycle events (queued, step progress, finished, errored) over a single
// master websocket shared by all jobs.
type Notification struct {
	Type string `json:"type"`
	Data struct {
		ID      string  `json:"id,omitempty"`
		Step    int     `json:"step,omitempty"`
		Steps   int     `json:"steps,omitempty"`
		Message string  `json:"message,omitempty"`
		Time    float64 `json:"time,omitempty"`
	} `json:"data"`
}

// Notifications subscribes to the backend's notification websocket. The
// returned channel closes when ctx is canceled or the connection drops;
// the caller ranges over it for step/total progress of in-flight jobs.
func (c *Client) Notifications(ctx context.Context) (<-chan Notification, error) {
	wsURL := *c.base.JoinPath("api", "websockets", "master")
	switch wsURL.Scheme {
	case "http":
		wsURL.Scheme = "ws"
	case "https":
		wsURL.Scheme = "wss"
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("inpaint: unsupported scheme %q for websocket", wsURL.Scheme)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("inpaint: dial %s: %w", redacted(wsURL), err)
	}
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}

	ch := make(chan Notification)
	go func() {
		// Unblock the read loop on cancellation.
		<-ctx.Done()
		_ = conn.Close()
	}()
	go func() {
		defer close(ch)
		defer func() { _ = conn.Close() }()
		for {
			var n Notification
			if err := conn.ReadJSON(&n); err != nil {
				if ctx.Err() == nil {
					c.log.Warn("inpaint: notification stream closed", "err", err)
				}
				return
			}
			select {
			case ch <- n:
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, nil
}

func redacted(u url.URL) string {
	u.User = nil
	return u.String()
}
