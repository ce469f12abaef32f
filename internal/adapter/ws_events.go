package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-tunnel-keeper/models"
)

// eventFrame is one message on the daemon's websocket event feed.
type eventFrame struct {
	State    string `json:"state"`
	ServerID string `json:"server_id"`
}

// StreamEvents dials the daemon's websocket feed and converts incoming frames
// into connection-state events. The returned channel closes when ctx is
// cancelled or the feed drops.
func (d *httpDaemonAdapter) StreamEvents(ctx context.Context) (<-chan models.Event, error) {
	wsURL := toWebsocketURL(d.baseURL) + "/v1/events"

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: dial event feed: %v", ErrDaemonUnavailable, err)
	}

	out := make(chan models.Event, 16)

	// Closing the connection on ctx cancellation unblocks the read loop.
	go func() {
		<-ctx.Done()
		_ = conn.Close()
	}()

	go func() {
		defer close(out)
		defer conn.Close()

		for {
			var frame eventFrame
			if err := conn.ReadJSON(&frame); err != nil {
				if ctx.Err() == nil {
					d.log.Warn().Err(err).Msg("daemon event feed dropped")
				}
				return
			}

			select {
			case out <- models.NewConnectionStateChangedEvent(models.ConnectionState(frame.State)):
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

func toWebsocketURL(baseURL string) string {
	switch {
	case strings.HasPrefix(baseURL, "https://"):
		return "wss://" + strings.TrimPrefix(baseURL, "https://")
	case strings.HasPrefix(baseURL, "http://"):
		return "ws://" + strings.TrimPrefix(baseURL, "http://")
	default:
		return "ws://" + baseURL
	}
}
