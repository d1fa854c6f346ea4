package protocol

import (
	"context"
	"fmt"
	"net/url"

	"github.com/zeusync/arenabot/internal/core/protocol/quic"
	"github.com/zeusync/arenabot/internal/core/protocol/websocket"
)

// Transport moves JSON envelopes. ReadJSON is called from one goroutine;
// WriteJSON may be called concurrently.
type Transport interface {
	WriteJSON(v any) error
	ReadJSON(v any) error
	Close() error
}

var (
	_ Transport = (*websocket.Conn)(nil)
	_ Transport = (*quic.Conn)(nil)
)

// Dial picks a transport from the URL scheme: ws and wss use websocket,
// quic uses QUIC on the URL's host:port.
func Dial(ctx context.Context, rawURL string) (Transport, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse server url: %w", err)
	}
	switch u.Scheme {
	case "ws", "wss":
		conn, err := websocket.Dial(ctx, rawURL)
		if err != nil {
			return nil, err
		}
		return conn, nil
	case "quic":
		conn, err := quic.Dial(ctx, u.Host)
		if err != nil {
			return nil, err
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, u.Scheme)
	}
}

// IsNormalClose reports whether err is a clean hang-up on either transport.
func IsNormalClose(err error) bool {
	return websocket.IsNormalClose(err) || quic.IsNormalClose(err)
}
