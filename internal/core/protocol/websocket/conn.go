// Package websocket carries JSON envelopes over gorilla websocket text frames.
package websocket

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

const closeGrace = time.Second

var ErrClosed = errors.New("websocket: connection closed")

// Upgrader is shared by arena servers accepting bots.
var Upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Conn is safe for one reader and any number of writers.
type Conn struct {
	conn   *websocket.Conn
	closed atomic.Bool

	// gorilla allows one concurrent writer
	writeMu sync.Mutex
}

func NewConn(conn *websocket.Conn) *Conn {
	return &Conn{conn: conn}
}

// Dial opens a websocket to url.
func Dial(ctx context.Context, url string) (*Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", url)
	}
	return NewConn(conn), nil
}

// Accept upgrades an HTTP request to a websocket Conn.
func Accept(w http.ResponseWriter, r *http.Request) (*Conn, error) {
	conn, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		return nil, errors.Wrap(err, "upgrade")
	}
	return NewConn(conn), nil
}

func (c *Conn) WriteJSON(v any) error {
	if c.closed.Load() {
		return ErrClosed
	}
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.WriteJSON(v); err != nil {
		return errors.Wrap(err, "write json")
	}
	return nil
}

func (c *Conn) ReadJSON(v any) error {
	if err := c.conn.ReadJSON(v); err != nil {
		if c.closed.Load() {
			return ErrClosed
		}
		return errors.Wrap(err, "read json")
	}
	return nil
}

// Close sends a normal closure frame and closes the socket. Repeated calls
// are no-ops.
func (c *Conn) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	c.writeMu.Lock()
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")
	_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace))
	c.writeMu.Unlock()
	return c.conn.Close()
}

// IsNormalClose reports whether err is the peer hanging up cleanly.
func IsNormalClose(err error) bool {
	return errors.Is(err, ErrClosed) ||
		websocket.IsCloseError(errors.Cause(err), websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
