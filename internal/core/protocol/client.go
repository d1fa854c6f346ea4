package protocol

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

const DefaultRequestTimeout = 2 * time.Second

var _ arena.Arena = (*Client)(nil)

// Client is an arena.Arena backed by a remote arena server. Requests are
// correlated with responses by id, so any number of goroutines may call it.
type Client struct {
	transport Transport
	timeout   time.Duration
	logger    log.Log

	mu      sync.Mutex
	pending map[string]chan Response
	readErr error

	done      chan struct{}
	closeOnce sync.Once
}

// NewClient starts the response reader. A timeout <= 0 disables the
// per-request deadline; callers' contexts still apply.
func NewClient(t Transport, timeout time.Duration, logger log.Log) *Client {
	c := &Client{
		transport: t,
		timeout:   timeout,
		logger:    logger.With(log.String("component", "arena_client")),
		pending:   make(map[string]chan Response),
		done:      make(chan struct{}),
	}
	go c.readLoop()
	return c
}

// Connect dials rawURL and joins the arena as name.
func Connect(ctx context.Context, rawURL, name string, timeout time.Duration, logger log.Log) (*Client, arena.SelfState, error) {
	t, err := Dial(ctx, rawURL)
	if err != nil {
		return nil, arena.SelfState{}, fmt.Errorf("%w: %w", arena.ErrNotConnected, err)
	}
	c := NewClient(t, timeout, logger)
	self, err := c.Join(ctx, name)
	if err != nil {
		_ = c.Close()
		return nil, arena.SelfState{}, err
	}
	return c, self, nil
}

// Join registers the bot with the arena. It must succeed before any other
// call.
func (c *Client) Join(ctx context.Context, name string) (arena.SelfState, error) {
	if name == "" {
		return arena.SelfState{}, ErrEmptyName
	}
	resp, err := c.call(ctx, Request{Op: OpJoin, Name: name})
	if err != nil {
		return arena.SelfState{}, err
	}
	if resp.Self == nil {
		return arena.SelfState{}, fmt.Errorf("%w: join without self", ErrMalformedResponse)
	}
	c.logger.Info("joined arena", log.String("name", name), log.Uint64("id", uint64(resp.Self.ID)))
	return *resp.Self, nil
}

func (c *Client) FetchSelfState(ctx context.Context) (arena.SelfState, error) {
	resp, err := c.call(ctx, Request{Op: OpSelfState})
	if err != nil {
		return arena.SelfState{}, err
	}
	if resp.Self == nil {
		return arena.SelfState{}, fmt.Errorf("%w: self_state without self", ErrMalformedResponse)
	}
	return *resp.Self, nil
}

func (c *Client) ScanEnvironment(ctx context.Context) (arena.Scan, error) {
	resp, err := c.call(ctx, Request{Op: OpScan})
	if err != nil {
		return nil, err
	}
	return arena.NewScan(resp.Objects), nil
}

// SetVelocity is fire-and-forget; only local send failures are reported.
func (c *Client) SetVelocity(ctx context.Context, x, y, z float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	v := physics.Vec3{X: x, Y: y, Z: z}
	return c.send(Request{Op: OpSetVelocity, Velocity: &v})
}

func (c *Client) FireAt(ctx context.Context, angleDeg float64) (arena.ShotResult, error) {
	resp, err := c.call(ctx, Request{Op: OpFire, Angle: &angleDeg})
	if err != nil {
		return arena.ShotResult{}, err
	}
	if resp.Shot == nil {
		return arena.ShotResult{}, fmt.Errorf("%w: fire without shot", ErrMalformedResponse)
	}
	return *resp.Shot, nil
}

// Close closes the transport and fails every pending call.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		close(c.done)
		err = c.transport.Close()
	})
	return err
}

// Done is closed once the connection is gone.
func (c *Client) Done() <-chan struct{} { return c.done }

func (c *Client) call(ctx context.Context, req Request) (Response, error) {
	req.ID = uuid.NewString()
	ch := make(chan Response, 1)

	c.mu.Lock()
	if c.isClosed() {
		c.mu.Unlock()
		return Response{}, c.closedErr()
	}
	c.pending[req.ID] = ch
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		delete(c.pending, req.ID)
		c.mu.Unlock()
	}()

	if err := c.send(req); err != nil {
		return Response{}, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	select {
	case resp := <-ch:
		if resp.Error != "" || resp.Code != "" {
			return resp, &RemoteError{Op: req.Op, Code: resp.Code, Message: resp.Error}
		}
		return resp, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Response{}, fmt.Errorf("%w: %s", ErrRequestTimeout, req.Op)
		}
		return Response{}, ctx.Err()
	case <-c.done:
		return Response{}, c.closedErr()
	}
}

func (c *Client) send(req Request) error {
	if c.isClosed() {
		return c.closedErr()
	}
	if err := c.transport.WriteJSON(req); err != nil {
		return fmt.Errorf("%w: send %s: %w", arena.ErrClosed, req.Op, err)
	}
	return nil
}

func (c *Client) readLoop() {
	for {
		var resp Response
		if err := c.transport.ReadJSON(&resp); err != nil {
			c.mu.Lock()
			c.readErr = err
			c.mu.Unlock()
			if !c.isClosed() && !IsNormalClose(err) {
				c.logger.Warn("arena connection lost", log.Error(err))
			}
			_ = c.Close()
			return
		}

		c.mu.Lock()
		ch, ok := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()

		if !ok {
			c.logger.Debug("dropping unsolicited response", log.String("id", resp.ID))
			continue
		}
		ch <- resp
	}
}

func (c *Client) isClosed() bool {
	select {
	case <-c.done:
		return true
	default:
		return false
	}
}

func (c *Client) closedErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil && !IsNormalClose(c.readErr) {
		return fmt.Errorf("%w: %w", arena.ErrClosed, c.readErr)
	}
	return arena.ErrClosed
}
