package server

import (
	"context"

	"github.com/zeusync/arenabot/internal/core/arena/sim"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/protocol"
	"github.com/zeusync/arenabot/pkg/sequence"
)

// ServeConn answers requests on t until the peer hangs up or ctx is done.
// The player joined on this connection leaves when it ends.
func (s *Server) ServeConn(ctx context.Context, t protocol.Transport, remote string) {
	stop := context.AfterFunc(ctx, func() { _ = t.Close() })
	defer stop()
	defer t.Close()

	c := &conn{world: s.world, logger: s.logger.With(log.String("remote", remote))}
	defer c.leave()

	for {
		var req protocol.Request
		if err := t.ReadJSON(&req); err != nil {
			if !protocol.IsNormalClose(err) && ctx.Err() == nil {
				c.logger.Debug("connection read failed", log.Error(err))
			}
			return
		}

		resp := c.handle(ctx, req)
		if req.ID == "" {
			if resp.Error != "" {
				c.logger.Debug("request failed", log.String("op", string(req.Op)), log.String("error", resp.Error))
			}
			continue
		}
		if err := t.WriteJSON(resp); err != nil {
			c.logger.Debug("connection write failed", log.Error(err))
			return
		}
	}
}

type conn struct {
	world  *sim.World
	player *sim.Session
	logger log.Log
}

func (c *conn) leave() {
	if c.player != nil {
		_ = c.player.Close()
	}
}

func (c *conn) handle(ctx context.Context, req protocol.Request) protocol.Response {
	if req.Op == protocol.OpJoin {
		return c.join(ctx, req)
	}
	if c.player == nil {
		return protocol.Failed(req, protocol.CodeNotJoined, "join first")
	}

	resp := protocol.Response{ID: req.ID}
	switch req.Op {
	case protocol.OpSelfState:
		self, err := c.player.FetchSelfState(ctx)
		if err != nil {
			return protocol.Failed(req, protocol.CodeOf(err), err.Error())
		}
		resp.Self = &self

	case protocol.OpScan:
		scan, err := c.player.ScanEnvironment(ctx)
		if err != nil {
			return protocol.Failed(req, protocol.CodeOf(err), err.Error())
		}
		resp.Objects = sequence.FromSeq(scan).Collect()

	case protocol.OpSetVelocity:
		if req.Velocity == nil {
			return protocol.Failed(req, protocol.CodeBadRequest, "missing velocity")
		}
		v := *req.Velocity
		if err := c.player.SetVelocity(ctx, v.X, v.Y, v.Z); err != nil {
			return protocol.Failed(req, protocol.CodeOf(err), err.Error())
		}

	case protocol.OpFire:
		if req.Angle == nil {
			return protocol.Failed(req, protocol.CodeBadRequest, "missing angle")
		}
		shot, err := c.player.FireAt(ctx, *req.Angle)
		if err != nil {
			return protocol.Failed(req, protocol.CodeOf(err), err.Error())
		}
		resp.Shot = &shot

	default:
		return protocol.Failed(req, protocol.CodeUnknownOp, "unknown op "+string(req.Op))
	}
	return resp
}

func (c *conn) join(ctx context.Context, req protocol.Request) protocol.Response {
	switch {
	case c.player != nil:
		return protocol.Failed(req, protocol.CodeBadRequest, "already joined")
	case req.Name == "":
		return protocol.Failed(req, protocol.CodeBadRequest, "missing name")
	}

	c.player = c.world.Join(req.Name)
	c.logger = c.logger.With(log.String("bot", req.Name))
	self, err := c.player.FetchSelfState(ctx)
	if err != nil {
		return protocol.Failed(req, protocol.CodeOf(err), err.Error())
	}
	return protocol.Response{ID: req.ID, Self: &self}
}
