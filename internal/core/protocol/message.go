package protocol

import (
	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

// Op names a request kind on the wire.
type Op string

const (
	OpJoin        Op = "join"
	OpSelfState   Op = "self_state"
	OpScan        Op = "scan"
	OpSetVelocity Op = "set_velocity"
	OpFire        Op = "fire"
)

// Request is a client to server envelope. A request without an ID is
// fire-and-forget and gets no Response.
type Request struct {
	ID       string        `json:"id,omitempty"`
	Op       Op            `json:"op"`
	Name     string        `json:"name,omitempty"`
	Velocity *physics.Vec3 `json:"velocity,omitempty"`
	Angle    *float64      `json:"angle,omitempty"` // degrees
}

// Response answers the Request with the same ID.
type Response struct {
	ID      string                `json:"id"`
	Code    ErrorCode             `json:"code,omitempty"`
	Error   string                `json:"error,omitempty"`
	Self    *arena.SelfState      `json:"self,omitempty"`
	Objects []arena.ScannedObject `json:"objects,omitempty"`
	Shot    *arena.ShotResult     `json:"shot,omitempty"`
}

// Failed builds an error response for req.
func Failed(req Request, code ErrorCode, msg string) Response {
	return Response{ID: req.ID, Code: code, Error: msg}
}
