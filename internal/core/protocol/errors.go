package protocol

import (
	"errors"
	"fmt"

	"github.com/zeusync/arenabot/internal/core/arena"
)

var (
	ErrRequestTimeout    = errors.New("protocol: request timed out")
	ErrMalformedResponse = errors.New("protocol: malformed response")
	ErrUnsupportedScheme = errors.New("protocol: unsupported url scheme")
	ErrEmptyName         = errors.New("protocol: empty bot name")
)

// ErrorCode classifies a server-side failure.
type ErrorCode string

const (
	CodeBadRequest ErrorCode = "bad_request"
	CodeUnknownOp  ErrorCode = "unknown_op"
	CodeNotJoined  ErrorCode = "not_joined"
	CodeDead       ErrorCode = "dead"
	CodeInternal   ErrorCode = "internal"
)

// RemoteError is an error reported by the arena server.
type RemoteError struct {
	Op      Op
	Code    ErrorCode
	Message string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("protocol: %s failed: %s (%s)", e.Op, e.Message, e.Code)
}

// Is maps server codes onto arena sentinels.
func (e *RemoteError) Is(target error) bool {
	switch e.Code {
	case CodeNotJoined:
		return target == arena.ErrNotConnected
	case CodeDead:
		return target == arena.ErrBotDead
	default:
		return false
	}
}

// CodeOf picks the wire code for an error returned by an arena implementation.
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, arena.ErrBotDead):
		return CodeDead
	case errors.Is(err, arena.ErrNotConnected), errors.Is(err, arena.ErrUnknownBot):
		return CodeNotJoined
	default:
		return CodeInternal
	}
}
