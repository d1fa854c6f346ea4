package arena

import "errors"

var (
	ErrNotConnected = errors.New("arena: not connected")
	ErrClosed       = errors.New("arena: connection closed")
	ErrUnknownBot   = errors.New("arena: unknown bot")
	ErrBotDead      = errors.New("arena: bot is dead")
)
