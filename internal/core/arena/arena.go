// Package arena describes the narrow contract the bot core needs from the
// arena server: read its own state, scan nearby objects, steer and shoot.
package arena

import "context"

//go:generate go tool mockgen -destination=./mocks/arena_mock.go -package=mocks . Arena

// Arena is the connection abstraction shared by every periodic task.
// Implementations must be safe for concurrent use.
type Arena interface {
	// FetchSelfState returns a fresh snapshot of the bot.
	FetchSelfState(ctx context.Context) (SelfState, error)
	// ScanEnvironment returns all currently visible objects as a single-use Scan.
	ScanEnvironment(ctx context.Context) (Scan, error)
	// SetVelocity is fire-and-forget: no acknowledgment is awaited.
	SetVelocity(ctx context.Context, x, y, z float64) error
	// FireAt shoots at angleDegrees and returns the server's verdict.
	FireAt(ctx context.Context, angleDegrees float64) (ShotResult, error)
}
