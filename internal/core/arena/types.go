package arena

import (
	"iter"

	"github.com/zeusync/arenabot/internal/core/systems/physics"
	"github.com/zeusync/arenabot/pkg/sequence"
)

// ObjectKind classifies a radar contact.
type ObjectKind uint8

const (
	KindWall ObjectKind = iota + 1
	KindBoost
	KindPlayer
)

func (k ObjectKind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBoost:
		return "boost"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// SelfState is the bot's own snapshot, fetched fresh every cycle.
type SelfState struct {
	ID       uint32       `json:"id"`
	Position physics.Vec3 `json:"position"`
	Velocity physics.Vec3 `json:"velocity"`
	Health   uint32       `json:"health"`
	Score    uint32       `json:"score"`
	Armor    uint32       `json:"armor"`
	Dead     bool         `json:"dead"`
}

// ScannedObject is one radar contact. Its Kind never changes for the lifetime
// of the scan it came from.
type ScannedObject struct {
	ID       uint32       `json:"id"`
	Kind     ObjectKind   `json:"kind"`
	Position physics.Vec3 `json:"position"`
}

// IsEnemyOf reports whether o is a player other than self.
func (o ScannedObject) IsEnemyOf(selfID uint32) bool {
	return o.Kind == KindPlayer && o.ID != selfID
}

// Scan is the finite, single-use result of one radar call.
type Scan = iter.Seq[ScannedObject]

// NewScan wraps objects in a Scan that yields nothing once it has been ranged.
func NewScan(objects []ScannedObject) Scan {
	return sequence.Once(objects)
}

// FailReason explains a shot that did not land.
type FailReason uint8

const (
	FailReasonNone FailReason = iota
	FailReasonCooldown
	FailReasonMissed
	FailReasonDead
)

func (r FailReason) String() string {
	switch r {
	case FailReasonNone:
		return "none"
	case FailReasonCooldown:
		return "cooldown"
	case FailReasonMissed:
		return "missed"
	case FailReasonDead:
		return "dead"
	default:
		return "unknown"
	}
}

// ShotResult is the server's verdict on one FireAt call.
type ShotResult struct {
	Success    bool       `json:"success"`
	Damage     uint64     `json:"damage,omitempty"`
	FailReason FailReason `json:"fail_reason,omitempty"`
}
