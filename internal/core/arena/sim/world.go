// Package sim is an in-memory arena: walls around the border and a few
// inside, healing boosts, and players that move, shoot and die.
package sim

import (
	"context"
	"math"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/systems/physics"
)

// wallClearance keeps players from overlapping a wall post.
const wallClearance = 0.5

type player struct {
	id       uint32
	name     string
	pos      physics.Vec3
	vel      physics.Vec3
	health   uint32
	score    uint32
	dead     bool
	lastShot time.Time
}

func (p *player) state() arena.SelfState {
	return arena.SelfState{
		ID:       p.id,
		Position: p.pos,
		Velocity: p.vel,
		Health:   p.health,
		Score:    p.score,
		Dead:     p.dead,
	}
}

type World struct {
	cfg    Config
	logger log.Log

	mu      sync.Mutex
	rng     *rand.Rand
	now     func() time.Time
	nextID  uint32
	walls   []arena.ScannedObject
	boosts  []arena.ScannedObject
	players map[uint32]*player
}

func NewWorld(cfg Config, logger log.Log) *World {
	w := &World{
		cfg:     cfg,
		logger:  logger.With(log.String("component", "world")),
		rng:     rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x5851f42d4c957f2d)),
		now:     time.Now,
		players: make(map[uint32]*player),
	}
	w.buildWalls()
	for range cfg.Obstacles {
		w.walls = append(w.walls, w.object(arena.KindWall, w.randomPoint()))
	}
	for range cfg.Boosts {
		w.boosts = append(w.boosts, w.object(arena.KindBoost, w.randomPoint()))
	}
	return w
}

func (w *World) Config() Config { return w.cfg }

// Join spawns a new player and returns its session.
func (w *World) Join(name string) *Session {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	p := &player{id: w.nextID, name: name, pos: w.randomPoint(), health: w.cfg.MaxHealth}
	w.players[p.id] = p
	w.logger.Info("player joined", log.String("name", name), log.Uint64("id", uint64(p.id)))
	return &Session{world: w, id: p.id}
}

// Leave removes a player. Unknown ids are ignored.
func (w *World) Leave(id uint32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.players[id]; ok {
		delete(w.players, id)
		w.logger.Info("player left", log.String("name", p.name), log.Uint64("id", uint64(id)))
	}
}

// Players returns a snapshot of every player ordered by id.
func (w *World) Players() []arena.SelfState {
	w.mu.Lock()
	defer w.mu.Unlock()

	out := make([]arena.SelfState, 0, len(w.players))
	for _, id := range w.playerIDs() {
		out = append(out, w.players[id].state())
	}
	return out
}

// Run advances the world every tick until ctx is done.
func (w *World) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Tick)
	defer ticker.Stop()

	last := w.now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			now := w.now()
			w.Step(now.Sub(last))
			last = now
		}
	}
}

// Step integrates movement over dt and applies boost pickups.
func (w *World) Step(dt time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, id := range w.playerIDs() {
		p := w.players[id]
		if p.dead {
			continue
		}
		next := p.pos.Add(p.vel.Flat().Scale(w.cfg.MaxSpeed * dt.Seconds()))
		next.X = clamp(next.X, wallClearance, w.cfg.Width-wallClearance)
		next.Y = clamp(next.Y, wallClearance, w.cfg.Height-wallClearance)
		if !w.blocked(next) {
			p.pos = next
		}
		w.pickup(p)
	}
}

func (w *World) pickup(p *player) {
	if p.health >= w.cfg.MaxHealth {
		return
	}
	for i := range w.boosts {
		if physics.Distance(p.pos, w.boosts[i].Position) >= w.cfg.PickupRadius {
			continue
		}
		p.health = min(p.health+w.cfg.BoostHeal, w.cfg.MaxHealth)
		w.boosts[i].Position = w.randomPoint()
		w.logger.Debug("boost picked up", log.Uint64("id", uint64(p.id)), log.Uint64("health", uint64(p.health)))
		return
	}
}

func (w *World) blocked(pos physics.Vec3) bool {
	for _, wall := range w.walls {
		if physics.Distance(pos, wall.Position) < wallClearance {
			return true
		}
	}
	return false
}

func (w *World) self(id uint32) (arena.SelfState, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	if !ok {
		return arena.SelfState{}, arena.ErrUnknownBot
	}
	return p.state(), nil
}

// scan lists everything within radar range of the player, itself included.
func (w *World) scan(id uint32) ([]arena.ScannedObject, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	if !ok {
		return nil, arena.ErrUnknownBot
	}

	var out []arena.ScannedObject
	inRange := func(pos physics.Vec3) bool {
		return physics.Distance(p.pos, pos) <= w.cfg.RadarRange
	}
	for _, obj := range w.walls {
		if inRange(obj.Position) {
			out = append(out, obj)
		}
	}
	for _, obj := range w.boosts {
		if inRange(obj.Position) {
			out = append(out, obj)
		}
	}
	for _, pid := range w.playerIDs() {
		q := w.players[pid]
		if !q.dead && inRange(q.pos) {
			out = append(out, arena.ScannedObject{ID: q.id, Kind: arena.KindPlayer, Position: q.pos})
		}
	}
	return out, nil
}

func (w *World) setVelocity(id uint32, v physics.Vec3) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	if !ok {
		return arena.ErrUnknownBot
	}
	if p.dead {
		return arena.ErrBotDead
	}
	if l := v.Length2(); l > 1 {
		v = v.Scale(1 / l)
	}
	p.vel = v.Flat()
	return nil
}

// fire hits the nearest living enemy in weapon range whose bearing is within
// the aim tolerance of angleDeg.
func (w *World) fire(id uint32, angleDeg float64) (arena.ShotResult, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, ok := w.players[id]
	if !ok {
		return arena.ShotResult{}, arena.ErrUnknownBot
	}
	if p.dead {
		return arena.ShotResult{FailReason: arena.FailReasonDead}, nil
	}

	now := w.now()
	if !p.lastShot.IsZero() && now.Sub(p.lastShot) < w.cfg.FireCooldown {
		return arena.ShotResult{FailReason: arena.FailReasonCooldown}, nil
	}
	p.lastShot = now

	aim := physics.Radians(angleDeg)
	tolerance := physics.Radians(w.cfg.AimTolerance)
	var target *player
	best := w.cfg.WeaponRange
	for _, qid := range w.playerIDs() {
		q := w.players[qid]
		if q.id == p.id || q.dead {
			continue
		}
		d := physics.Distance(p.pos, q.pos)
		if d >= best || angleBetween(physics.Bearing(p.pos, q.pos), aim) > tolerance {
			continue
		}
		best, target = d, q
	}
	if target == nil {
		return arena.ShotResult{FailReason: arena.FailReasonMissed}, nil
	}

	damage := min(w.cfg.WeaponDamage, uint64(target.health))
	target.health -= uint32(damage)
	if target.health == 0 {
		target.dead = true
		target.vel = physics.Vec3{}
		p.score++
		w.logger.Info("player killed",
			log.Uint64("victim", uint64(target.id)),
			log.Uint64("killer", uint64(p.id)),
		)
	}
	return arena.ShotResult{Success: true, Damage: damage}, nil
}

func (w *World) buildWalls() {
	s := w.cfg.WallSpacing
	for x := 0.0; x <= w.cfg.Width; x += s {
		w.walls = append(w.walls,
			w.object(arena.KindWall, physics.V2(x, 0)),
			w.object(arena.KindWall, physics.V2(x, w.cfg.Height)),
		)
	}
	for y := s; y < w.cfg.Height; y += s {
		w.walls = append(w.walls,
			w.object(arena.KindWall, physics.V2(0, y)),
			w.object(arena.KindWall, physics.V2(w.cfg.Width, y)),
		)
	}
}

func (w *World) object(kind arena.ObjectKind, pos physics.Vec3) arena.ScannedObject {
	w.nextID++
	return arena.ScannedObject{ID: w.nextID, Kind: kind, Position: pos}
}

// randomPoint picks a point at least a tenth of the arena away from the border.
func (w *World) randomPoint() physics.Vec3 {
	mx, my := w.cfg.Width/10, w.cfg.Height/10
	return physics.V2(
		mx+w.rng.Float64()*(w.cfg.Width-2*mx),
		my+w.rng.Float64()*(w.cfg.Height-2*my),
	)
}

func (w *World) playerIDs() []uint32 {
	ids := make([]uint32, 0, len(w.players))
	for id := range w.players {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func angleBetween(a, b float64) float64 {
	return math.Abs(physics.NormalizeAngle(a-b+math.Pi) - math.Pi)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
