// Package object defines the things that live on the playfield: the player,
// enemies, projectiles, items and visual effects, all built on Entity.
package object

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/entity"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/rng"
)

// DeathReason tells why an object is due for removal.
type DeathReason int

const (
	Alive DeathReason = iota
	Killed
	RangeOut
	HitPlayer
)

func (r DeathReason) String() string {
	switch r {
	case Alive:
		return "alive"
	case Killed:
		return "killed"
	case RangeOut:
		return "range out"
	case HitPlayer:
		return "hit player"
	}
	return "unknown"
}

// Entity is the physics state shared by everything that moves.
type Entity struct {
	Pos             physics.Vec2
	Velo            physics.Vec2
	Health          int
	Rotation        float64
	AngularVelocity float64
}

// NewEntity returns an entity with one point of health.
func NewEntity(pos, velo physics.Vec2) Entity {
	return Entity{Pos: pos, Velo: velo, Health: 1}
}

// Animate integrates one frame of motion and reports whether the entity
// should be removed. Zero health wins over leaving the playfield, and an
// entity outside the playfield survives as long as it moves back in.
func (e *Entity) Animate(field physics.Playfield) DeathReason {
	e.Pos = e.Pos.Add(e.Velo)
	e.Rotation += e.AngularVelocity
	if e.Health <= 0 {
		return Killed
	}
	if field.Boundary == physics.Wrap {
		field.WrapPosition(&e.Pos)
		return Alive
	}
	if field.Outward(e.Pos, e.Velo) {
		return RangeOut
	}
	return Alive
}

// HitsPlayer tests a bullet-sized box around e against an enemy-sized box
// around the player.
func (e *Entity) HitsPlayer(player *Entity) DeathReason {
	if physics.Square(e.Pos, BulletSize).Overlaps(physics.Square(player.Pos, EnemySize)) {
		return HitPlayer
	}
	return Alive
}

// Spawner queues objects created while a store is being traversed.
type Spawner interface {
	SpawnEnemy(e Enemy)
	SpawnBullet(p Projectile)
}

// UpdateContext provides all the information an object needs during update.
type UpdateContext struct {
	Time    uint32
	Rand    *rng.Xor128
	Field   physics.Playfield
	Player  *Player
	Enemies *entity.Set[Enemy]
	Spawner Spawner
	Log     *log.Logger
}

var discard = log.New(io.Discard)

func (ctx *UpdateContext) logger() *log.Logger {
	if ctx.Log == nil {
		return discard
	}
	return ctx.Log
}
