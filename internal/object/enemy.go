package object

import (
	"fmt"
	"math"

	"github.com/tomz197/shooter/internal/physics"
)

// EnemyKind selects the enemy variant.
type EnemyKind int

const (
	Enemy1 EnemyKind = iota
	Boss
	ShieldedBoss
	SpiralEnemy
	Centipede

	EnemyKindCount = 5
)

func (k EnemyKind) String() string {
	switch k {
	case Enemy1:
		return "enemy1"
	case Boss:
		return "boss"
	case ShieldedBoss:
		return "shielded_boss"
	case SpiralEnemy:
		return "spiral_enemy"
	case Centipede:
		return "centipede"
	}
	return fmt.Sprintf("EnemyKind(%d)", int(k))
}

// ParseEnemyKind is the inverse of EnemyKind.String.
func ParseEnemyKind(s string) (EnemyKind, error) {
	for k := EnemyKind(0); k < EnemyKindCount; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown enemy kind %q", s)
}

// Enemy is a hostile object. Kind selects which of the variant fields apply:
// Shield for ShieldedBoss, Body for Centipede.
type Enemy struct {
	Entity
	Kind EnemyKind
	// PredictedDamage is the damage already reserved by homing missiles in flight.
	PredictedDamage int
	Shield          int
	Body            CentipedeBody
}

// NewEnemy creates an enemy of kind k with that kind's starting health.
func NewEnemy(k EnemyKind, pos, velo physics.Vec2) Enemy {
	e := Enemy{Entity: NewEntity(pos, velo), Kind: k}
	switch k {
	case Enemy1:
		e.Health = Enemy1Health
	case Boss:
		e.Health = BossHealth
	case ShieldedBoss:
		e.Health = BossHealth
		e.Shield = ShieldMax
	case SpiralEnemy:
		e.Health = SpiralEnemyHealth
	case Centipede:
		e.Body = newCentipedeBody(pos, velo, CentipedeJoints)
	}
	return e
}

// IsBoss reports whether e is a boss of either kind.
func (e *Enemy) IsBoss() bool {
	return e.Kind == Boss || e.Kind == ShieldedBoss
}

// TotalHealth is the damage needed to destroy e, ignoring any shield.
func (e *Enemy) TotalHealth() int {
	if e.Kind == Centipede {
		return e.Body.health()
	}
	return e.Health
}

// BoundingBox returns the enemy's hit box. A shielded boss's box shrinks with
// its shield but never below a regular enemy's.
func (e *Enemy) BoundingBox() physics.Rect {
	switch e.Kind {
	case ShieldedBoss:
		return physics.Square(e.Pos, math.Max(float64(e.Shield), EnemySize))
	case Centipede:
		return e.Body.bounds(e.Pos)
	}
	return physics.Square(e.Pos, EnemySize)
}

// TestHit reports whether rect overlaps e. A centipede is hit anywhere
// inside the box around its body; Damage then picks the joint or chips the
// head.
func (e *Enemy) TestHit(rect physics.Rect) bool {
	return e.BoundingBox().Overlaps(rect)
}

// Damage applies amount points of damage delivered through rect. A centipede
// cut in two hands its trailing part to sp.
func (e *Enemy) Damage(amount int, rect physics.Rect, sp Spawner) {
	switch e.Kind {
	case Enemy1, Boss, SpiralEnemy:
		e.Health -= amount
	case ShieldedBoss:
		if e.Shield < ShieldLeakBelow {
			e.Health -= amount
		} else {
			e.Shield = max(e.Shield-amount, 0)
		}
	case Centipede:
		e.damageCentipede(amount, rect, sp)
	}
}

// Score is the reward for destroying e.
func (e *Enemy) Score() int {
	if e.IsBoss() {
		return ScoreBoss
	}
	return ScoreEnemy
}

// DropItem returns the item left behind when e is destroyed.
func (e *Enemy) DropItem(drift float64) Item {
	kind := PowerUp10
	if e.Kind == Enemy1 {
		kind = PowerUp
	}
	return NewItem(kind, e.Pos, physics.Vec2{Y: drift})
}

// Animate runs one frame of enemy behaviour: firing, shield regeneration,
// spin and movement.
func (e *Enemy) Animate(ctx *UpdateContext) DeathReason {
	switch {
	case e.IsBoss():
		e.fireRing(ctx, NewPhaseBullet)
	case e.Kind == SpiralEnemy:
		e.fireRing(ctx, NewSpiralBullet)
	default:
		if ctx.Rand.GenRange(0, AimlessFireChance) == 0 {
			velo := physics.Vec2{X: ctx.Rand.Gen() - 0.5, Y: ctx.Rand.Gen() - 0.5}
			ctx.Spawner.SpawnBullet(NewProjectile(EnemyBullet, e.Pos, velo))
		}
	}

	switch e.Kind {
	case ShieldedBoss:
		if e.Shield < ShieldMax && ctx.Time%ShieldRegenPeriod == 0 {
			e.Shield++
		}
	case SpiralEnemy:
		e.Rotation -= SpiralSpin
	case Centipede:
		return e.animateCentipede(ctx)
	}
	return e.Entity.Animate(ctx.Field)
}

// fireRing occasionally emits a ring of bullets evenly spaced around e.
func (e *Enemy) fireRing(ctx *UpdateContext, create func(pos, velo physics.Vec2) Projectile) {
	if ctx.Rand.GenRange(0, RingFireChance) != 0 {
		return
	}
	offset := ctx.Rand.Gen() * math.Pi
	for i := 0; i < RingBulletCount; i++ {
		angle := 2*math.Pi*float64(i)/RingBulletCount + offset
		b := create(e.Pos, physics.FromAngle(angle, 1))
		b.Rotation = angle
		ctx.Spawner.SpawnBullet(b)
	}
}
