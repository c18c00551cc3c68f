package object

import (
	"math"

	"github.com/tomz197/shooter/internal/entity"
	"github.com/tomz197/shooter/internal/physics"
)

// ProjectileKind selects the projectile variant.
type ProjectileKind int

const (
	Bullet ProjectileKind = iota
	EnemyBullet
	PhaseBullet
	SpiralBullet
	Missile
)

func (k ProjectileKind) String() string {
	switch k {
	case Bullet, EnemyBullet:
		return "Bullet"
	case PhaseBullet:
		return "PhaseBullet"
	case SpiralBullet:
		return "SpiralBullet"
	case Missile:
		return "Missile"
	}
	return "Projectile"
}

// Projectile is anything fired by the player or an enemy. Kind selects which
// of the variant fields apply.
type Projectile struct {
	Entity
	Kind ProjectileKind

	// PhaseBullet: the launch velocity and the phase modulating its magnitude.
	BaseVelo physics.Vec2
	Phase    float64

	// SpiralBullet: cruise speed and distance covered so far.
	Speed    float64
	Traveled float64

	// Missile: the locked target, if any, and recent positions.
	Target Lock
	Trail  []physics.Vec2
}

// Lock is a missile's weak reference to its target.
type Lock struct {
	ID     entity.ID[Enemy]
	Active bool
}

// NewProjectile creates a plain projectile of kind k.
func NewProjectile(k ProjectileKind, pos, velo physics.Vec2) Projectile {
	p := Projectile{Entity: NewEntity(pos, velo), Kind: k}
	if k == Missile {
		p.Health = MissileHealth
	}
	return p
}

// NewPhaseBullet creates an enemy bullet whose speed pulses over time.
func NewPhaseBullet(pos, velo physics.Vec2) Projectile {
	p := NewProjectile(PhaseBullet, pos, velo)
	p.BaseVelo = velo
	return p
}

// NewSpiralBullet creates an enemy bullet that curls, straightening out as it travels.
func NewSpiralBullet(pos, velo physics.Vec2) Projectile {
	p := NewProjectile(SpiralBullet, pos, velo)
	p.Speed = velo.Len()
	return p
}

// FromPlayer reports whether p was fired by the player.
func (p *Projectile) FromPlayer() bool {
	return p.Kind == Bullet || p.Kind == Missile
}

// BoundingBox returns the projectile's hit box.
func (p *Projectile) BoundingBox() physics.Rect {
	return physics.Square(p.Pos, BulletSize)
}

// Animate runs one frame of projectile behaviour, including hits on
// enemies or the player.
func (p *Projectile) Animate(ctx *UpdateContext) DeathReason {
	switch p.Kind {
	case Bullet:
		return p.animatePlayerBullet(ctx)
	case EnemyBullet:
		return p.animateEnemyBullet(ctx)
	case PhaseBullet:
		p.Velo = p.BaseVelo.Scale((math.Sin(p.Phase) + 1) / 2)
		p.Phase += PhaseStep
		return p.animateEnemyBullet(ctx)
	case SpiralBullet:
		p.Rotation -= SpiralTurn / (p.Traveled*0.05 + 1)
		p.Velo = physics.FromAngle(p.Rotation, p.Speed)
		p.Traveled += p.Speed
		return p.animateEnemyBullet(ctx)
	case Missile:
		return p.animateMissile(ctx)
	}
	return p.Entity.Animate(ctx.Field)
}

// animatePlayerBullet spends the bullet's health as damage on the first
// enemy it overlaps.
func (p *Projectile) animatePlayerBullet(ctx *UpdateContext) DeathReason {
	bbox := p.BoundingBox()
	for _, enemy := range ctx.Enemies.All() {
		if enemy.TestHit(bbox) {
			enemy.Damage(p.Health, bbox, ctx.Spawner)
			p.Health = 0
			break
		}
	}
	return p.Entity.Animate(ctx.Field)
}

func (p *Projectile) animateEnemyBullet(ctx *UpdateContext) DeathReason {
	player := ctx.Player
	if reason := p.HitsPlayer(&player.Entity); reason != Alive {
		player.Health -= p.Health
		return reason
	}
	return p.Entity.Animate(ctx.Field)
}

func (p *Projectile) animateMissile(ctx *UpdateContext) DeathReason {
	if !p.Target.Active {
		p.acquire(ctx)
	} else if target := ctx.Enemies.Get(p.Target.ID); target != nil {
		p.steer(target.Pos)
	} else {
		p.Target = Lock{}
	}

	if len(p.Trail) > MissileTrailLength {
		p.Trail = p.Trail[1:]
	}
	p.Trail = append(p.Trail, p.Pos)

	reason := p.animatePlayerBullet(ctx)
	if reason != Alive {
		p.release(ctx)
	}
	return reason
}

// acquire locks onto the nearest enemy in range that is not already doomed
// by other missiles, reserving this missile's damage on it.
func (p *Projectile) acquire(ctx *UpdateContext) {
	var (
		best     *Enemy
		bestID   entity.ID[Enemy]
		bestDist = math.Inf(1)
	)
	for id, enemy := range ctx.Enemies.All() {
		dist := physics.DistanceSquared(p.Pos, enemy.Pos)
		if dist < MissileDetectionRange*MissileDetectionRange && dist < bestDist &&
			enemy.PredictedDamage < enemy.TotalHealth() {
			best, bestID, bestDist = enemy, id, dist
		}
	}
	if best == nil {
		return
	}
	p.Target = Lock{ID: bestID, Active: true}
	best.PredictedDamage += MissileDamage
	ctx.logger().Debug("missile locked", "enemy", bestID,
		"predicted", best.PredictedDamage, "total", best.TotalHealth())
}

// release undoes the damage reservation on the target, if it still exists.
func (p *Projectile) release(ctx *UpdateContext) {
	if !p.Target.Active {
		return
	}
	if target := ctx.Enemies.Get(p.Target.ID); target != nil {
		target.PredictedDamage -= MissileDamage
		ctx.logger().Debug("reduce predicted damage", "enemy", p.Target.ID,
			"from", target.PredictedDamage+MissileDamage, "to", target.PredictedDamage)
	}
	p.Target = Lock{}
}

// steer turns the missile toward dest by at most MissileHomingSpeed per
// frame while keeping cruise speed.
func (p *Projectile) steer(dest physics.Vec2) {
	desired := dest.Sub(p.Pos).Normalize().Scale(MissileSpeed)
	diff := desired.Sub(p.Velo)
	if diff.LenSq() <= machineEpsilon {
		return
	}
	if diff.LenSq() < MissileHomingSpeed*MissileHomingSpeed {
		p.Velo = desired
	} else {
		p.Velo = p.Velo.Add(diff.Normalize().Scale(MissileHomingSpeed))
	}
	angle := p.Velo.Angle()
	p.Rotation = angle + math.Pi/2
	p.Velo = physics.FromAngle(angle, MissileSpeed)
}

// machineEpsilon is the float64 epsilon, 2^-52.
const machineEpsilon = 0x1p-52
