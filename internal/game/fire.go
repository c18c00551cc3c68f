package game

import (
	"math"

	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// TryShoot fires the player's current weapon if fire is held. seed drives
// the lightning walk.
func (s *State) TryShoot(fire bool, seed uint32) {
	p := s.Player
	switch p.Weapon {
	case object.WeaponBullet, object.WeaponMissile:
		if fire && p.Cooldown == 0 {
			s.fireFan()
		}
	case object.WeaponLight:
		if fire {
			s.fireBeam()
		}
	case object.WeaponLightning:
		if fire {
			s.fireLightning(seed)
		}
	}
}

// fireFan launches 2 + 2*level bullets or missiles with sideways speeds
// spaced one unit apart around zero.
func (s *State) fireFan() {
	p := s.Player
	level := p.PowerLevel()
	p.Cooldown += p.Weapon.Period()

	kind, speed := object.Bullet, object.BulletSpeed
	if p.Weapon == object.WeaponMissile {
		kind, speed = object.Missile, object.MissileSpeed
	}
	n := 2 + 2*level
	for i := range n {
		dx := float64(i) - float64(n-1)/2
		b := object.NewProjectile(kind, p.Pos, physics.Vec2{X: dx, Y: -speed})
		b.Rotation = math.Atan2(dx, speed)
		s.Bullets.Insert(b)
		if kind == object.Bullet {
			s.ShotsBullet++
		} else {
			s.ShotsMissile++
		}
	}
}

// BeamRect is the area swept by the light beam: a thin column from the top
// of the playfield down to the ship.
func (s *State) BeamRect() physics.Rect {
	pos := s.Player.Pos
	return physics.Rect{
		Min: physics.Vec2{X: pos.X - object.LightWidth},
		Max: physics.Vec2{X: pos.X + object.LightWidth, Y: pos.Y},
	}
}

func (s *State) fireBeam() {
	rect := s.BeamRect()
	damage := 1 + s.Player.PowerLevel()
	for _, e := range s.Enemies.All() {
		if e.TestHit(rect) {
			s.addEffect(object.Explosion, e.Pos)
			e.Damage(damage, rect, s)
		}
	}
	s.FlushSpawned()
}
