package object

import (
	"fmt"

	"github.com/tomz197/shooter/internal/physics"
)

// Weapon is the player's selected weapon. The weapons form a cycle.
type Weapon int

const (
	WeaponBullet Weapon = iota
	WeaponLight
	WeaponMissile
	WeaponLightning

	weaponCount = 4
)

// Next returns the weapon after w, wrapping around.
func (w Weapon) Next() Weapon {
	return (w + 1) % weaponCount
}

// Prev returns the weapon before w, wrapping around.
func (w Weapon) Prev() Weapon {
	return (w + weaponCount - 1) % weaponCount
}

// Period is the cooldown in frames after firing w.
func (w Weapon) Period() int {
	if w == WeaponBullet {
		return BulletPeriod
	}
	return HeavyWeaponPeriod
}

func (w Weapon) String() string {
	switch w {
	case WeaponBullet:
		return "Bullet"
	case WeaponLight:
		return "Light"
	case WeaponMissile:
		return "Missile"
	case WeaponLightning:
		return "Lightning"
	}
	return fmt.Sprintf("Weapon(%d)", int(w))
}

// Player is the ship under user control.
type Player struct {
	Entity
	Score    int
	Kills    int
	Power    int
	Lives    int
	InvTime  int // frames of invincibility left
	Weapon   Weapon
	Cooldown int
}

// NewPlayer creates a player at the start position with full lives.
func NewPlayer() *Player {
	p := &Player{Entity: NewEntity(physics.Vec2{}, physics.Vec2{})}
	p.Reset()
	return p
}

// Reset recentres the player and restores lives. The selected weapon is kept.
func (p *Player) Reset() {
	p.Pos = physics.Vec2{X: PlayerStartX, Y: PlayerStartY}
	p.Velo = physics.Vec2{}
	p.Score = 0
	p.Kills = 0
	p.Power = 0
	p.Lives = PlayerLives
	p.InvTime = 0
	p.Cooldown = 0
}

// PowerLevel is the weapon tier derived from collected power.
func (p *Player) PowerLevel() int {
	return p.Power >> 4
}

// DifficultyLevel grows with score and drives the wave generator.
func (p *Player) DifficultyLevel() int {
	return p.Score / 256
}

// MoveUp moves the ship unless that would take it within PlayerSize of the edge.
func (p *Player) MoveUp() {
	if PlayerSize <= p.Pos.Y-PlayerSpeed {
		p.Pos.Y -= PlayerSpeed
	}
}

// MoveDown moves the ship unless that would take it within PlayerSize of the edge.
func (p *Player) MoveDown(field physics.Playfield) {
	if p.Pos.Y+PlayerSpeed < field.Height-PlayerSize {
		p.Pos.Y += PlayerSpeed
	}
}

// MoveLeft moves the ship unless that would take it within PlayerSize of the edge.
func (p *Player) MoveLeft() {
	if PlayerSize <= p.Pos.X-PlayerSpeed {
		p.Pos.X -= PlayerSpeed
	}
}

// MoveRight moves the ship unless that would take it within PlayerSize of the edge.
func (p *Player) MoveRight(field physics.Playfield) {
	if p.Pos.X+PlayerSpeed < field.Width-PlayerSize {
		p.Pos.X += PlayerSpeed
	}
}

// TickTimers counts the fire cooldown and invincibility down by one frame.
func (p *Player) TickTimers() {
	if p.Cooldown < 1 {
		p.Cooldown = 0
	} else {
		p.Cooldown--
	}
	if p.InvTime > 0 {
		p.InvTime--
	}
}
