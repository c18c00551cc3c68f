package game

import (
	"github.com/tomz197/shooter/internal/entity"
	"github.com/tomz197/shooter/internal/object"
)

// Input is one frame of player intent. Toggle fields report the key as
// held; State reacts only when a key goes from released to held.
type Input struct {
	Up, Down, Left, Right bool
	Fire                  bool

	NextWeapon bool
	PrevWeapon bool
	Pause      bool
	Restart    bool

	// Debug cheats, honoured only with Options.DebugKeys.
	CheatScore bool
	CheatPower bool

	// Seed drives this frame's lightning.
	Seed uint32
}

// controls remembers which toggles were held on the previous frame.
type controls struct {
	next, prev, pause, restart, score, power bool
}

// Step advances the session by one frame: controls and fire control, the
// wave generator, then items, enemies, bullets and effects in that order.
// fx creates explosion effects; nil uses the built-in effects.
func (s *State) Step(in Input, fx EffectFunc) error {
	if fx != nil {
		s.effect = fx
	} else {
		s.effect = s.defaultEffect
	}

	if pressed(in.Restart, &s.held.restart) {
		if err := s.Restart(); err != nil {
			return err
		}
	}
	s.applyToggles(in)

	if !s.Paused {
		s.Bolts = s.Bolts[:0]
	}
	if !s.GameOver && !s.Paused {
		s.move(in)
		s.TryShoot(in.Fire, in.Seed)
		s.Player.TickTimers()
	}

	s.GenerateWave()

	if s.Paused {
		return nil
	}
	s.Time++
	s.AnimateItems()
	s.AnimateEnemies()
	s.AnimateBullets()
	s.AnimateEffects()
	return nil
}

// pressed reports a released-to-held transition and records the new state.
func pressed(now bool, prev *bool) bool {
	edge := now && !*prev
	*prev = now
	return edge
}

func (s *State) applyToggles(in Input) {
	p := s.Player
	if pressed(in.NextWeapon, &s.held.next) && !s.GameOver {
		p.Weapon = p.Weapon.Next()
		s.log.Info("weapon switched", "weapon", p.Weapon)
	}
	if pressed(in.PrevWeapon, &s.held.prev) && !s.GameOver {
		p.Weapon = p.Weapon.Prev()
		s.log.Info("weapon switched", "weapon", p.Weapon)
	}
	if pressed(in.Pause, &s.held.pause) {
		s.Paused = !s.Paused
		s.log.Info("paused", "paused", s.Paused)
	}
	if pressed(in.CheatScore, &s.held.score) && s.debugKeys {
		p.Score += 1000
	}
	if pressed(in.CheatPower, &s.held.power) && s.debugKeys {
		p.Power += 16
	}
}

func (s *State) move(in Input) {
	p := s.Player
	if in.Up {
		p.MoveUp()
	}
	if in.Down {
		p.MoveDown(s.Field)
	}
	if in.Left {
		p.MoveLeft()
	}
	if in.Right {
		p.MoveRight(s.Field)
	}
}

// AnimateItems moves items and hands touched ones to the player.
func (s *State) AnimateItems() {
	ctx := s.UpdateContext()
	s.Items.Retain(func(_ entity.ID[object.Item], it *object.Item) bool {
		return it.Animate(&ctx) == object.Alive
	})
}

// AnimateEnemies runs enemy behaviour. Destroyed enemies score, explode and
// drop an item; enemies that left the playfield just vanish.
func (s *State) AnimateEnemies() {
	ctx := s.UpdateContext()
	s.Enemies.Retain(func(_ entity.ID[object.Enemy], e *object.Enemy) bool {
		switch e.Animate(&ctx) {
		case object.Alive:
			return true
		case object.Killed:
			s.Player.Kills++
			s.Player.Score += e.Score()
			kind := object.Explosion
			if e.IsBoss() {
				kind = object.Explosion2
			}
			s.addEffect(kind, e.Pos)
			s.Items.Insert(e.DropItem(s.itemDrift))
		}
		return false
	})
	s.FlushSpawned()
}

// AnimateBullets moves projectiles and resolves their hits.
func (s *State) AnimateBullets() {
	ctx := s.UpdateContext()
	s.Bullets.Retain(func(id entity.ID[object.Projectile], b *object.Projectile) bool {
		reason := b.Animate(&ctx)
		if reason == object.Alive {
			return true
		}
		if reason == object.Killed || reason == object.HitPlayer {
			kind := object.Explosion
			if b.Kind == object.Missile {
				kind = object.Explosion2
			}
			s.addEffect(kind, b.Pos)
		}
		if reason == object.HitPlayer {
			s.hitPlayer()
		}
		s.log.Debug("bullet removed", "kind", b.Kind, "id", id, "reason", reason)
		return false
	})
	s.FlushSpawned()
}

// AnimateEffects ages visual effects.
func (s *State) AnimateEffects() {
	s.Effects.Retain(func(_ entity.ID[object.TempEntity], t *object.TempEntity) bool {
		return t.Animate(s.Field) == object.Alive
	})
}

// hitPlayer costs a life unless the player is invincible or already out.
func (s *State) hitPlayer() {
	p := s.Player
	if p.InvTime != 0 || s.GameOver || p.Lives <= 0 {
		return
	}
	p.Lives--
	if p.Lives == 0 {
		s.GameOver = true
		s.log.Info("game over", "score", p.Score, "kills", p.Kills)
		return
	}
	p.InvTime = object.PlayerInvincibleTime
}
