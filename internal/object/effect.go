package object

import (
	"math"

	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/rng"
)

// EffectKind selects the explosion animation.
type EffectKind int

const (
	// Explosion is the small burst used for bullets and beam hits.
	Explosion EffectKind = iota
	// Explosion2 is the large burst used for missiles and bosses.
	Explosion2
)

// TempEntity is a visual-only effect. Its health counts the frames left.
type TempEntity struct {
	Entity
	Kind         EffectKind
	MaxFrames    int
	PlaybackRate int
}

// NewTempEntity creates an effect of kind at pos with a small random offset
// and rotation drawn from r.
func NewTempEntity(kind EffectKind, pos physics.Vec2, r *rng.Xor128) TempEntity {
	jitter := physics.Vec2{X: 4 * (r.Gen() - 0.5), Y: 4 * (r.Gen() - 0.5)}
	t := TempEntity{
		Entity:       NewEntity(pos.Add(jitter), physics.Vec2{}),
		Kind:         kind,
		MaxFrames:    8,
		PlaybackRate: 2,
	}
	if kind == Explosion2 {
		t.MaxFrames, t.PlaybackRate = 6, 4
	}
	t.Rotation = r.Gen() * 2 * math.Pi
	t.Health = t.MaxFrames * t.PlaybackRate
	return t
}

// Animate spends one frame of the effect.
func (t *TempEntity) Animate(field physics.Playfield) DeathReason {
	t.Health--
	return t.Entity.Animate(field)
}

// Frame is the animation frame to show, counting up from 0.
func (t *TempEntity) Frame() int {
	return t.MaxFrames - t.Health/t.PlaybackRate
}

// Size is the effect's half extent for drawing.
func (t *TempEntity) Size() float64 {
	if t.Kind == Explosion2 {
		return Explode2Size
	}
	return ExplodeSize
}
