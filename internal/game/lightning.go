package game

import (
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/rng"
)

// Segment is one step of a lightning walk.
type Segment struct {
	From, To physics.Vec2
}

// Branch records one lightning branch as fired, so that it can be walked
// again for drawing.
type Branch struct {
	Origin physics.Vec2
	Seed   uint32
	Length int
	Hit    bool
}

// Lightning walks a branch of length steps from the player, calling f for
// each segment until f returns false. It returns the number of segments
// accepted by f. The walk depends only on seed and the player position, so
// the same arguments replay the same branch.
func (s *State) Lightning(seed uint32, length int, f func(Segment) bool) int {
	return walkLightning(s.Player.Pos, seed, length, f)
}

// Replay walks a recorded branch again, up to the point where it struck.
func (b Branch) Replay(f func(Segment) bool) {
	walkLightning(b.Origin, b.Seed, b.Length, f)
}

// walkLightning is a random walk with momentum: each step kicks the
// velocity randomly and pulls it back toward zero.
func walkLightning(origin physics.Vec2, seed uint32, length int, f func(Segment) bool) int {
	r := rng.New(seed)
	pos := origin
	velo := physics.Vec2{Y: -16}
	for i := 0; i < length; i++ {
		from := pos
		velo.X += object.LightningAccel*(r.Next()-0.5) - velo.X*object.LightningFeedback
		velo.Y += object.LightningAccel*(r.Next()-0.5) - velo.Y*object.LightningFeedback
		pos = pos.Add(velo)
		if !f(Segment{From: from, To: pos}) {
			return i
		}
	}
	return length
}

// LightningBranches is the number of branches fired at the current power
// level and frame.
func (s *State) LightningBranches() int {
	n := (s.Player.PowerLevel() + 1 + int(s.Time%2)) / 2
	return min(n, object.LightningMaxBranches)
}

// fireLightning fires every branch, damaging the first enemy each one
// reaches, and records the branches in Bolts.
func (s *State) fireLightning(seed uint32) {
	branchRand := rng.New(seed)
	origin := s.Player.Pos
	for range s.LightningBranches() {
		bseed := branchRand.Nexti()
		length := s.Lightning(bseed, object.LightningVertices, func(seg Segment) bool {
			reach := physics.Square(seg.To, object.LightningReach)
			for _, e := range s.Enemies.All() {
				if e.TestHit(reach) {
					e.Damage(2+int(s.Rand.GenRange(0, 3)), reach, s)
					s.addEffect(object.Explosion, seg.To)
					return false
				}
			}
			return true
		})
		s.Bolts = append(s.Bolts, Branch{
			Origin: origin,
			Seed:   bseed,
			Length: length,
			Hit:    length != object.LightningVertices,
		})
	}
	s.FlushSpawned()
}
