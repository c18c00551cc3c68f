package game

import (
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
)

// GenerateWave spawns this frame's enemies. Spawning happens only during the
// active part of each wave period, and the number of attempts grows with the
// player's difficulty level.
func (s *State) GenerateWave() {
	t := s.Spawns()
	if s.Paused || s.Time%t.Period >= t.Active {
		return
	}

	var counts [object.EnemyKindCount]int
	for _, e := range s.Enemies.All() {
		counts[e.Kind]++
	}

	level := s.Player.DifficultyLevel()
	budget := t.BaseBudget + t.BudgetPerLevel*level
	for counter := 1 + int(s.Rand.GenRange(0, t.Die)); counter < budget; counter += 1 + int(s.Rand.GenRange(0, t.Die)) {
		s.spawnEnemy(level, &counts)
	}
}

// spawnEnemy places one enemy on a random edge, choosing its kind by
// weighted draw. Nothing spawns if every weight is zero.
func (s *State) spawnEnemy(level int, counts *[object.EnemyKindCount]int) {
	r := s.Rand
	var pos, velo physics.Vec2
	switch r.GenRange(0, 3) {
	case 0:
		pos = physics.Vec2{X: r.Next() * s.Field.Width}
		velo = physics.Vec2{X: r.Next() - 0.5, Y: r.Next()*0.5 + 0.5}
	case 1:
		pos = physics.Vec2{Y: r.Next() * s.Field.Height / 2}
		velo = physics.Vec2{X: r.Next()*0.5 + 0.5, Y: r.Next() - 0.5}
	default:
		pos = physics.Vec2{X: s.Field.Width, Y: r.Next() * s.Field.Height / 2}
		velo = physics.Vec2{X: -r.Next()*0.5 - 0.5, Y: r.Next() - 0.5}
	}

	var weights [object.EnemyKindCount]int
	total := 0
	for k := range object.EnemyKindCount {
		kind := object.EnemyKind(k)
		if rule := s.spawns.Rule(kind); rule != nil {
			weights[k] = rule.WeightAt(level, counts[k])
		}
		total += weights[k]
	}
	if total == 0 {
		return
	}

	pick := int(r.GenRange(0, uint32(total)))
	for k, w := range weights {
		if pick < w {
			kind := object.EnemyKind(k)
			s.Enemies.Insert(object.NewEnemy(kind, pos, velo))
			counts[k]++
			s.log.Debug("spawn", "kind", kind, "x", pos.X, "y", pos.Y)
			return
		}
		pick -= w
	}
	panic("unreachable")
}
