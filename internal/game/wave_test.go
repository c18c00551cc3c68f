package game

import (
	"testing"

	"github.com/tomz197/shooter/internal/object"
)

func countKinds(s *State) [object.EnemyKindCount]int {
	var counts [object.EnemyKindCount]int
	for _, e := range s.Enemies.All() {
		counts[e.Kind]++
	}
	return counts
}

func TestWaveRespectsFullCaps(t *testing.T) {
	for _, seed := range []uint32{1, 2, 3, 99, 12345} {
		s := New(Options{Seed: seed})
		s.Player.Score = 256 * 8
		for k := range object.EnemyKindCount {
			kind := object.EnemyKind(k)
			for range s.Spawns().Rule(kind).Cap {
				s.Enemies.Insert(object.NewEnemy(kind, vec(100, 100), vec(0, 0)))
			}
		}
		before := s.Enemies.Len()

		for range 768 {
			s.GenerateWave()
			s.Time++
		}

		if got := s.Enemies.Len(); got != before {
			t.Errorf("seed %d: %d enemies spawned past full caps", seed, got-before)
		}
	}
}

func TestWaveSpawnsWithinCaps(t *testing.T) {
	s := New(Options{Seed: 7})
	s.Player.Score = 256 * 4

	for range 768 {
		s.GenerateWave()
		s.Time++
	}

	if s.Enemies.Len() == 0 {
		t.Fatal("no enemies spawned in a whole wave")
	}
	counts := countKinds(s)
	for k, n := range counts {
		kind := object.EnemyKind(k)
		if rule := s.Spawns().Rule(kind); n > rule.Cap {
			t.Errorf("%v: %d alive, cap %d", kind, n, rule.Cap)
		}
	}
	for _, e := range s.Enemies.All() {
		if e.Pos.Y > s.Field.Height/2 && e.Pos.X > 0 && e.Pos.X < s.Field.Width {
			t.Errorf("%v spawned away from an edge at %v", e.Kind, e.Pos)
		}
	}
}

func TestWaveQuietPhases(t *testing.T) {
	tests := []struct {
		name   string
		time   uint32
		paused bool
	}{
		{"rest period", 800, false},
		{"paused", 10, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(Options{Seed: 3})
			s.Player.Score = 256 * 50
			s.Time = tt.time
			s.Paused = tt.paused
			for range 200 {
				s.GenerateWave()
			}
			if n := s.Enemies.Len(); n != 0 {
				t.Errorf("spawned %d enemies", n)
			}
		})
	}
}

func TestWave(t *testing.T) {
	s := newQuietState(t)
	s.Time = 1024*3 + 5
	if s.Wave() != 3 {
		t.Errorf("Wave() = %d, want 3", s.Wave())
	}
}

func TestSpawnRuleWeight(t *testing.T) {
	tests := []struct {
		name  string
		rule  SpawnRule
		level int
		count int
		want  int
	}{
		{"base", SpawnRule{Cap: 4, Weight: 2}, 0, 0, 2},
		{"at cap", SpawnRule{Cap: 4, Weight: 2}, 0, 4, 0},
		{"thinning", SpawnRule{Cap: 32, Weight: 64, ThinPerLevel: 8, MinWeight: 8}, 3, 0, 40},
		{"thinned to floor", SpawnRule{Cap: 32, Weight: 64, ThinPerLevel: 8, MinWeight: 8}, 20, 0, 8},
		{"growing", SpawnRule{Cap: 2, PerLevel: 1, MaxWeight: 8}, 5, 0, 5},
		{"grown to ceiling", SpawnRule{Cap: 2, PerLevel: 1, MaxWeight: 8}, 50, 1, 8},
		{"no cap room", SpawnRule{Cap: 0, Weight: 9}, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rule.WeightAt(tt.level, tt.count); got != tt.want {
				t.Errorf("WeightAt(%d, %d) = %d, want %d", tt.level, tt.count, got, tt.want)
			}
		})
	}
}
