// Package game holds the simulation state of a shooter session and the
// per-frame driver that advances it.
package game

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/shooter/internal/entity"
	"github.com/tomz197/shooter/internal/object"
	"github.com/tomz197/shooter/internal/physics"
	"github.com/tomz197/shooter/internal/rng"
)

// DefaultSeed seeds the state PRNG when Options.Seed is zero.
const DefaultSeed = 3232132

// Options configures a new State. Zero fields take defaults.
type Options struct {
	Seed      uint32
	Boundary  physics.Boundary
	Spawns    *SpawnTable
	ItemDrift float64
	DebugKeys bool
	Logger    *log.Logger
	// OnRestart is called before a restart clears the state. An error
	// aborts the restart.
	OnRestart func() error
}

// EffectFunc creates the visual effect for an explosion of kind at pos.
type EffectFunc func(kind object.EffectKind, pos physics.Vec2) object.TempEntity

// State is one shooter session. It owns the player and one store per
// object category; renderers read them between frames.
type State struct {
	Time     uint32
	Paused   bool
	GameOver bool

	Player  *object.Player
	Enemies *entity.Set[object.Enemy]
	Bullets *entity.Set[object.Projectile]
	Items   *entity.Set[object.Item]
	Effects *entity.Set[object.TempEntity]

	ShotsBullet  int
	ShotsMissile int

	// Bolts holds the lightning branches fired this frame for replay.
	Bolts []Branch

	Rand  *rng.Xor128
	Field physics.Playfield

	spawns    *SpawnTable
	itemDrift float64
	debugKeys bool
	onRestart func() error
	log       *log.Logger

	effect EffectFunc
	held   controls

	// Objects created while a store is being traversed.
	pendingEnemies []object.Enemy
	pendingBullets []object.Projectile
}

// New creates a session with the player at the start position.
func New(opts Options) *State {
	seed := opts.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	spawns := opts.Spawns
	if spawns == nil {
		spawns = DefaultSpawnTable()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &State{
		Player:  object.NewPlayer(),
		Enemies: entity.NewSet[object.Enemy](),
		Bullets: entity.NewSet[object.Projectile](),
		Items:   entity.NewSet[object.Item](),
		Effects: entity.NewSet[object.TempEntity](),
		Rand:    rng.New(seed),
		Field: physics.Playfield{
			Width:    object.Width,
			Height:   object.Height,
			Boundary: opts.Boundary,
		},
		spawns:    spawns,
		itemDrift: opts.ItemDrift,
		debugKeys: opts.DebugKeys,
		onRestart: opts.OnRestart,
		log:       logger,
	}
	s.effect = s.defaultEffect
	return s
}

// Restart clears every store and resets the player and counters. If the
// restart hook fails the state is left as it was.
func (s *State) Restart() error {
	if s.onRestart != nil {
		if err := s.onRestart(); err != nil {
			return fmt.Errorf("restart: %w", err)
		}
	}
	s.Items.Clear()
	s.Enemies.Clear()
	s.Bullets.Clear()
	s.Effects.Clear()
	s.pendingEnemies = s.pendingEnemies[:0]
	s.pendingBullets = s.pendingBullets[:0]
	s.Bolts = s.Bolts[:0]
	s.Time = 0
	s.Player.Reset()
	s.ShotsBullet = 0
	s.ShotsMissile = 0
	s.Paused = false
	s.GameOver = false
	s.log.Info("restart")
	return nil
}

// Wave returns the index of the current wave period.
func (s *State) Wave() uint32 {
	return s.Time / s.Spawns().Period
}

// Spawns returns the spawn table driving the wave generator.
func (s *State) Spawns() *SpawnTable {
	return s.spawns
}

// SpawnEnemy queues an enemy for insertion after the current pass.
// Implements object.Spawner.
func (s *State) SpawnEnemy(e object.Enemy) {
	s.pendingEnemies = append(s.pendingEnemies, e)
}

// SpawnBullet queues a projectile for insertion after the current pass.
// Implements object.Spawner.
func (s *State) SpawnBullet(p object.Projectile) {
	s.pendingBullets = append(s.pendingBullets, p)
}

// FlushSpawned inserts all queued objects and clears the queues.
func (s *State) FlushSpawned() {
	for _, e := range s.pendingEnemies {
		if e.Kind == object.Centipede {
			s.log.Debug("centipede split", "joints", len(e.Body.Joints))
		}
		s.Enemies.Insert(e)
	}
	for _, p := range s.pendingBullets {
		s.Bullets.Insert(p)
	}
	clear(s.pendingEnemies)
	clear(s.pendingBullets)
	s.pendingEnemies = s.pendingEnemies[:0]
	s.pendingBullets = s.pendingBullets[:0]
}

// UpdateContext creates an UpdateContext from the current state.
func (s *State) UpdateContext() object.UpdateContext {
	return object.UpdateContext{
		Time:    s.Time,
		Rand:    s.Rand,
		Field:   s.Field,
		Player:  s.Player,
		Enemies: s.Enemies,
		Spawner: s,
		Log:     s.log,
	}
}

func (s *State) defaultEffect(kind object.EffectKind, pos physics.Vec2) object.TempEntity {
	return object.NewTempEntity(kind, pos, s.Rand)
}

func (s *State) addEffect(kind object.EffectKind, pos physics.Vec2) {
	s.Effects.Insert(s.effect(kind, pos))
}
