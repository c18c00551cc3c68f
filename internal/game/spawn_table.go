package game

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tomz197/shooter/internal/object"
)

// ErrInvalidSpawnTable is returned when a spawn table fails validation.
var ErrInvalidSpawnTable = errors.New("invalid spawn table")

//go:embed spawn_table.yaml
var defaultSpawnTable []byte

// SpawnTable tunes the wave generator.
type SpawnTable struct {
	// Period is the wave length in frames; enemies spawn during the first
	// Active frames of each wave.
	Period uint32 `yaml:"period"`
	Active uint32 `yaml:"active"`
	// Die is the number of sides of the die rolled to consume the budget.
	Die            uint32      `yaml:"die"`
	BaseBudget     int         `yaml:"base_budget"`
	BudgetPerLevel int         `yaml:"budget_per_level"`
	Rules          []SpawnRule `yaml:"rules"`

	kinds [object.EnemyKindCount]*SpawnRule
}

// SpawnRule is the population cap and weight of one enemy variant.
// At difficulty level L the weight is
//
//	Weight - ThinPerLevel*L + PerLevel*L
//
// clamped to at least MinWeight and, when MaxWeight is set, at most MaxWeight.
type SpawnRule struct {
	Kind         string `yaml:"kind"`
	Cap          int    `yaml:"cap"`
	Weight       int    `yaml:"weight"`
	ThinPerLevel int    `yaml:"thin_per_level"`
	MinWeight    int    `yaml:"min_weight"`
	PerLevel     int    `yaml:"per_level"`
	MaxWeight    int    `yaml:"max_weight"`

	kind object.EnemyKind
}

// WeightAt returns the rule's weight at a difficulty level, or 0 once count
// live enemies have reached the cap.
func (r *SpawnRule) WeightAt(level, count int) int {
	if count >= r.Cap {
		return 0
	}
	w := r.Weight - r.ThinPerLevel*level + r.PerLevel*level
	w = max(w, r.MinWeight)
	if r.MaxWeight > 0 {
		w = min(w, r.MaxWeight)
	}
	return max(w, 0)
}

// Rule returns the rule for kind, or nil if the table has none.
func (t *SpawnTable) Rule(kind object.EnemyKind) *SpawnRule {
	if kind < 0 || kind >= object.EnemyKindCount {
		return nil
	}
	return t.kinds[kind]
}

// DefaultSpawnTable returns the built-in table.
func DefaultSpawnTable() *SpawnTable {
	t, err := ParseSpawnTable(defaultSpawnTable)
	if err != nil {
		panic(fmt.Sprintf("built-in spawn table: %v", err))
	}
	return t
}

// LoadSpawnTable reads and validates a spawn table from a YAML file.
func LoadSpawnTable(path string) (*SpawnTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn table: %w", err)
	}
	t, err := ParseSpawnTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ParseSpawnTable decodes and validates a YAML spawn table.
func ParseSpawnTable(data []byte) (*SpawnTable, error) {
	var t SpawnTable
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse spawn table: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func (t *SpawnTable) validate() error {
	if t.Period == 0 {
		return fmt.Errorf("%w: period must be positive", ErrInvalidSpawnTable)
	}
	if t.Active > t.Period {
		return fmt.Errorf("%w: active %d exceeds period %d", ErrInvalidSpawnTable, t.Active, t.Period)
	}
	if t.Die == 0 {
		return fmt.Errorf("%w: die must have at least one side", ErrInvalidSpawnTable)
	}
	for i := range t.Rules {
		r := &t.Rules[i]
		kind, err := object.ParseEnemyKind(r.Kind)
		if err != nil {
			return fmt.Errorf("%w: rule %d: %v", ErrInvalidSpawnTable, i, err)
		}
		if t.kinds[kind] != nil {
			return fmt.Errorf("%w: duplicate rule for %s", ErrInvalidSpawnTable, kind)
		}
		if r.Cap < 0 || r.Weight < 0 || r.MinWeight < 0 || r.MaxWeight < 0 {
			return fmt.Errorf("%w: %s: negative cap or weight", ErrInvalidSpawnTable, kind)
		}
		r.kind = kind
		t.kinds[kind] = r
	}
	return nil
}
