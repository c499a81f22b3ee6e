package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TerrainCosts is the movement cost of a ground cell per terrain overlay
type TerrainCosts struct {
	None   int `yaml:"none"`
	Street int `yaml:"street"`
	Forest int `yaml:"forest"`
}

// Rules holds every gameplay constant
type Rules struct {
	GridSize int `yaml:"grid_size"` // pixels per cell

	MoveBudget     int          `yaml:"move_budget"`     // seed value of a unit's move range
	CursorSeed     int          `yaml:"cursor_seed"`     // seed value of the player's goal cell
	AISeed         int          `yaml:"ai_seed"`         // seed value of each AI goal cell
	BlockSentinel  int          `yaml:"block_sentinel"`  // field value that marks a cell as a non-destination
	ImpassableCost int          `yaml:"impassable_cost"` // cost of enemy-held and water cells
	TerrainCost    TerrainCosts `yaml:"terrain_cost"`

	MoveSpeed      float64 `yaml:"move_speed"`       // path cells per second
	AttackSpeed    float64 `yaml:"attack_speed"`     // attack lunge rate
	AttackDamage   int     `yaml:"attack_damage"`    // hp removed per attack, one point at a time
	DamageTickWait int     `yaml:"damage_tick_wait"` // frames between damage points

	AIHighlightTicks int    `yaml:"ai_highlight_ticks"` // frames the AI shows its plan before moving
	AIPauseTicks     int    `yaml:"ai_pause_ticks"`     // frames after moving before looking for targets
	AITargetTicks    int    `yaml:"ai_target_ticks"`    // frames the cursor rests on the target
	AIAttackRule     string `yaml:"ai_attack_rule"`     // expr deciding whether the AI attacks a target
}

// Default returns the stock rules
func Default() Rules {
	return Rules{
		GridSize:       16,
		MoveBudget:     9,
		CursorSeed:     99,
		AISeed:         30,
		BlockSentinel:  -99,
		ImpassableCost: 9999,
		TerrainCost: TerrainCosts{
			None:   2,
			Street: 1,
			Forest: 3,
		},
		MoveSpeed:        25,
		AttackSpeed:      5,
		AttackDamage:     5,
		DamageTickWait:   5,
		AIHighlightTicks: 20,
		AIPauseTicks:     20,
		AITargetTicks:    20,
		AIAttackRule:     "true",
	}
}

// Validate rejects rules the engine cannot run with
func (r Rules) Validate() error {
	var errs []error
	positive := map[string]int{
		"grid_size":           r.GridSize,
		"move_budget":         r.MoveBudget,
		"cursor_seed":         r.CursorSeed,
		"ai_seed":             r.AISeed,
		"terrain_cost.none":   r.TerrainCost.None,
		"terrain_cost.street": r.TerrainCost.Street,
		"terrain_cost.forest": r.TerrainCost.Forest,
	}
	for name, v := range positive {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be > 0, got %d", name, v))
		}
	}
	if r.ImpassableCost <= r.CursorSeed || r.ImpassableCost <= r.AISeed || r.ImpassableCost <= r.MoveBudget {
		errs = append(errs, fmt.Errorf("impassable_cost %d must exceed every seed value", r.ImpassableCost))
	}
	if r.BlockSentinel >= 0 {
		errs = append(errs, fmt.Errorf("block_sentinel must be negative, got %d", r.BlockSentinel))
	}
	if r.MoveSpeed <= 0 || r.AttackSpeed <= 0 {
		errs = append(errs, errors.New("move_speed and attack_speed must be > 0"))
	}
	if r.AttackDamage < 0 || r.DamageTickWait < 0 || r.AIHighlightTicks < 0 || r.AIPauseTicks < 0 || r.AITargetTicks < 0 {
		errs = append(errs, errors.New("damage and tick counts must be >= 0"))
	}
	return errors.Join(errs...)
}

// Parse decodes YAML over the defaults
func Parse(data []byte) (Rules, error) {
	r := Default()
	if err := yaml.Unmarshal(data, &r); err != nil {
		return Rules{}, fmt.Errorf("decode rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return Rules{}, err
	}
	return r, nil
}

// Load reads a YAML rules file. An empty path yields the defaults.
func Load(path string) (Rules, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, err
	}
	r, err := Parse(b)
	if err != nil {
		return Rules{}, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}
