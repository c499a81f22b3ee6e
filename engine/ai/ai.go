package ai

import (
	"fmt"
	"log/slog"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/1siamBot/tactics-engine/engine/core"
	"github.com/1siamBot/tactics-engine/engine/pathfind"
	"github.com/1siamBot/tactics-engine/engine/systems"
)

// UnitEnv is the view of one unit an attack rule sees
type UnitEnv struct {
	Team string
	Unit string
	HP   int
	X, Y int
}

// RuleEnv is the environment an attack rule is compiled against
type RuleEnv struct {
	Attacker UnitEnv
	Target   UnitEnv
	// Candidates is the number of foes next to the attacker
	Candidates int
}

func unitEnv(a *core.Actor) UnitEnv {
	return UnitEnv{
		Team: a.Team.String(),
		Unit: a.Unit.String(),
		HP:   a.HP,
		X:    a.Pos.X,
		Y:    a.Pos.Y,
	}
}

// AttackRule decides whether the AI attacks a given adjacent foe
type AttackRule struct {
	Source  string
	program *vm.Program
}

// CompileAttackRule compiles an expr condition such as
// `Target.HP <= 5 || Attacker.Unit == "tank"`. An empty source always
// attacks.
func CompileAttackRule(src string) (*AttackRule, error) {
	if src == "" {
		src = "true"
	}
	prog, err := expr.Compile(src, expr.Env(RuleEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile attack rule %q: %w", src, err)
	}
	return &AttackRule{Source: src, program: prog}, nil
}

// Allows evaluates the rule
func (r *AttackRule) Allows(env RuleEnv) (bool, error) {
	out, err := vm.Run(r.program, env)
	if err != nil {
		return false, err
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Controller drives the scripted units of one team
type Controller struct {
	Team  core.Team
	Board pathfind.Board
	Rule  *AttackRule
}

// NewController compiles the board's attack rule for team
func NewController(team core.Team, board pathfind.Board) (*Controller, error) {
	rule, err := CompileAttackRule(board.Rules.AIAttackRule)
	if err != nil {
		return nil, err
	}
	return &Controller{Team: team, Board: board, Rule: rule}, nil
}

// Units returns the controller's units in store order
func (c *Controller) Units() []core.ActorID {
	return c.Board.Actors.IDs(c.Team)
}

// Plan picks where id moves this turn
func (c *Controller) Plan(id core.ActorID) pathfind.Plan {
	return c.Board.PlanAI(id)
}

// ChooseTarget returns the first adjacent foe the rule accepts. Rule
// errors count as a refusal.
func (c *Controller) ChooseTarget(id core.ActorID) (systems.Target, bool) {
	me, ok := c.Board.Actors.Get(id)
	if !ok {
		return systems.Target{}, false
	}
	targets := systems.EnemiesInRange(c.Board.Actors, id)
	for _, t := range targets {
		foe, ok := c.Board.Actors.Get(t.ID)
		if !ok {
			continue
		}
		env := RuleEnv{Attacker: unitEnv(me), Target: unitEnv(foe), Candidates: len(targets)}
		allowed, err := c.Rule.Allows(env)
		if err != nil {
			slog.Warn("attack rule error", "rule", c.Rule.Source, "error", err)
			continue
		}
		if allowed {
			return t, true
		}
	}
	return systems.Target{}, false
}
