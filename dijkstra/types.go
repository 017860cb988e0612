// Package dijkstra defines core types and configuration options
// for the directional-state shortest-path search.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/headway/maze"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilGrid indicates that a nil *maze.Grid was passed to Solve.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrStartOutOfGrid indicates the start state lies outside the grid.
	ErrStartOutOfGrid = errors.New("dijkstra: start position outside grid")

	// ErrStartOnWall indicates the start state stands on a Wall tile.
	ErrStartOnWall = errors.New("dijkstra: start position is a wall")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrScoreOverflow indicates a score accumulation would exceed Infinity.
	// It signals a defect or absurd cost configuration and is never tolerated.
	ErrScoreOverflow = errors.New("dijkstra: score overflow")
)

// Score is an exact, non-negative accumulated cost from the start state.
type Score = int64

// Infinity marks a state that has not been reached. It is larger than any
// real score.
const Infinity Score = math.MaxInt64

// Default edge costs.
const (
	DefaultMoveCost Score = 1
	DefaultTurnCost Score = 1000
)

// EndPolicy controls when Solve stops after reaching the End tile.
type EndPolicy int

const (
	// EndAll keeps settling until the frontier minimum exceeds MinScore, so
	// every End heading tied at the minimum is recorded.
	EndAll EndPolicy = iota

	// EndFirst stops as soon as the first End state is settled.
	EndFirst
)

// String implements fmt.Stringer.
func (p EndPolicy) String() string {
	switch p {
	case EndAll:
		return "all"
	case EndFirst:
		return "first"
	}

	return fmt.Sprintf("EndPolicy(%d)", int(p))
}

// Options configures Solve.
//
// MoveCost   – cost of one forward step; must be > 0.
// TurnCost   – cost of one quarter turn in place; must be > 0.
// EndPolicy  – EndAll (default) or EndFirst.
// OnSettle   – called once per settled state with its final score.
// OnRelax    – called on each successful relaxation with the old and new score.
type Options struct {
	MoveCost  Score
	TurnCost  Score
	EndPolicy EndPolicy
	OnSettle  func(s maze.State, score Score)
	OnRelax   func(s maze.State, old, updated Score)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Solve.
// Invalid values are recorded and surfaced as ErrOptionViolation by Solve.
type Option func(*Options)

// DefaultOptions returns Options with MoveCost=1, TurnCost=1000,
// EndPolicy=EndAll and no-op hooks.
func DefaultOptions() Options {
	return Options{
		MoveCost:  DefaultMoveCost,
		TurnCost:  DefaultTurnCost,
		EndPolicy: EndAll,
		OnSettle:  func(maze.State, Score) {},
		OnRelax:   func(maze.State, Score, Score) {},
	}
}

// WithMoveCost sets the cost of a forward step. c must be positive.
func WithMoveCost(c Score) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: MoveCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.MoveCost = c
	}
}

// WithTurnCost sets the cost of a quarter turn. c must be positive.
func WithTurnCost(c Score) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = fmt.Errorf("%w: TurnCost must be positive (%d)", ErrOptionViolation, c)
			return
		}
		o.TurnCost = c
	}
}

// WithEndPolicy selects when the search stops after reaching End.
func WithEndPolicy(p EndPolicy) Option {
	return func(o *Options) {
		if p != EndAll && p != EndFirst {
			o.err = fmt.Errorf("%w: unknown EndPolicy %d", ErrOptionViolation, int(p))
			return
		}
		o.EndPolicy = p
	}
}

// WithOnSettle registers a callback run when a state's score becomes final.
func WithOnSettle(fn func(s maze.State, score Score)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run after a state's table entry improves.
func WithOnRelax(fn func(s maze.State, old, updated Score)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// Result is the outcome of Solve.
//
// Found     – false when End is unreachable; MinScore and EndStates are then
// zero, while Table and Settled still describe the exhausted search.
// MinScore  – minimum score to reach End in any heading.
// EndStates – every End state whose table score equals MinScore, in heading order.
// Table     – the score table, owned by the caller after Solve returns.
// Settled   – number of states settled during the search.
type Result struct {
	Found     bool
	MinScore  Score
	EndStates []maze.State
	Table     *ScoreTable
	Settled   int
}
