// Package optimal reconstructs minimum-cost paths from a settled
// dijkstra.ScoreTable.
//
// What:
//
//   - Cells returns the union of grid positions lying on at least one
//     minimum-cost path, seeded from every End state tied at the minimum.
//   - Path returns a single minimum-cost path by naive predecessor following.
//
// How:
//
//	A state (p, h) scoring s has a predecessor
//	  – via a turn, at (p, h') for h' in h.Turns(), if score(p, h') == s - TurnCost;
//	  – via a move, at (p.Behind(h), h),           if score(behind, h) == s - MoveCost.
//	The traversal walks every matching predecessor edge backwards. Two sets are
//	kept: visited states (termination on plateaus) and visited positions (the
//	answer). A state scoring 0 is the start and is not expanded.
//
// Correctness relies on every table entry below the minimum being final,
// which dijkstra.Solve guarantees under both end policies.
//
// Errors:
//
//   - ErrNilTable:     table is nil.
//   - ErrNoEndStates:  no seed states were supplied.
//   - ErrUnreachedEnd: a seed state has no finite score.
//   - ErrMixedScores:  seed states do not share one score.
//
// Complexity: O(S) time and memory, S = W×H×4.
package optimal

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/headway/dijkstra"
	"github.com/katalvlaran/headway/maze"
)

// Sentinel errors for reconstruction.
var (
	// ErrNilTable indicates a nil score table.
	ErrNilTable = errors.New("optimal: score table is nil")
	// ErrNoEndStates indicates an empty seed set.
	ErrNoEndStates = errors.New("optimal: no end states supplied")
	// ErrUnreachedEnd indicates a seed state that was never reached.
	ErrUnreachedEnd = errors.New("optimal: end state not reached")
	// ErrMixedScores indicates seed states with differing scores.
	ErrMixedScores = errors.New("optimal: end states have differing scores")
)

// PositionSet is a set of grid positions.
type PositionSet map[maze.Position]struct{}

// Len returns the number of positions in the set.
func (ps PositionSet) Len() int { return len(ps) }

// Contains reports whether p is in the set.
func (ps PositionSet) Contains(p maze.Position) bool {
	_, ok := ps[p]

	return ok
}

// Sorted returns the positions in row-major order.
func (ps PositionSet) Sorted() []maze.Position {
	out := make([]maze.Position, 0, len(ps))
	for p := range ps {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}

// Cells returns every position on at least one minimum-cost path ending in
// one of ends. All ends must carry the same finite score; pass
// dijkstra.Result.EndStates.
//
// Behavior:
//  1. Seed the work queue with every end state and mark their positions.
//  2. Pop a state; if its score is 0 it is the start and is not expanded.
//  3. Enqueue every unprocessed turn predecessor and move predecessor whose
//     score differs by exactly the edge cost; mark move predecessors' positions.
//  4. Return the visited-positions set once the queue drains.
func Cells(table *dijkstra.ScoreTable, ends []maze.State) (PositionSet, error) {
	if err := validateSeeds(table, ends); err != nil {
		return nil, err
	}

	w := &walker{
		table:     table,
		states:    make(map[maze.State]bool, len(ends)),
		positions: make(PositionSet, len(ends)),
	}
	for _, s := range ends {
		w.positions[s.Pos] = struct{}{}
		w.enqueue(s)
	}
	for len(w.queue) > 0 {
		s := w.queue[0]
		w.queue = w.queue[1:]
		for _, p := range predecessors(table, s) {
			w.positions[p.Pos] = struct{}{}
			w.enqueue(p)
		}
	}

	return w.positions, nil
}

// Path follows the first matching predecessor of each state from end back
// to the start and returns the states ordered start → end.
// The result is one minimum-cost path and is always a subset of Cells.
func Path(table *dijkstra.ScoreTable, end maze.State) ([]maze.State, error) {
	if err := validateSeeds(table, []maze.State{end}); err != nil {
		return nil, err
	}

	path := []maze.State{end}
	for cur := end; table.Score(cur) != 0; {
		preds := predecessors(table, cur)
		if len(preds) == 0 {
			// Unreachable for a table produced by dijkstra.Solve.
			return nil, fmt.Errorf("optimal: no predecessor for %s at score %d", cur, table.Score(cur))
		}
		cur = preds[0]
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// walker holds the mutable state of one Cells traversal.
type walker struct {
	table     *dijkstra.ScoreTable
	queue     []maze.State
	states    map[maze.State]bool // processed or queued states
	positions PositionSet         // answer
}

// enqueue schedules s unless it was already scheduled.
func (w *walker) enqueue(s maze.State) {
	if w.states[s] {
		return
	}
	w.states[s] = true
	w.queue = append(w.queue, s)
}

// predecessors lists every state with an edge into s whose score plus the
// edge cost equals score(s). Turn predecessors come first, then the move.
func predecessors(table *dijkstra.ScoreTable, s maze.State) []maze.State {
	score := table.Score(s)
	if score == 0 || score == dijkstra.Infinity {
		return nil
	}

	var preds []maze.State
	for _, h := range s.Heading.Turns() {
		p := maze.State{Pos: s.Pos, Heading: h}
		if table.Score(p) == score-table.TurnCost() {
			preds = append(preds, p)
		}
	}
	if behind := s.Pos.Behind(s.Heading); table.InBounds(behind) {
		p := maze.State{Pos: behind, Heading: s.Heading}
		if table.Score(p) == score-table.MoveCost() {
			preds = append(preds, p)
		}
	}

	return preds
}

// validateSeeds checks that ends is non-empty and shares one finite score.
func validateSeeds(table *dijkstra.ScoreTable, ends []maze.State) error {
	if table == nil {
		return ErrNilTable
	}
	if len(ends) == 0 {
		return ErrNoEndStates
	}
	want := table.Score(ends[0])
	for _, s := range ends {
		sc := table.Score(s)
		if sc == dijkstra.Infinity {
			return fmt.Errorf("%w: %s", ErrUnreachedEnd, s)
		}
		if sc != want {
			return fmt.Errorf("%w: %s scores %d, want %d", ErrMixedScores, s, sc, want)
		}
	}

	return nil
}
