// Package dijkstra implements the label-setting search over (position, heading)
// states.
//
// Notes on implementation choices:
//
//   - Edges are generated on the fly from maze.Heading: one forward move and
//     the two turns returned by Heading.Turns.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and discarding entries whose score no longer matches the table.
//   - Relaxation is strict (<), so equal-score alternatives never re-enter
//     the heap; ties are recovered later from the table by package optimal.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/headway/maze"
)

// Solve computes the minimum score to reach g's End tile, in any heading,
// from start, and returns the score table built along the way.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start must lie in the grid (ErrStartOutOfGrid) and not on a wall (ErrStartOnWall).
//
// An unreachable End is reported by Result.Found == false with a nil error.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4
//   - Space: O(S)
func Solve(g *maze.Grid, start maze.State, opts ...Option) (*Result, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate grid and start state.
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.Pos) || start.Heading >= maze.HeadingCount {
		return nil, fmt.Errorf("%w: %s", ErrStartOutOfGrid, start)
	}
	if g.TileAt(start.Pos.Row, start.Pos.Col) == maze.Wall {
		return nil, fmt.Errorf("%w: %s", ErrStartOnWall, start)
	}

	// 3) Prepare the runner and seed the frontier with the start state.
	r := &runner{
		grid:    g,
		options: cfg,
		table:   newScoreTable(g.Width(), g.Height(), cfg.MoveCost, cfg.TurnCost),
		pq:      make(statePQ, 0, g.Width()*g.Height()),
	}
	r.init(start)

	// 4) Run the main loop.
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single Solve call.
type runner struct {
	grid    *maze.Grid
	options Options
	table   *ScoreTable
	pq      statePQ

	found    bool
	minScore Score
	settled  int
}

// init sets the start score to zero and pushes it onto the heap.
func (r *runner) init(start maze.State) {
	heap.Init(&r.pq)
	r.table.set(start, 0)
	r.options.OnRelax(start, Infinity, 0)
	heap.Push(&r.pq, &stateItem{state: start, score: 0})
}

// process repeatedly extracts the minimum-score state and relaxes its edges.
//
// Loop termination conditions:
//
//   - The heap becomes empty (End unreachable, or all End ties recorded).
//   - EndFirst: the first End state is settled.
//   - EndAll: the heap minimum exceeds the already found MinScore.
func (r *runner) process() error {
	end := r.grid.End()
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-score item.
		item := heap.Pop(&r.pq).(*stateItem)
		s, score := item.state, item.score

		// 2) Once End is found, nothing scoring beyond MinScore matters.
		if r.found && score > r.minScore {
			break
		}

		// 3) Skip stale entries: the table already holds a better score.
		if score > r.table.Score(s) {
			continue
		}

		// 4) Settle s. Its score is now final.
		r.settled++
		r.options.OnSettle(s, score)

		// 5) End reached: the first settled End state is globally optimal.
		if s.Pos == end {
			if !r.found {
				r.found, r.minScore = true, score
			}
			if r.options.EndPolicy == EndFirst {
				break
			}
			continue
		}

		// 6) Relax the forward move and both turns.
		if err := r.relax(s, score); err != nil {
			return err
		}
	}

	return nil
}

// relax proposes the three outgoing transitions of s.
func (r *runner) relax(s maze.State, score Score) error {
	// Move: one cell forward, same heading, unless blocked.
	if next := s.Pos.Step(s.Heading); r.grid.Walkable(next) {
		if err := r.propose(maze.State{Pos: next, Heading: s.Heading}, score, r.options.MoveCost); err != nil {
			return err
		}
	}

	// Turn: rotate in place to either adjacent heading.
	for _, h := range s.Heading.Turns() {
		if err := r.propose(maze.State{Pos: s.Pos, Heading: h}, score, r.options.TurnCost); err != nil {
			return err
		}
	}

	return nil
}

// propose records score+cost for target if it strictly improves the table.
func (r *runner) propose(target maze.State, score, cost Score) error {
	if score > Infinity-cost {
		return fmt.Errorf("%w: %d + %d at %s", ErrScoreOverflow, score, cost, target)
	}
	candidate := score + cost

	old := r.table.Score(target)
	if candidate >= old {
		return nil
	}
	r.table.set(target, candidate)
	r.options.OnRelax(target, old, candidate)
	heap.Push(&r.pq, &stateItem{state: target, score: candidate})

	return nil
}

// result assembles the Result, collecting every End heading tied at MinScore.
func (r *runner) result() *Result {
	res := &Result{
		Found:   r.found,
		Table:   r.table,
		Settled: r.settled,
	}
	if !r.found {
		return res
	}

	res.MinScore = r.minScore
	end := r.grid.End()
	for _, h := range maze.Headings {
		s := maze.State{Pos: end, Heading: h}
		if r.table.Score(s) == r.minScore {
			res.EndStates = append(res.EndStates, s)
		}
	}

	return res
}

// stateItem is a heap entry: a state with the score it was pushed at.
type stateItem struct {
	state maze.State
	score Score
}

// statePQ is a min-heap of *stateItem ordered by score ascending.
// Outdated entries stay in the heap and are skipped when popped.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller score → higher priority.
func (pq statePQ) Less(i, j int) bool { return pq[i].score < pq[j].score }

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
