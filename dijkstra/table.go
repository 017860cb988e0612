package dijkstra

import "github.com/katalvlaran/headway/maze"

// ScoreTable maps every (position, heading) state of a grid to its best known
// score. Entries live in a row-major flat buffer:
//
//	scores[(row*width + col)*HeadingCount + heading]
//
// A ScoreTable is produced by Solve and is read-only for callers.
type ScoreTable struct {
	width, height int
	moveCost      Score
	turnCost      Score
	scores        []Score
}

// newScoreTable allocates a table with every entry at Infinity.
func newScoreTable(width, height int, moveCost, turnCost Score) *ScoreTable {
	scores := make([]Score, width*height*maze.HeadingCount)
	for i := range scores {
		scores[i] = Infinity
	}

	return &ScoreTable{
		width:    width,
		height:   height,
		moveCost: moveCost,
		turnCost: turnCost,
		scores:   scores,
	}
}

// Width returns the number of grid columns covered by the table.
func (t *ScoreTable) Width() int { return t.width }

// Height returns the number of grid rows covered by the table.
func (t *ScoreTable) Height() int { return t.height }

// MoveCost returns the forward-step cost the table was computed with.
func (t *ScoreTable) MoveCost() Score { return t.moveCost }

// TurnCost returns the quarter-turn cost the table was computed with.
func (t *ScoreTable) TurnCost() Score { return t.turnCost }

// InBounds reports whether p lies within the table's grid.
func (t *ScoreTable) InBounds(p maze.Position) bool {
	return p.Row >= 0 && p.Row < t.height && p.Col >= 0 && p.Col < t.width
}

// Score returns the table entry for s. States outside the grid report Infinity.
// Complexity: O(1).
func (t *ScoreTable) Score(s maze.State) Score {
	if !t.InBounds(s.Pos) || s.Heading >= maze.HeadingCount {
		return Infinity
	}

	return t.scores[t.index(s)]
}

// Reached reports whether s received a finite score.
func (t *ScoreTable) Reached(s maze.State) bool {
	return t.Score(s) != Infinity
}

// BestAt returns the minimum score over all headings at p, or Infinity.
func (t *ScoreTable) BestAt(p maze.Position) Score {
	best := Infinity
	for _, h := range maze.Headings {
		if sc := t.Score(maze.State{Pos: p, Heading: h}); sc < best {
			best = sc
		}
	}

	return best
}

// index maps a state to its offset in scores.
func (t *ScoreTable) index(s maze.State) int {
	return (s.Pos.Row*t.width+s.Pos.Col)*maze.HeadingCount + int(s.Heading)
}

// set stores score for s. Callers guarantee s is in bounds and score improves.
func (t *ScoreTable) set(s maze.State, score Score) {
	t.scores[t.index(s)] = score
}
