// Package maze defines core types and sentinel errors
// for the maze subpackage of github.com/katalvlaran/headway.
package maze

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid parsing.
var (
	// ErrEmptyGrid indicates the input text has no rows or no columns.
	ErrEmptyGrid = errors.New("maze: input grid must have at least one row and one column")
	// ErrRaggedGrid indicates rows of differing lengths.
	ErrRaggedGrid = errors.New("maze: all rows must have the same length")
	// ErrUnknownTile indicates a character that does not map to any Tile.
	ErrUnknownTile = errors.New("maze: unknown tile character")
	// ErrMissingStart indicates the grid has no 'S' tile.
	ErrMissingStart = errors.New("maze: no start tile")
	// ErrMultipleStart indicates the grid has more than one 'S' tile.
	ErrMultipleStart = errors.New("maze: multiple start tiles")
	// ErrMissingEnd indicates the grid has no 'E' tile.
	ErrMissingEnd = errors.New("maze: no end tile")
	// ErrMultipleEnd indicates the grid has more than one 'E' tile.
	ErrMultipleEnd = errors.New("maze: multiple end tiles")
	// ErrUnknownHeading indicates a heading name that ParseHeading does not recognize.
	ErrUnknownHeading = errors.New("maze: unknown heading")
)

// Tile classifies a single grid cell.
type Tile uint8

const (
	// Open is free floor.
	Open Tile = iota
	// Wall is never entered.
	Wall
	// Start is the single designated start cell.
	Start
	// End is the single designated end cell.
	End
)

// tileRunes maps each Tile to its textual form.
var tileRunes = [...]byte{Open: '.', Wall: '#', Start: 'S', End: 'E'}

// Byte returns the character representing t in the textual grid format.
func (t Tile) Byte() byte {
	if int(t) < len(tileRunes) {
		return tileRunes[t]
	}

	return '?'
}

// String implements fmt.Stringer.
func (t Tile) String() string {
	switch t {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case End:
		return "end"
	}

	return fmt.Sprintf("Tile(%d)", uint8(t))
}

// tileOf maps a character to its Tile.
func tileOf(ch byte) (Tile, bool) {
	switch ch {
	case '.':
		return Open, true
	case '#':
		return Wall, true
	case 'S':
		return Start, true
	case 'E':
		return End, true
	}

	return Open, false
}

// Position is a cell coordinate. Row grows southwards, Col grows eastwards.
type Position struct {
	Row, Col int
}

// Step returns the position one cell away from p in direction h.
// The result may lie outside the grid; callers check InBounds.
func (p Position) Step(h Heading) Position {
	d := h.Delta()

	return Position{Row: p.Row + d[0], Col: p.Col + d[1]}
}

// Behind returns the position one cell behind p when facing h,
// i.e. the cell a forward move along h would have come from.
func (p Position) Behind(h Heading) Position {
	return p.Step(h.Reverse())
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// State is the unit of search: a position together with the heading
// the agent faces there. Two states on the same cell with different
// headings are distinct.
type State struct {
	Pos     Position
	Heading Heading
}

// String formats s as "(row,col)/heading".
func (s State) String() string {
	return s.Pos.String() + "/" + s.Heading.String()
}
