// Package maze provides the immutable grid model searched by the solver.
//
// A Grid is built once by Parse and is read-only thereafter, so it may be
// shared freely between goroutines.
package maze

import (
	"fmt"
	"io"
	"strings"
)

// Grid is an immutable rectangular tile matrix with a single Start and End.
// Tiles are stored row-major: tiles[row*width + col].
type Grid struct {
	width, height int
	tiles         []Tile
	start, end    Position
}

// Parse builds a Grid from its textual form: one row per line, one tile per
// character. A trailing newline and Windows line endings are tolerated.
//
// Returns ErrEmptyGrid, ErrRaggedGrid, ErrUnknownTile, ErrMultipleStart,
// ErrMultipleEnd, ErrMissingStart or ErrMissingEnd (wrapped with context).
// Complexity: O(W×H) time and memory.
func Parse(text string) (*Grid, error) {
	// 1) Split into rows, dropping trailing blank lines.
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	h, w := len(lines), len(lines[0])
	g := &Grid{
		width:  w,
		height: h,
		tiles:  make([]Tile, 0, w*h),
	}

	// 2) Classify every character, tracking Start/End occurrences.
	var starts, ends int
	for r, line := range lines {
		if len(line) != w {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrRaggedGrid, r, len(line), w)
		}
		for c := 0; c < w; c++ {
			t, ok := tileOf(line[c])
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTile, line[c], r, c)
			}
			switch t {
			case Start:
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second start at (%d,%d)", ErrMultipleStart, r, c)
				}
				g.start = Position{Row: r, Col: c}
			case End:
				ends++
				if ends > 1 {
					return nil, fmt.Errorf("%w: second end at (%d,%d)", ErrMultipleEnd, r, c)
				}
				g.end = Position{Row: r, Col: c}
			}
			g.tiles = append(g.tiles, t)
		}
	}

	// 3) Exactly one of each is required.
	if starts == 0 {
		return nil, ErrMissingStart
	}
	if ends == 0 {
		return nil, ErrMissingEnd
	}

	return g, nil
}

// ParseReader reads all of r and parses it with Parse.
func ParseReader(r io.Reader) (*Grid, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("maze: read input: %w", err)
	}

	return Parse(string(data))
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the position of the Start tile.
func (g *Grid) Start() Position { return g.start }

// End returns the position of the End tile.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.height && p.Col >= 0 && p.Col < g.width
}

// TileAt returns the tile at (row, col).
// Out-of-range access is a programming error and panics; callers that may
// step off the grid check InBounds first.
func (g *Grid) TileAt(row, col int) Tile {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("maze: TileAt(%d,%d) out of bounds for %dx%d grid", row, col, g.height, g.width))
	}

	return g.tiles[row*g.width+col]
}

// Walkable reports whether p is inside the grid and not a Wall.
func (g *Grid) Walkable(p Position) bool {
	return g.InBounds(p) && g.tiles[p.Row*g.width+p.Col] != Wall
}

// String renders g back into its textual form, one line per row.
func (g *Grid) String() string {
	return g.Render(nil)
}

// Render is like String, but every position for which mark returns a
// non-zero byte is drawn with that byte instead of its tile. Start and End
// keep their own characters. A nil mark renders the plain grid.
func (g *Grid) Render(mark func(Position) byte) string {
	var sb strings.Builder
	sb.Grow((g.width + 1) * g.height)
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			t := g.tiles[r*g.width+c]
			ch := t.Byte()
			if mark != nil && t != Start && t != End {
				if m := mark(Position{Row: r, Col: c}); m != 0 {
					ch = m
				}
			}
			sb.WriteByte(ch)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
