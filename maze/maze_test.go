package maze_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/headway/maze"
)

// TestParse_Simple checks dimensions, Start/End location and tile lookup
// on a small 3×5 grid.
//
//	#####
//	#S.E#
//	#####
func TestParse_Simple(t *testing.T) {
	g, err := maze.Parse("#####\n#S.E#\n#####\n")
	require.NoError(t, err)

	assert.Equal(t, 5, g.Width())
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, maze.Position{Row: 1, Col: 1}, g.Start())
	assert.Equal(t, maze.Position{Row: 1, Col: 3}, g.End())
	assert.Equal(t, maze.Wall, g.TileAt(0, 0))
	assert.Equal(t, maze.Start, g.TileAt(1, 1))
	assert.Equal(t, maze.Open, g.TileAt(1, 2))
	assert.Equal(t, maze.End, g.TileAt(1, 3))
}

// TestParse_LineEndings ensures CRLF input and missing trailing newline parse identically.
func TestParse_LineEndings(t *testing.T) {
	a, err := maze.Parse("#S#\r\n#E#\r\n")
	require.NoError(t, err)
	b, err := maze.Parse("#S#\n#E#")
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	assert.Equal(t, "#S#\n#E#\n", a.String())
}

// TestParse_Errors is a table of malformed inputs and the sentinel each must yield.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", maze.ErrEmptyGrid},
		{"blank lines", "\n\n", maze.ErrEmptyGrid},
		{"ragged", "#S.#\n#E#\n", maze.ErrRaggedGrid},
		{"unknown tile", "#S.#\n#EX#\n", maze.ErrUnknownTile},
		{"missing start", "#..#\n#.E#\n", maze.ErrMissingStart},
		{"missing end", "#S.#\n#..#\n", maze.ErrMissingEnd},
		{"multiple start", "#SS#\n#.E#\n", maze.ErrMultipleStart},
		{"multiple end", "#S.#\n#EE#\n", maze.ErrMultipleEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Parse(tc.text)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.want), "got %v; want %v", err, tc.want)
		})
	}
}

func TestParseReader(t *testing.T) {
	g, err := maze.ParseReader(strings.NewReader("S.E\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 1, g.Height())
}

// TestTileAt_OutOfBounds verifies out-of-range lookups panic.
func TestTileAt_OutOfBounds(t *testing.T) {
	g, err := maze.Parse("S.E")
	require.NoError(t, err)

	assert.Panics(t, func() { g.TileAt(0, 3) })
	assert.Panics(t, func() { g.TileAt(-1, 0) })
	assert.NotPanics(t, func() { g.TileAt(0, 2) })
}

func TestWalkable(t *testing.T) {
	g, err := maze.Parse("S#E")
	require.NoError(t, err)

	assert.True(t, g.Walkable(maze.Position{Row: 0, Col: 0}))
	assert.False(t, g.Walkable(maze.Position{Row: 0, Col: 1}))
	assert.True(t, g.Walkable(maze.Position{Row: 0, Col: 2}))
	assert.False(t, g.Walkable(maze.Position{Row: 0, Col: 3}))
	assert.False(t, g.Walkable(maze.Position{Row: 1, Col: 0}))
}

// TestRender marks every open cell and keeps walls, Start and End untouched.
func TestRender(t *testing.T) {
	g, err := maze.Parse("#S..E#")
	require.NoError(t, err)

	got := g.Render(func(p maze.Position) byte {
		if p.Col == 2 {
			return 'O'
		}
		return 0
	})
	assert.Equal(t, "#SO.E#\n", got)
}

// TestHeading_Adjacency checks the clockwise successor table and that
// Turns never yields the reverse heading.
func TestHeading_Adjacency(t *testing.T) {
	assert.Equal(t, maze.East, maze.North.Clockwise())
	assert.Equal(t, maze.South, maze.East.Clockwise())
	assert.Equal(t, maze.West, maze.South.Clockwise())
	assert.Equal(t, maze.North, maze.West.Clockwise())

	for _, h := range maze.Headings {
		assert.Equal(t, h, h.Clockwise().CounterClockwise(), "heading %s", h)
		assert.Equal(t, h, h.Reverse().Reverse(), "heading %s", h)

		turns := h.Turns()
		assert.NotContains(t, turns[:], h)
		assert.NotContains(t, turns[:], h.Reverse())
		assert.ElementsMatch(t, []maze.Heading{h.Clockwise(), h.CounterClockwise()}, turns[:])
	}
}

func TestPosition_StepBehind(t *testing.T) {
	p := maze.Position{Row: 3, Col: 3}
	assert.Equal(t, maze.Position{Row: 2, Col: 3}, p.Step(maze.North))
	assert.Equal(t, maze.Position{Row: 3, Col: 4}, p.Step(maze.East))
	assert.Equal(t, maze.Position{Row: 3, Col: 2}, p.Behind(maze.East))
	for _, h := range maze.Headings {
		assert.Equal(t, p, p.Step(h).Behind(h))
	}
}

func TestParseHeading(t *testing.T) {
	for in, want := range map[string]maze.Heading{
		"north": maze.North, "E": maze.East, " South ": maze.South, "w": maze.West,
	} {
		got, err := maze.ParseHeading(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := maze.ParseHeading("up")
	assert.ErrorIs(t, err, maze.ErrUnknownHeading)
}
