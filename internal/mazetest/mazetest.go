// Package mazetest holds reference mazes shared by the package tests.
package mazetest

import (
	"testing"

	"github.com/katalvlaran/headway/maze"
)

// Reference15 is a 15×15 maze: minimum score 7036, 45 cells on optimal paths.
const Reference15 = `###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
`

// Reference17 is a 17×17 maze: minimum score 11048, 64 cells on optimal paths.
const Reference17 = `#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

// WalledOff has its End enclosed by walls.
const WalledOff = `#######
#S..#.#
#...#E#
#######
`

// Corridor is a straight east-facing corridor: score 4, 5 cells.
const Corridor = `#######
#S...E#
#######
`

// Pillar puts a wall straight ahead of a north-facing Start. Going round
// either side costs 3004 and ends in a different heading, so all 8 open
// cells are optimal and two End states tie.
const Pillar = `#####
#.E.#
#.#.#
#.S.#
#####
`

// Expected pairs a maze with its reference results.
type Expected struct {
	Name     string
	Text     string
	Heading  maze.Heading
	MinScore int64
	Cells    int
	Ends     int
}

// References lists the mazes with known results.
var References = []Expected{
	{Name: "reference15", Text: Reference15, Heading: maze.East, MinScore: 7036, Cells: 45, Ends: 1},
	{Name: "reference17", Text: Reference17, Heading: maze.East, MinScore: 11048, Cells: 64, Ends: 1},
	{Name: "corridor", Text: Corridor, Heading: maze.East, MinScore: 4, Cells: 5, Ends: 1},
	{Name: "pillar", Text: Pillar, Heading: maze.North, MinScore: 3004, Cells: 8, Ends: 2},
}

// MustParse parses text or fails the test.
func MustParse(tb testing.TB, text string) *maze.Grid {
	tb.Helper()
	g, err := maze.Parse(text)
	if err != nil {
		tb.Fatalf("maze.Parse: %v", err)
	}

	return g
}

// StartFacing returns g's Start position facing h.
func StartFacing(g *maze.Grid, h maze.Heading) maze.State {
	return maze.State{Pos: g.Start(), Heading: h}
}
