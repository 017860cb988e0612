package maze_test

import (
	"fmt"

	"github.com/katalvlaran/headway/maze"
)

// ExampleParse demonstrates parsing a tiny maze and locating its Start and End.
func ExampleParse() {
	g, err := maze.Parse("#####\n#S.E#\n#####\n")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%dx%d start=%s end=%s\n", g.Height(), g.Width(), g.Start(), g.End())
	// Output: 3x5 start=(1,1) end=(1,3)
}

// ExampleHeading_Turns shows the two in-place turns available from each heading.
func ExampleHeading_Turns() {
	for _, h := range maze.Headings {
		t := h.Turns()
		fmt.Printf("%s: %s %s\n", h, t[0], t[1])
	}
	// Output:
	// north: west east
	// east: north south
	// south: east west
	// west: south north
}
