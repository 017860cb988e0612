package maze

import (
	"fmt"
	"strings"
)

// Heading is one of the four cardinal directions the agent may face.
type Heading uint8

const (
	// North faces decreasing row.
	North Heading = iota
	// East faces increasing column.
	East
	// South faces increasing row.
	South
	// West faces decreasing column.
	West
)

// HeadingCount is the number of distinct headings.
const HeadingCount = 4

// Headings lists every heading in clockwise order starting at North.
var Headings = [HeadingCount]Heading{North, East, South, West}

// headingDeltas holds the (dRow, dCol) offset of a forward move per heading.
var headingDeltas = [HeadingCount][2]int{
	North: {-1, 0},
	East:  {0, 1},
	South: {1, 0},
	West:  {0, -1},
}

var headingNames = [HeadingCount]string{
	North: "north",
	East:  "east",
	South: "south",
	West:  "west",
}

// Clockwise returns the heading after a quarter turn to the right.
func (h Heading) Clockwise() Heading { return (h + 1) % HeadingCount }

// CounterClockwise returns the heading after a quarter turn to the left.
func (h Heading) CounterClockwise() Heading { return (h + HeadingCount - 1) % HeadingCount }

// Reverse returns the opposite heading. It is never a single turn.
func (h Heading) Reverse() Heading { return (h + 2) % HeadingCount }

// Turns returns the two headings reachable from h by a single in-place turn.
// Both the solver and the reconstructor enumerate turns through this method.
func (h Heading) Turns() [2]Heading {
	return [2]Heading{h.CounterClockwise(), h.Clockwise()}
}

// Delta returns the (dRow, dCol) offset of one forward move along h.
func (h Heading) Delta() [2]int { return headingDeltas[h%HeadingCount] }

// String implements fmt.Stringer.
func (h Heading) String() string {
	if h < HeadingCount {
		return headingNames[h]
	}

	return fmt.Sprintf("Heading(%d)", uint8(h))
}

// ParseHeading maps a case-insensitive name ("north", "e", ...) to a Heading.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	}

	return North, fmt.Errorf("%w: %q", ErrUnknownHeading, s)
}
