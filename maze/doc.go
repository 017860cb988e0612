// Package maze parses a rectangular text grid into an immutable tile matrix
// and defines the state space searched by the dijkstra and optimal packages.
//
// What:
//
//   - Grid stores tiles in a row-major flat buffer (row*Width + col).
//   - Exactly one Start ('S') and one End ('E') tile are required.
//   - Heading, Position and State describe the agent: a state is a cell
//     together with the direction the agent faces.
//
// Tiles:
//
//	'#' Wall   – never entered.
//	'.' Open   – free floor.
//	'S' Start  – single designated start cell.
//	'E' End    – single designated end cell.
//
// Headings:
//
//	North → East → South → West → North (clockwise successor).
//	Turns() yields the two adjacent headings; the reverse is never a turn.
//
// Errors:
//
//   - ErrEmptyGrid:     the input has no rows or no columns.
//   - ErrRaggedGrid:    rows have differing lengths.
//   - ErrUnknownTile:   a character outside "#.SE".
//   - ErrMissingStart / ErrMultipleStart
//   - ErrMissingEnd   / ErrMultipleEnd
//
// All errors are sentinels wrapped with location context; test them with
// errors.Is.
//
// Complexity:
//
//   - Parse:  O(W×H) time and memory.
//   - TileAt: O(1).
package maze
