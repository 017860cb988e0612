// Package dijkstra provides an exact label-setting shortest-path search over
// the implicit (position, heading) state space of a maze.Grid.
//
// Overview:
//
//   - The graph is never materialized. From a state the agent may move one
//     cell forward along its heading (MoveCost, default 1) or turn in place to
//     either adjacent heading (TurnCost, default 1000). There is no U-turn.
//   - Solve relaxes edges in increasing order of score using a min-heap with
//     lazy decrease-key; stale heap entries are discarded on pop.
//   - The fully settled ScoreTable is returned alongside the minimum score, as
//     the input for optimal-path reconstruction (package optimal).
//
// End-heading policy:
//
//   - EndAll (default): once the first End state settles, keep settling until
//     the frontier minimum exceeds MinScore, so every End heading tied at the
//     minimum is recorded in Result.EndStates.
//   - EndFirst: stop as soon as the first End state settles.
//
// Both policies yield the same MinScore. Every table entry below MinScore is
// final under either policy.
//
// Outcomes:
//
//   - Result.Found == true:  MinScore, Table and EndStates are populated.
//   - Result.Found == false: End is unreachable from the start state. This is
//     a normal outcome, not an error.
//
// Errors (sentinel):
//
//   - ErrNilGrid:         grid pointer is nil.
//   - ErrStartOutOfGrid:  start position lies outside the grid.
//   - ErrStartOnWall:     start position is a Wall tile.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrScoreOverflow:   a score accumulation would exceed Infinity.
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4 states, each with at most 3 out-edges.
//   - Space: O(S) for the table plus O(3S) worst-case heap entries.
package dijkstra
