// Package headway finds minimum-cost routes through mazes walked by an agent
// that moves forward one cell at a time or turns in place, where turning
// costs far more than moving.
//
// What is headway?
//
//	A small, dependency-light engine that searches the implicit
//	(row, column, heading) state space of a grid and reports:
//		• the minimum score to reach End in any heading
//		• the set of cells lying on at least one minimum-cost route
//
// Under the hood, everything is organized under these subpackages:
//
//	maze/        immutable grid model, tiles, headings and states
//	dijkstra/    label-setting search producing a ScoreTable
//	optimal/     optimal-path union and single-path reconstruction
//	engine/      parse → solve → reconstruct pipeline, logging, batches
//	config/      YAML / environment configuration
//	cmd/headway  command line front end
//
// Quick ASCII example (start faces north, a pillar blocks the way):
//
//	#####
//	#.E.#     both detours cost 3004 = 3 turns + 4 moves,
//	#.#.#     so all 8 open cells are optimal.
//	#.S.#
//	#####
package headway
