package dijkstra_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/headway/dijkstra"
	"github.com/katalvlaran/headway/internal/mazetest"
	"github.com/katalvlaran/headway/maze"
)

// openField builds an n×n walled field with Start bottom-left and End top-right.
func openField(n int) string {
	var sb strings.Builder
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			switch {
			case r == 0 || c == 0 || r == n-1 || c == n-1:
				sb.WriteByte('#')
			case r == n-2 && c == 1:
				sb.WriteByte('S')
			case r == 1 && c == n-2:
				sb.WriteByte('E')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// BenchmarkSolve_Reference17 measures Solve on the 17×17 reference maze.
func BenchmarkSolve_Reference17(b *testing.B) {
	g := mazetest.MustParse(b, mazetest.Reference17)
	start := mazetest.StartFacing(g, maze.East)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Solve(g, start)
	}
}

// BenchmarkSolve_OpenField measures Solve on a 141×141 field without inner walls.
// Complexity: O(S log S), S = 141×141×4.
func BenchmarkSolve_OpenField(b *testing.B) {
	g := mazetest.MustParse(b, openField(141))
	start := mazetest.StartFacing(g, maze.East)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.Solve(g, start)
	}
}
