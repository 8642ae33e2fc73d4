// Package topology precomputes the unit and peer lookup tables for the
// 16x16 grid. Every cell belongs to exactly three units (its row, its
// column and its 4x4 box); its peers are the other cells of those units,
// deduplicated. The tables are pure functions of the grid shape and are
// read-only after Build.
package topology

import "github.com/Zalioth/SudokuHex/internal/domain"

const (
	gridSize = domain.GridSize
	boxSize  = domain.BoxSize
)

// NumUnits is the number of units each cell belongs to.
const NumUnits = 3

// Tables holds the per-cell unit and peer lookups.
type Tables struct {
	// Units[r][c] lists the row, column and box unit of (r,c), in that
	// fixed order. Each unit is the ordered list of its 16 coordinates.
	Units [gridSize][gridSize][NumUnits][gridSize]domain.Coord

	// Peers[r][c] lists every cell sharing a unit with (r,c), excluding
	// (r,c) itself, with duplicates removed. For this geometry the list
	// always has 39 entries, but the count falls out of the dedup rather
	// than being assumed.
	Peers [gridSize][gridSize][]domain.Coord
}

// Build computes the tables for the fixed 16x16 geometry.
func Build() *Tables {
	t := &Tables{}
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			br := r / boxSize * boxSize
			bc := c / boxSize * boxSize
			for k := 0; k < gridSize; k++ {
				t.Units[r][c][0][k] = domain.Coord{Row: r, Col: k}
				t.Units[r][c][1][k] = domain.Coord{Row: k, Col: c}
				t.Units[r][c][2][k] = domain.Coord{Row: br + k/boxSize, Col: bc + k%boxSize}
			}

			var seen [gridSize][gridSize]bool
			seen[r][c] = true
			peers := make([]domain.Coord, 0, NumUnits*(gridSize-1))
			for u := 0; u < NumUnits; u++ {
				for _, p := range t.Units[r][c][u] {
					if !seen[p.Row][p.Col] {
						seen[p.Row][p.Col] = true
						peers = append(peers, p)
					}
				}
			}
			t.Peers[r][c] = peers
		}
	}
	return t
}

// BoxIndex returns the box number of (r,c): 4*(r/4) + c/4.
func BoxIndex(r, c int) int { return r/boxSize*boxSize + c/boxSize }
