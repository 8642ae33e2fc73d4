package topology

import (
	"testing"

	"github.com/Zalioth/SudokuHex/internal/domain"
)

func TestUnitsShape(t *testing.T) {
	tab := Build()
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			units := tab.Units[r][c]
			// row unit
			for k, q := range units[0] {
				if q.Row != r || q.Col != k {
					t.Fatalf("row unit of (%d,%d) has %v at index %d", r, c, q, k)
				}
			}
			// column unit
			for k, q := range units[1] {
				if q.Row != k || q.Col != c {
					t.Fatalf("column unit of (%d,%d) has %v at index %d", r, c, q, k)
				}
			}
			// box unit: every member shares the cell's box
			want := BoxIndex(r, c)
			for _, q := range units[2] {
				if BoxIndex(q.Row, q.Col) != want {
					t.Fatalf("box unit of (%d,%d) contains %v from box %d, want %d",
						r, c, q, BoxIndex(q.Row, q.Col), want)
				}
			}
			// each unit contains the cell itself
			for u := 0; u < NumUnits; u++ {
				found := false
				for _, q := range units[u] {
					if q == (domain.Coord{Row: r, Col: c}) {
						found = true
						break
					}
				}
				if !found {
					t.Fatalf("unit %d of (%d,%d) does not contain the cell", u, r, c)
				}
			}
		}
	}
}

func TestPeersCountAndDedup(t *testing.T) {
	tab := Build()
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			peers := tab.Peers[r][c]
			if len(peers) != 39 {
				t.Fatalf("cell (%d,%d) has %d peers, want 39", r, c, len(peers))
			}
			seen := map[domain.Coord]bool{}
			for _, p := range peers {
				if p == (domain.Coord{Row: r, Col: c}) {
					t.Fatalf("cell (%d,%d) lists itself as a peer", r, c)
				}
				if seen[p] {
					t.Fatalf("cell (%d,%d) lists peer %v twice", r, c, p)
				}
				seen[p] = true
			}
		}
	}
}

func TestPeersSymmetric(t *testing.T) {
	tab := Build()
	has := func(r, c int, q domain.Coord) bool {
		for _, p := range tab.Peers[r][c] {
			if p == q {
				return true
			}
		}
		return false
	}
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			for _, p := range tab.Peers[r][c] {
				if !has(p.Row, p.Col, domain.Coord{Row: r, Col: c}) {
					t.Fatalf("(%d,%d) lists %v as peer but not vice versa", r, c, p)
				}
			}
		}
	}
}
