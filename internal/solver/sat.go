package solver

import (
	"context"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/Zalioth/SudokuHex/internal/domain"
	"github.com/Zalioth/SudokuHex/internal/ports"
)

// SATSolver reduces the puzzle to CNF and hands it to the gini SAT solver.
// One variable per (row, col, value) triple; every cell gets at least one
// value and every unit holds each value at most once. Exactly-one per cell
// follows by counting, so no per-cell at-most-one clauses are needed.
type SATSolver struct{}

func NewSATSolver() *SATSolver { return &SATSolver{} }

func satLit(r, c, v int) z.Lit {
	return z.Var(r*nCells + c*nSize + v + 1).Pos()
}

func buildCNF(g *gini.Gini, b *domain.Board) {
	// every cell has a value
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := 0; v < nSize; v++ {
				g.Add(satLit(r, c, v))
			}
			g.Add(0)
		}
	}

	atMostOnce := func(cells []domain.Coord) {
		for v := 0; v < nSize; v++ {
			for i := 0; i < len(cells); i++ {
				a := satLit(cells[i].Row, cells[i].Col, v)
				for j := i + 1; j < len(cells); j++ {
					bb := satLit(cells[j].Row, cells[j].Col, v)
					g.Add(a.Not())
					g.Add(bb.Not())
					g.Add(0)
				}
			}
		}
	}

	cells := make([]domain.Coord, nSize)
	// rows and columns
	for i := 0; i < nSize; i++ {
		for k := 0; k < nSize; k++ {
			cells[k] = domain.Coord{Row: i, Col: k}
		}
		atMostOnce(cells)
		for k := 0; k < nSize; k++ {
			cells[k] = domain.Coord{Row: k, Col: i}
		}
		atMostOnce(cells)
	}
	// boxes
	for br := 0; br < nSize; br += boxSize {
		for bc := 0; bc < nSize; bc += boxSize {
			for k := 0; k < nSize; k++ {
				cells[k] = domain.Coord{Row: br + k/boxSize, Col: bc + k%boxSize}
			}
			atMostOnce(cells)
		}
	}

	// givens become unit clauses
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			if v := b.Values[r][c]; v != domain.Empty {
				g.Add(satLit(r, c, int(v)))
				g.Add(0)
			}
		}
	}
}

func extractBoard(g *gini.Gini, b *domain.Board) *domain.Board {
	out := &domain.Board{Values: b.Values, Fixed: b.Fixed}
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			for v := 0; v < nSize; v++ {
				if g.Value(satLit(r, c, v)) {
					out.Values[r][c] = uint8(v)
					break
				}
			}
		}
	}
	return out
}

func (s *SATSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	g := gini.New()
	buildCNF(g, b)
	if g.Solve() != 1 {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrNoSolution
	}
	return extractBoard(g, b), ports.Stats{Duration: time.Since(start)}, nil
}

// Unique solves, then blocks the found assignment and solves again.
func (s *SATSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{}, err
	}
	g := gini.New()
	buildCNF(g, b)
	if g.Solve() != 1 {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	// forbid the assignment just found
	first := extractBoard(g, b)
	for r := 0; r < nSize; r++ {
		for c := 0; c < nSize; c++ {
			g.Add(satLit(r, c, int(first.Values[r][c])).Not())
		}
	}
	g.Add(0)
	unique := g.Solve() != 1
	return unique, ports.Stats{Duration: time.Since(start)}, nil
}
