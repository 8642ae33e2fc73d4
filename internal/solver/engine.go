package solver

import (
	"context"
	"sort"
	"time"

	"github.com/Zalioth/SudokuHex/internal/domain"
	"github.com/Zalioth/SudokuHex/internal/ports"
	"github.com/Zalioth/SudokuHex/internal/topology"
)

// Engine solves a hexadecimal sudoku by constraint propagation plus
// depth-first backtracking search. Branching uses most-restrained-variable
// selection and least-constraining-value ordering; a pigeonhole check over
// the units prunes doomed branches early.
type Engine struct {
	tables *topology.Tables
	grid   domain.Grid

	backtracks    int
	heuristicHits int
}

// NewEngine builds an engine from a 256-symbol template. The givens are
// propagated immediately; a contradiction among them surfaces here as
// domain.ErrContradiction, before any search runs.
func NewEngine(template string) (*Engine, error) {
	b, err := domain.ParseTemplate(template)
	if err != nil {
		return nil, err
	}
	return NewEngineFromBoard(b)
}

// NewEngineFromBoard builds an engine from an already-decoded board.
func NewEngineFromBoard(b *domain.Board) (*Engine, error) {
	e := &Engine{tables: topology.Build(), grid: gridFromBoard(b)}

	// Take the fresh domains to a consistent state: remove every fixed
	// value from its peers. The recursive eliminate handles chains where
	// a peer collapses to a singleton and forces further removals.
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			v, ok := e.grid[r][c].Sole()
			if !ok {
				continue
			}
			for _, p := range e.tables.Peers[r][c] {
				if !e.eliminate(&e.grid, p.Row, p.Col, v) {
					return nil, domain.ErrContradiction
				}
			}
		}
	}
	return e, nil
}

// Solve runs the search and returns the solved board. It fails with
// domain.ErrNoSolution when every branch is exhausted, or with the context
// error if the search was canceled.
func (e *Engine) Solve(ctx context.Context) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	out, ok := e.search(ctx, e.grid)
	st := ports.Stats{
		Backtracks:    e.backtracks,
		HeuristicHits: e.heuristicHits,
		Duration:      time.Since(start),
	}
	if !ok {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		return nil, st, domain.ErrNoSolution
	}
	e.grid = out
	return boardFromGrid(&out), st, nil
}

// Solved reports whether the current state is a full, internally consistent
// assignment: every cell holds exactly one value and no peer repeats it.
func (e *Engine) Solved() bool {
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			v, ok := e.grid[r][c].Sole()
			if !ok {
				return false
			}
			for _, p := range e.tables.Peers[r][c] {
				if pv, ok := e.grid[p.Row][p.Col].Sole(); ok && pv == v {
					return false
				}
			}
		}
	}
	return true
}

// eliminate removes value v from the domain of (r,c) and propagates the
// consequences. It reports false on contradiction, leaving g in an
// unspecified state that the caller must discard.
func (e *Engine) eliminate(g *domain.Grid, r, c int, v uint8) bool {
	if !g[r][c].Has(v) {
		return true // already eliminated
	}
	g[r][c] = g[r][c].Remove(v)

	switch g[r][c].Count() {
	case 0:
		// Removed the last candidate.
		return false
	case 1:
		// The cell collapsed to a single value; no peer may keep it.
		sole, _ := g[r][c].Sole()
		for _, p := range e.tables.Peers[r][c] {
			if !e.eliminate(g, p.Row, p.Col, sole) {
				return false
			}
		}
	}

	// Where can v still go in the three units containing (r,c)? If a unit
	// has no place left for it, this elimination was wrong. If exactly one
	// cell across the units can still take it, the value must go there.
	var only domain.Coord
	places := 0
	for u := 0; u < topology.NumUnits; u++ {
		inUnit := 0
		for _, q := range e.tables.Units[r][c][u] {
			if !g[q.Row][q.Col].Has(v) {
				continue
			}
			inUnit++
			switch {
			case places == 0:
				only = q
				places = 1
			case q != only:
				places = 2
			}
		}
		if inUnit == 0 {
			return false
		}
	}
	if places == 1 {
		return e.assign(g, only.Row, only.Col, v)
	}

	// More than one place remains, so the search owns that choice. Before
	// returning, prune via the AllDifferent pigeonhole argument: a unit of
	// 16 cells with fewer than 16 distinct candidates cannot be completed.
	for u := 0; u < topology.NumUnits; u++ {
		var pool domain.CellSet
		for _, q := range e.tables.Units[r][c][u] {
			pool |= g[q.Row][q.Col]
		}
		if pool.Count() < domain.GridSize {
			e.heuristicHits++
			return false
		}
	}
	return true
}

// assign fixes (r,c) to v by eliminating every other candidate.
func (e *Engine) assign(g *domain.Grid, r, c int, v uint8) bool {
	rest := g[r][c].Remove(v)
	for other := uint8(0); other < domain.GridSize; other++ {
		if !rest.Has(other) {
			continue
		}
		if !e.eliminate(g, r, c, other) {
			return false
		}
	}
	return true
}

type candidate struct {
	value     uint8
	peerCount int
}

// search runs the recursive depth-first search over copies of the grid.
// The input grid is taken by value: each branch mutates its own copy, so
// sibling branches never observe each other's tentative eliminations.
func (e *Engine) search(ctx context.Context, g domain.Grid) (domain.Grid, bool) {
	// One row-major scan: detect contradictions, check the goal condition
	// and pick the most restrained cell (smallest domain above 1, first
	// encountered wins ties).
	solved := true
	bestR, bestC, bestN := -1, -1, 0
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			n := g[r][c].Count()
			if n == 0 {
				return g, false
			}
			if n > 1 {
				solved = false
				if bestR < 0 || n < bestN {
					bestR, bestC, bestN = r, c, n
				}
			}
		}
	}
	if solved {
		return g, true
	}

	// Least-constraining value first: order the candidates by how many of
	// the cell's peers still hold them, fewest first. The sort is stable,
	// so ties keep natural value order and the search stays deterministic.
	cands := make([]candidate, 0, bestN)
	for v := uint8(0); v < domain.GridSize; v++ {
		if !g[bestR][bestC].Has(v) {
			continue
		}
		n := 0
		for _, p := range e.tables.Peers[bestR][bestC] {
			if g[p.Row][p.Col].Has(v) {
				n++
			}
		}
		cands = append(cands, candidate{value: v, peerCount: n})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].peerCount < cands[j].peerCount })

	for _, cand := range cands {
		select {
		case <-ctx.Done():
			return g, false
		default:
		}
		work := g // copy-on-branch
		if e.assign(&work, bestR, bestC, cand.value) {
			if out, ok := e.search(ctx, work); ok {
				return out, true
			}
		}
		e.backtracks++
	}
	return g, false
}

// countSolutions explores the state like search but keeps going after a
// solution until limit is reached. Used for uniqueness testing.
func (e *Engine) countSolutions(ctx context.Context, g domain.Grid, limit int) int {
	solved := true
	bestR, bestC, bestN := -1, -1, 0
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			n := g[r][c].Count()
			if n == 0 {
				return 0
			}
			if n > 1 {
				solved = false
				if bestR < 0 || n < bestN {
					bestR, bestC, bestN = r, c, n
				}
			}
		}
	}
	if solved {
		return 1
	}

	total := 0
	for v := uint8(0); v < domain.GridSize; v++ {
		if !g[bestR][bestC].Has(v) {
			continue
		}
		select {
		case <-ctx.Done():
			return total
		default:
		}
		work := g
		if e.assign(&work, bestR, bestC, v) {
			total += e.countSolutions(ctx, work, limit-total)
			if total >= limit {
				return total
			}
		}
	}
	return total
}

// gridFromBoard expands a digit board into candidate sets.
func gridFromBoard(b *domain.Board) domain.Grid {
	var g domain.Grid
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if v := b.Values[r][c]; v == domain.Empty {
				g[r][c] = domain.FullSet
			} else {
				g[r][c] = domain.SetOf(v)
			}
		}
	}
	return g
}

// boardFromGrid collapses candidate sets into a digit board; cells that are
// not yet singleton come out as Empty.
func boardFromGrid(g *domain.Grid) *domain.Board {
	b := &domain.Board{}
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if v, ok := g[r][c].Sole(); ok {
				b.Values[r][c] = v
			} else {
				b.Values[r][c] = domain.Empty
			}
		}
	}
	return b
}
