package solver

import (
	"context"
	"errors"
	"time"

	"github.com/Zalioth/SudokuHex/internal/domain"
	"github.com/Zalioth/SudokuHex/internal/ports"
)

// ConstraintSolver adapts the propagation engine to the Solver port.
type ConstraintSolver struct{}

func NewConstraintSolver() *ConstraintSolver { return &ConstraintSolver{} }

func (s *ConstraintSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	e, err := NewEngineFromBoard(b)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	out, st, err := e.Solve(ctx)
	if err != nil {
		return nil, st, err
	}
	out.Fixed = b.Fixed
	return out, st, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
// A contradictory board simply has zero solutions; that is not an error.
func (s *ConstraintSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	e, err := NewEngineFromBoard(b)
	if err != nil {
		if errors.Is(err, domain.ErrContradiction) {
			return false, ports.Stats{Duration: time.Since(start)}, nil
		}
		return false, ports.Stats{}, err
	}
	count := e.countSolutions(ctx, e.grid, 2)
	st := ports.Stats{
		Backtracks:    e.backtracks,
		HeuristicHits: e.heuristicHits,
		Duration:      time.Since(start),
	}
	if err := ctx.Err(); err != nil {
		return false, st, err
	}
	return count == 1, st, nil
}
