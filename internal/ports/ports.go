package ports

import (
	"context"
	"time"

	"github.com/Zalioth/SudokuHex/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	// Nodes counts candidate placements tried by the plain tree solvers.
	Nodes int
	// Backtracks counts abandoned branches of the constraint search.
	Backtracks int
	// HeuristicHits counts branches pruned by the pigeonhole check.
	HeuristicHits int
	Duration      time.Duration
}

// Solver solves a board and can test uniqueness.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.Coord, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board, max domain.StrategyTier) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
