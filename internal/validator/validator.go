package validator

import (
	"context"

	"github.com/Zalioth/SudokuHex/internal/domain"
)

type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.Coord, error) {
	conf := make([]domain.Coord, 0, 8)
	// rows
	for r := 0; r < domain.GridSize; r++ {
		m := 0
		for c := 0; c < domain.GridSize; c++ {
			val := b.Values[r][c]
			if val == domain.Empty {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Coord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < domain.GridSize; c++ {
		m := 0
		for r := 0; r < domain.GridSize; r++ {
			val := b.Values[r][c]
			if val == domain.Empty {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Coord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < domain.GridSize; br += domain.BoxSize {
		for bc := 0; bc < domain.GridSize; bc += domain.BoxSize {
			m := 0
			for dr := 0; dr < domain.BoxSize; dr++ {
				for dc := 0; dc < domain.BoxSize; dc++ {
					r := br + dr
					c := bc + dc
					val := b.Values[r][c]
					if val == domain.Empty {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.Coord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether the board is fully filled and conflict-free.
func (v *FastValidator) Complete(ctx context.Context, b *domain.Board) (bool, error) {
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			if b.Values[r][c] == domain.Empty {
				return false, nil
			}
		}
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
