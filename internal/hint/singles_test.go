package hint

import (
	"context"
	"testing"

	"github.com/Zalioth/SudokuHex/internal/domain"
)

func almostFullBoard(t *testing.T, blanks ...domain.Coord) *domain.Board {
	t.Helper()
	b := &domain.Board{}
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			b.Values[r][c] = uint8((domain.BoxSize*r + r/domain.BoxSize + c) % domain.GridSize)
		}
	}
	for _, q := range blanks {
		b.Values[q.Row][q.Col] = domain.Empty
	}
	return b
}

func TestHintFindsNakedSingle(t *testing.T) {
	blank := domain.Coord{Row: 7, Col: 11}
	b := almostFullBoard(t, blank)
	h, ok, err := NewSingles().Hint(context.Background(), b, domain.StrategySingles)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if !ok {
		t.Fatal("no hint found for a board with one blank")
	}
	if len(h.Cells) != 1 || h.Cells[0] != blank {
		t.Fatalf("hint points at %v, want %v", h.Cells, blank)
	}
	if h.Strategy != domain.StrategySingles {
		t.Fatalf("hint strategy = %v, want singles", h.Strategy)
	}
}

func TestHintNoneOnFullBoard(t *testing.T) {
	b := almostFullBoard(t)
	_, ok, err := NewSingles().Hint(context.Background(), b, domain.StrategyAdvanced)
	if err != nil {
		t.Fatalf("Hint failed: %v", err)
	}
	if ok {
		t.Fatal("hint reported for a board without blanks")
	}
}
