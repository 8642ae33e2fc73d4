package solver

import (
	"context"
	"testing"

	"github.com/Zalioth/SudokuHex/internal/domain"
	"github.com/Zalioth/SudokuHex/internal/validator"
)

// A real benchmark puzzle (105 givens) with a unique solution.
const sample = ".E8F..39724BD5.67C9.....D.A...E0..B...E...601.C..0.6F.......7.......0F6...94BD.....C..9.8..20.5A8....A.4.7..31..92..8..E3.5....4A.736CF82B..E.0DB61493..E..82..CC8..A..D4..56.1..9.....06.F.8..5F...EB0..42.A6.8E..1.5A.B.8D90.F...8.9.F.6...EB1..D..681..E....."

// patternTemplate builds a complete valid grid from the shifted pattern
// v(r,c) = (4r + r/4 + c) mod 16.
func patternTemplate() string {
	buf := make([]byte, 0, domain.NumCells)
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			buf = append(buf, domain.DigitChar(uint8((domain.BoxSize*r+r/domain.BoxSize+c)%domain.GridSize)))
		}
	}
	return string(buf)
}

// blank returns tpl with the given row-major positions replaced by '.'.
func blank(tpl string, positions ...int) string {
	buf := []byte(tpl)
	for _, p := range positions {
		buf[p] = '.'
	}
	return string(buf)
}

// blankValues returns tpl with every occurrence of the given symbols
// replaced by '.'.
func blankValues(tpl string, symbols ...byte) string {
	buf := []byte(tpl)
	for i, ch := range buf {
		for _, s := range symbols {
			if ch == s {
				buf[i] = '.'
			}
		}
	}
	return string(buf)
}

func mustParse(t *testing.T, tpl string) *domain.Board {
	t.Helper()
	b, err := domain.ParseTemplate(tpl)
	if err != nil {
		t.Fatalf("ParseTemplate failed: %v", err)
	}
	return b
}

// checkSolved fails the test unless b is a complete, conflict-free grid.
func checkSolved(t *testing.T, ctx context.Context, b *domain.Board) {
	t.Helper()
	ok, err := validator.New().Complete(ctx, b)
	if err != nil {
		t.Fatalf("validator failed: %v", err)
	}
	if !ok {
		t.Fatalf("board is not a valid complete grid:\n%s", b.Template())
	}
}
