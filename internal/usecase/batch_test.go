package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Zalioth/SudokuHex/internal/domain"
	"github.com/Zalioth/SudokuHex/internal/solver"
	"github.com/Zalioth/SudokuHex/internal/validator"
)

func patternTemplate() string {
	buf := make([]byte, 0, domain.NumCells)
	for r := 0; r < domain.GridSize; r++ {
		for c := 0; c < domain.GridSize; c++ {
			buf = append(buf, domain.DigitChar(uint8((domain.BoxSize*r+r/domain.BoxSize+c)%domain.GridSize)))
		}
	}
	return string(buf)
}

func TestRunBatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := NewService(solver.NewConstraintSolver(), validator.New(), nil, nil)

	solvable := patternTemplate()
	blanked := "." + solvable[1:]
	malformed := strings.Repeat(".", domain.NumCells-1)

	report, err := svc.RunBatch(ctx, []string{solvable, blanked, malformed})
	if err != nil {
		t.Fatalf("RunBatch failed: %v", err)
	}
	if len(report.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(report.Results))
	}
	if report.AllSolved {
		t.Fatal("AllSolved despite a malformed template")
	}
	if got := report.Solved(); got != 2 {
		t.Fatalf("Solved() = %d, want 2", got)
	}
	if !errors.Is(report.Results[2].Err, domain.ErrMalformedPuzzle) {
		t.Fatalf("result 2 error = %v, want ErrMalformedPuzzle", report.Results[2].Err)
	}
	if report.Results[1].Solution != solvable {
		t.Fatalf("blanked template solved to\n%s\nwant\n%s", report.Results[1].Solution, solvable)
	}
	if report.TotalDuration <= 0 {
		t.Fatal("TotalDuration not accumulated")
	}
}

func TestSolveTemplateContradiction(t *testing.T) {
	ctx := context.Background()
	svc := NewService(solver.NewConstraintSolver(), validator.New(), nil, nil)

	tpl := []byte(patternTemplate())
	tpl[1] = tpl[0]
	if _, _, err := svc.SolveTemplate(ctx, string(tpl)); !errors.Is(err, domain.ErrContradiction) {
		t.Fatalf("got %v, want ErrContradiction", err)
	}
}
