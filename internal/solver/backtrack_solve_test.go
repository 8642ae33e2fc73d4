package solver

import (
	"context"
	"testing"
	"time"
)

func TestBacktrackingSolve(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	in := mustParse(t, blank(patternTemplate(), 0, 1, 2, 35, 36, 100, 101, 200, 254, 255))
	s := NewBacktrackingSolver()
	out, st, err := s.Solve(ctx, in)
	if err != nil {
		t.Fatalf("Solve failed: %v (nodes=%d dur=%v)", err, st.Nodes, st.Duration)
	}
	checkSolved(t, ctx, out)
	if got := out.Template(); got != patternTemplate() {
		t.Fatalf("wrong solution:\n got %s\nwant %s", got, patternTemplate())
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestBacktrackingUnique(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s := NewBacktrackingSolver()

	few := mustParse(t, blank(patternTemplate(), 0, 17, 34))
	ok, _, err := s.Unique(ctx, few)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if !ok {
		t.Fatal("puzzle with forced blanks reported as non-unique")
	}

	many := mustParse(t, blankValues(patternTemplate(), '7', '8'))
	ok, _, err = s.Unique(ctx, many)
	if err != nil {
		t.Fatalf("Unique failed: %v", err)
	}
	if ok {
		t.Fatal("puzzle with swappable values reported as unique")
	}
}

func TestBacktrackingAgreesWithEngine(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tpl := blank(patternTemplate(), 3, 19, 40, 77, 130, 222)
	bt, _, err := NewBacktrackingSolver().Solve(ctx, mustParse(t, tpl))
	if err != nil {
		t.Fatalf("backtracking failed: %v", err)
	}
	cp, _, err := NewConstraintSolver().Solve(ctx, mustParse(t, tpl))
	if err != nil {
		t.Fatalf("constraint engine failed: %v", err)
	}
	if bt.Template() != cp.Template() {
		t.Fatalf("solvers disagree on a unique puzzle:\n%s\n%s", bt.Template(), cp.Template())
	}
}
