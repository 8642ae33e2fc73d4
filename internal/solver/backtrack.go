package solver

// BacktrackingSolver is a straightforward recursive solver. It carries no
// candidate bookkeeping at all, which makes it a useful independent
// cross-check for the constraint engine.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// --- helpers used by Solve/Unique (in other files) ---
func isValid(b *boardGrid, r, c int, v uint8) bool {
	for i := 0; i < gridSize; i++ {
		if b[r][i] == v || b[i][c] == v {
			return false
		}
	}
	br, bc := (r/boxSize)*boxSize, (c/boxSize)*boxSize
	for dr := 0; dr < boxSize; dr++ {
		for dc := 0; dc < boxSize; dc++ {
			if b[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

func findEmpty(b *boardGrid) (int, int, bool) {
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			if b[r][c] == empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
