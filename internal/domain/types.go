package domain

import "math/bits"

// Grid geometry for hexadecimal sudoku.
const (
	GridSize = 16
	BoxSize  = 4
	NumCells = GridSize * GridSize
)

// Empty marks a blank board cell. 0x0 is a real digit in a hexadecimal
// sudoku, so the usual zero-as-empty convention does not work.
const Empty uint8 = 0xFF

// CellSet is the set of candidate values (0x0-0xF) still possible for a
// cell, one bit per value. It has value semantics; Remove returns a new set.
type CellSet uint16

// FullSet contains all sixteen candidate values.
const FullSet CellSet = 0xFFFF

// SetOf returns the singleton set holding v.
func SetOf(v uint8) CellSet { return 1 << v }

func (s CellSet) Has(v uint8) bool { return s&(1<<v) != 0 }

func (s CellSet) Remove(v uint8) CellSet { return s &^ (1 << v) }

func (s CellSet) Count() int { return bits.OnesCount16(uint16(s)) }

// Sole returns the single remaining value of a singleton set.
func (s CellSet) Sole() (uint8, bool) {
	if s.Count() != 1 {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))), true
}

// String renders the remaining candidates as hex digits, e.g. "049F".
func (s CellSet) String() string {
	buf := make([]byte, 0, GridSize)
	for v := uint8(0); v < GridSize; v++ {
		if s.Has(v) {
			buf = append(buf, DigitChar(v))
		}
	}
	return string(buf)
}

// Grid is the full puzzle state: one candidate set per cell. It is a plain
// value type so that copy-on-branch in the search is a single bulk copy.
type Grid [GridSize][GridSize]CellSet

// Board holds a partial or solved digit grid at the I/O boundary.
type Board struct {
	Values [GridSize][GridSize]uint8
	Fixed  [GridSize][GridSize]bool
}

// Coord identifies a cell on the board.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a strategy suggestion for a client.
type Hint struct {
	Message  string       `json:"message,omitempty"`
	Cells    []Coord      `json:"cells,omitempty"`
	Strategy StrategyTier `json:"strategy,omitempty"`
}

// Puzzle is a persisted hexadecimal sudoku with metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Template  string `json:"template"`
	Solution  string `json:"solution,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}
