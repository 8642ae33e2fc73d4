package domain

import (
	"fmt"
	"strings"
)

// Digits lists the sixteen symbols in value order.
const Digits = "0123456789ABCDEF"

// DigitVal decodes a template symbol into a value in [0,16). Lowercase is
// accepted.
func DigitVal(ch byte) (uint8, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	}
	return 0, false
}

// DigitChar encodes a value in [0,16) as its template symbol.
func DigitChar(v uint8) byte { return Digits[v] }

// stripTemplate removes the readability padding a template may carry:
// whitespace, tabs and line breaks.
func stripTemplate(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// ParseTemplate decodes a 256-symbol template into a Board. Blank cells may
// be written as either '.' or '-'; both mean the same thing. Whitespace is
// stripped before positions are interpreted.
func ParseTemplate(template string) (*Board, error) {
	s := stripTemplate(template)
	if len(s) != NumCells {
		return nil, fmt.Errorf("%w: got %d symbols, want %d", ErrMalformedPuzzle, len(s), NumCells)
	}
	b := &Board{}
	for i := 0; i < NumCells; i++ {
		r, c := i/GridSize, i%GridSize
		ch := s[i]
		if ch == '.' || ch == '-' {
			b.Values[r][c] = Empty
			continue
		}
		v, ok := DigitVal(ch)
		if !ok {
			return nil, fmt.Errorf("%w: invalid symbol %q at position %d", ErrMalformedPuzzle, ch, i)
		}
		b.Values[r][c] = v
		b.Fixed[r][c] = true
	}
	return b, nil
}

// Template renders the board as a 256-character row-major string, with '.'
// for blank cells. A fully solved board round-trips through ParseTemplate.
func (b *Board) Template() string {
	buf := make([]byte, 0, NumCells)
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if v := b.Values[r][c]; v == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, DigitChar(v))
			}
		}
	}
	return string(buf)
}
