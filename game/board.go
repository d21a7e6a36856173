package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Position is a zero-based row/column index into a square board.
type Position struct {
	Row int
	Col int
}

// Near reports whether other lies within the 8-neighborhood of p, p included.
func (p Position) Near(other Position) bool {
	return abs(p.Row-other.Row) <= 1 && abs(p.Col-other.Col) <= 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Field is the value held by a board cell. The ordering of the constants is
// significant: the best symbol at a cell is the greatest legal one.
type Field uint8

const (
	Empty Field = iota
	Birth
	Gift
	Wealth
	Knowledge
	Joy
)

var fieldNames = [...]string{"Empty", "Birth", "Gift", "Wealth", "Knowledge", "Joy"}

var fieldGlyphs = [...]string{" ", "ᛒ", "X", "ᚠ", "<", "ᚹ"}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", f)
}

// Glyph returns the rune used when drawing the board.
func (f Field) Glyph() string {
	if int(f) < len(fieldGlyphs) {
		return fieldGlyphs[f]
	}
	return "?"
}

// ParseField parses a field by name, case-insensitively. A single-letter
// abbreviation of the name is accepted as well.
func ParseField(s string) (Field, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range fieldNames {
		lower := strings.ToLower(name)
		if s == lower || (len(s) == 1 && s[0] == lower[0]) {
			return Field(i), nil
		}
	}
	return Empty, errors.Errorf("unknown field %q", s)
}

// Counts aggregates the neighborhood of a cell. Joy is never counted.
type Counts struct {
	Empty     int
	Birth     int
	Gift      int
	Wealth    int
	Knowledge int
}

// Of returns the count for the given field, 0 for Joy.
func (c Counts) Of(f Field) int {
	switch f {
	case Empty:
		return c.Empty
	case Birth:
		return c.Birth
	case Gift:
		return c.Gift
	case Wealth:
		return c.Wealth
	case Knowledge:
		return c.Knowledge
	default:
		return 0
	}
}

// IsFormation reports whether the neighborhood holds exactly one Birth, one
// Gift and five Empty cells, the prerequisite for placing Joy.
func (c Counts) IsFormation() bool {
	return c.Birth == 1 && c.Gift == 1 && c.Empty == 5
}

// Board is a square grid of fields stored row-major.
type Board struct {
	size   int
	fields []Field
}

func NewBoard(size int) Board {
	if size < 1 {
		panic(fmt.Sprintf("invalid board size %d", size))
	}
	return Board{
		size:   size,
		fields: make([]Field, size*size),
	}
}

func (b Board) Size() int {
	return b.size
}

func (b Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Col >= 0 && pos.Row < b.size && pos.Col < b.size
}

func (b Board) FieldAt(pos Position) Field {
	return b.fields[b.index(pos)]
}

// Change sets the field at pos in place.
func (b *Board) Change(pos Position, f Field) {
	b.fields[b.index(pos)] = f
}

// With returns a copy of the board with the field at pos set, leaving b untouched.
func (b Board) With(pos Position, f Field) Board {
	next := b.Clone()
	next.Change(pos, f)
	return next
}

func (b Board) IsEmpty(pos Position) bool {
	return b.FieldAt(pos) == Empty
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for _, f := range b.fields {
		if f == Empty {
			return false
		}
	}
	return true
}

// FieldsAround returns the values of the up to 8 neighbors of pos, row by row,
// excluding pos itself and clipped at the edges.
func (b Board) FieldsAround(pos Position) []Field {
	around := make([]Field, 0, 8)
	b.forEachNeighbor(pos, func(f Field) {
		around = append(around, f)
	})
	return around
}

// CountAround aggregates the neighborhood of pos.
func (b Board) CountAround(pos Position) Counts {
	var c Counts
	b.forEachNeighbor(pos, func(f Field) {
		switch f {
		case Empty:
			c.Empty++
		case Birth:
			c.Birth++
		case Gift:
			c.Gift++
		case Wealth:
			c.Wealth++
		case Knowledge:
			c.Knowledge++
		}
	})
	return c
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.fields = make([]Field, len(b.fields))
	copy(clone.fields, b.fields)
	return clone
}

// Reset empties every cell.
func (b *Board) Reset() {
	for i := range b.fields {
		b.fields[i] = Empty
	}
}

// String draws the board with 1-based coordinates along the edges.
func (b Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < b.size; col++ {
		fmt.Fprintf(&sb, "%3d", col+1)
	}
	sb.WriteString("\n")
	for row := 0; row < b.size; row++ {
		fmt.Fprintf(&sb, "%3d", row+1)
		for col := 0; col < b.size; col++ {
			fmt.Fprintf(&sb, "  %s", b.FieldAt(Position{row, col}).Glyph())
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func (b Board) forEachNeighbor(pos Position, fn func(Field)) {
	for row := max(pos.Row-1, 0); row <= min(pos.Row+1, b.size-1); row++ {
		for col := max(pos.Col-1, 0); col <= min(pos.Col+1, b.size-1); col++ {
			if row == pos.Row && col == pos.Col {
				continue
			}
			fn(b.fields[row*b.size+col])
		}
	}
}

func (b Board) index(pos Position) int {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("position %v out of bounds for board of size %d", pos, b.size))
	}
	return pos.Row*b.size + pos.Col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
