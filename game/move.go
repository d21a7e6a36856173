package game

import "fmt"

// Move places Symbol at Position.
type Move struct {
	Position Position
	Symbol   Field
}

func NewMove(pos Position, symbol Field) Move {
	return Move{Position: pos, Symbol: symbol}
}

func (m Move) String() string {
	return fmt.Sprintf("%s@%v", m.Symbol, m.Position)
}
