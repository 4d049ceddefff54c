package game

import "errors"

const Size = 3

var (
	// ErrIllegalMove is returned when a move targets an occupied or out of range cell.
	ErrIllegalMove = errors.New("illegal move")
	// ErrInvalidPosition is returned when a grid could not arise from alternating play.
	ErrInvalidPosition = errors.New("invalid position")
)

// Mark is the occupant of a board cell.
type Mark uint8

const (
	Empty Mark = iota
	First
	Second
)

// Opponent returns the other player's mark.
func (m Mark) Opponent() Mark {
	switch m {
	case First:
		return Second
	case Second:
		return First
	}
	panic("empty mark has no opponent")
}

func (m Mark) String() string {
	switch m {
	case First:
		return "X"
	case Second:
		return "O"
	}
	return "."
}

// Outcome is the value of a position: positive favours First, negative favours Second.
type Outcome int

const (
	SecondWins Outcome = -1
	Draw       Outcome = 0
	FirstWins  Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case FirstWins:
		return "X wins"
	case SecondWins:
		return "O wins"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Move is a (row, column) coordinate on the board.
type Move struct {
	Row int
	Col int
}

func (m Move) inBounds() bool {
	return m.Row >= 0 && m.Row < Size && m.Col >= 0 && m.Col < Size
}
