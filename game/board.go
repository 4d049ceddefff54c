package game

import (
	"fmt"
	"strings"
)

// Board is a 3x3 grid of marks plus the player whose turn it is.
// Board is a value type: assigning it copies the whole position.
type Board struct {
	cells [Size][Size]Mark
	turn  Mark
}

// NewBoard returns an empty board with First to move.
func NewBoard() Board {
	return Board{turn: First}
}

// FromGrid builds a position from a grid of marks. The player to move is
// derived from the mark counts.
func FromGrid(grid [Size][Size]Mark) (Board, error) {
	b := Board{cells: grid}
	for r := range grid {
		for c, mark := range grid[r] {
			if mark > Second {
				return Board{}, fmt.Errorf("%w: unknown mark %d at %d, %d", ErrInvalidPosition, mark, r, c)
			}
		}
	}

	switch b.Count(First) - b.Count(Second) {
	case 0:
		b.turn = First
	case 1:
		b.turn = Second
	default:
		return Board{}, fmt.Errorf("%w: %d X marks against %d O marks", ErrInvalidPosition, b.Count(First), b.Count(Second))
	}
	return b, nil
}

// Turn returns the mark of the player to move.
func (b Board) Turn() Mark {
	return b.turn
}

// At returns the mark at the given cell.
func (b Board) At(row, col int) Mark {
	return b.cells[row][col]
}

// Count returns the number of cells holding mark.
func (b Board) Count(mark Mark) int {
	n := 0
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if cell == mark {
				n++
			}
		}
	}
	return n
}

// Place puts the current player's mark at (row, col) and passes the turn.
// The board is left untouched when the move is illegal.
func (b *Board) Place(row, col int) error {
	m := Move{Row: row, Col: col}
	if !m.inBounds() {
		return fmt.Errorf("%w: %s is off the board", ErrIllegalMove, m)
	}
	if b.cells[row][col] != Empty {
		return fmt.Errorf("%w: %s is occupied by %s", ErrIllegalMove, m, b.cells[row][col])
	}

	b.cells[row][col] = b.turn
	b.turn = b.turn.Opponent()
	return nil
}

// Occupy writes mark into an empty cell without passing the turn and
// returns the function that clears it again. Searchers call undo before
// returning from every node.
func (b *Board) Occupy(m Move, mark Mark) (undo func()) {
	if !m.inBounds() || b.cells[m.Row][m.Col] != Empty {
		panic(fmt.Sprintf("cannot occupy %s", m))
	}
	b.cells[m.Row][m.Col] = mark
	return func() {
		b.cells[m.Row][m.Col] = Empty
	}
}

// LegalMoves returns every empty cell in row-major order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, Size*Size)
	for r := range b.cells {
		for c, cell := range b.cells[r] {
			if cell == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for r := range b.cells {
		for _, cell := range b.cells[r] {
			if cell == Empty {
				return false
			}
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for r := range b.cells {
		for c, cell := range b.cells[r] {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cell.String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Move) String() string {
	return fmt.Sprintf("%d, %d", m.Row, m.Col)
}
