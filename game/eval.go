package game

// lines lists the 8 winning lines: 3 rows, 3 columns and 2 diagonals.
var lines = [8][Size]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// IsWinner reports whether mark fills any complete line.
func (b Board) IsWinner(mark Mark) bool {
	for _, line := range lines {
		if b.cells[line[0].Row][line[0].Col] == mark &&
			b.cells[line[1].Row][line[1].Col] == mark &&
			b.cells[line[2].Row][line[2].Col] == mark {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the game is over by a win or a full board.
func (b Board) IsTerminal() bool {
	return b.IsWinner(First) || b.IsWinner(Second) || b.IsFull()
}

// Evaluate scores the position independently of whose turn it is.
// First's lines are checked before Second's.
func (b Board) Evaluate() Outcome {
	if b.IsWinner(First) {
		return FirstWins
	}
	if b.IsWinner(Second) {
		return SecondWins
	}
	return Draw
}
