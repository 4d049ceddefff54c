package searcher

import (
	"tictactoe/game"

	"github.com/rs/zerolog/log"
)

// window is an alpha-beta search window.
type window struct {
	alpha game.Outcome
	beta  game.Outcome
}

func fullWindow() window {
	return window{alpha: lowest, beta: highest}
}

// narrow tightens the window by the best score found so far at a node.
func (w window) narrow(maximizing bool, best game.Outcome) window {
	if maximizing {
		w.alpha = max(w.alpha, best)
	} else {
		w.beta = min(w.beta, best)
	}
	return w
}

// scoreFn values the position after a root move, with maximizing set for the side to reply.
type scoreFn func(b *game.Board, maximizing bool, w window) game.Outcome

// selectMove tries every legal move for the player to move in row-major
// order and keeps the first one with the strictly best score. The window
// is narrowed across root siblings the same way it is inside the search.
func selectMove(b *game.Board, score scoreFn) (game.Move, bool) {
	if b.IsTerminal() {
		log.Warn().Msg("no move to select: position is terminal")
		return game.Move{}, false
	}

	player := b.Turn()
	maximizing := player == game.First
	best := worst(maximizing)
	w := fullWindow()

	var bestMove game.Move
	found := false
	for _, move := range b.LegalMoves() {
		undo := b.Occupy(move, player)
		s := score(b, !maximizing, w)
		undo()

		if (maximizing && s > best) || (!maximizing && s < best) {
			best = s
			bestMove = move
			found = true
		}
		w = w.narrow(maximizing, best)
	}
	return bestMove, found
}
