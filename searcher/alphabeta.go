package searcher

import "tictactoe/game"

type alphaBeta struct {
	counter NodeCounter
}

func (s *alphaBeta) Kind() Kind {
	return Pruned
}

// Search runs with the full (lowest, highest) window, so the result is exact.
func (s *alphaBeta) Search(b *game.Board, maximizing bool) game.Outcome {
	return s.search(b, maximizing, lowest, highest)
}

func (s *alphaBeta) BestMove(b *game.Board) (game.Move, bool) {
	return selectMove(b, func(b *game.Board, maximizing bool, w window) game.Outcome {
		return s.search(b, maximizing, w.alpha, w.beta)
	})
}

func (s *alphaBeta) Nodes() int64 {
	return s.counter.Nodes()
}

func (s *alphaBeta) ResetNodes() {
	s.counter.Reset()
}

func (s *alphaBeta) search(b *game.Board, maximizing bool, alpha, beta game.Outcome) game.Outcome {
	s.counter.Visit()
	if b.IsTerminal() {
		return b.Evaluate()
	}

	mark := markFor(maximizing)
	best := worst(maximizing)
	for _, move := range b.LegalMoves() {
		undo := b.Occupy(move, mark)
		score := s.search(b, !maximizing, alpha, beta)
		undo()

		if maximizing {
			best = max(best, score)
			alpha = max(alpha, best)
		} else {
			best = min(best, score)
			beta = min(beta, best)
		}
		if beta <= alpha { // Cutoff
			break
		}
	}
	return best
}
