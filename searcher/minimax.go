package searcher

import "tictactoe/game"

type minimax struct {
	counter NodeCounter
}

func (s *minimax) Kind() Kind {
	return Exhaustive
}

func (s *minimax) Search(b *game.Board, maximizing bool) game.Outcome {
	return s.search(b, maximizing)
}

func (s *minimax) BestMove(b *game.Board) (game.Move, bool) {
	return selectMove(b, func(b *game.Board, maximizing bool, _ window) game.Outcome {
		return s.search(b, maximizing)
	})
}

func (s *minimax) Nodes() int64 {
	return s.counter.Nodes()
}

func (s *minimax) ResetNodes() {
	s.counter.Reset()
}

func (s *minimax) search(b *game.Board, maximizing bool) game.Outcome {
	s.counter.Visit()
	if b.IsTerminal() {
		return b.Evaluate()
	}

	mark := markFor(maximizing)
	best := worst(maximizing)
	for _, move := range b.LegalMoves() {
		undo := b.Occupy(move, mark)
		score := s.search(b, !maximizing)
		undo()

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}
	return best
}
