package searcher

import "tictactoe/game"

// Kind selects a search engine.
type Kind int

const (
	Exhaustive Kind = iota // Plain minimax over the full tree
	Pruned                 // Minimax with alpha-beta cutoffs
)

func (k Kind) String() string {
	switch k {
	case Exhaustive:
		return "minimax"
	case Pruned:
		return "alpha-beta"
	}
	return "unknown"
}

// Kinds lists every engine in a stable order.
var Kinds = []Kind{Exhaustive, Pruned}

// Bounds strictly outside the outcome range, standing in for infinities.
const (
	lowest  game.Outcome = -2
	highest game.Outcome = 2
)

// Searcher values positions by searching the game tree to terminal states.
// A Searcher borrows the board for the duration of a call and restores it
// before returning; it must not be shared between goroutines.
type Searcher interface {
	Kind() Kind
	// Search returns the game-theoretic value of b given which side moves next.
	Search(b *game.Board, maximizing bool) game.Outcome
	// BestMove picks the optimal move for the player to move on b.
	BestMove(b *game.Board) (game.Move, bool)
	Nodes() int64
	ResetNodes()
}

// New returns a Searcher of the given kind.
func New(kind Kind, options ...Option) Searcher {
	o := newOptions(options)
	switch kind {
	case Exhaustive:
		return &minimax{counter: o.counter}
	case Pruned:
		return &alphaBeta{counter: o.counter}
	}
	panic("unknown search kind")
}

// markFor returns the mark placed by the maximizing (First) or minimizing (Second) side.
func markFor(maximizing bool) game.Mark {
	if maximizing {
		return game.First
	}
	return game.Second
}

// worst returns the starting score for a side: below every outcome when
// maximizing, above every outcome when minimizing.
func worst(maximizing bool) game.Outcome {
	if maximizing {
		return lowest
	}
	return highest
}
