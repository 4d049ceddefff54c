package searcher

import "tictactoe/game"

// Solver holds one counting Searcher per engine kind so callers can pick an
// engine per decision and read back how many nodes it visited.
type Solver struct {
	searchers map[Kind]Searcher
}

// NewSolver builds a Solver where every engine has its own node counter.
func NewSolver() *Solver {
	s := &Solver{searchers: make(map[Kind]Searcher, len(Kinds))}
	for _, kind := range Kinds {
		s.searchers[kind] = New(kind, WithNodeCounting())
	}
	return s
}

// Searcher returns the engine of the given kind.
func (s *Solver) Searcher(kind Kind) Searcher {
	searcher, ok := s.searchers[kind]
	if !ok {
		panic("unknown search kind")
	}
	return searcher
}

// BestMove picks a move for the player to move with the given engine.
// It returns false when b is already terminal.
func (s *Solver) BestMove(b *game.Board, kind Kind) (game.Move, bool) {
	return s.Searcher(kind).BestMove(b)
}

// NodeCount returns the nodes visited by an engine since its last reset.
func (s *Solver) NodeCount(kind Kind) int64 {
	return s.Searcher(kind).Nodes()
}

// ResetNodeCount zeroes an engine's node counter. Call it right before the
// BestMove whose count is to be reported.
func (s *Solver) ResetNodeCount(kind Kind) {
	s.Searcher(kind).ResetNodes()
}
