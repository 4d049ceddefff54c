package metrics

import (
	"time"

	"tictactoe/game"
)

type SearchMetric struct {
	Engine   string
	Move     game.Move
	Nodes    int64
	Duration time.Duration
}

type MoveMetric struct {
	Step   int
	Player game.Mark
	SearchMetric
}

type GameMetric struct {
	Agents     [2]string // Indexed by mover: X first, O second
	Winner     game.Outcome
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
	Rejected   int // Illegal moves that had to be retried
}

type Collector interface {
	Start(engine string)
	Complete(move game.Move, nodes int64) SearchMetric
}

type collector struct {
	engine    string
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(engine string) {
	m.engine = engine
	m.startTime = time.Now()
}

func (m *collector) Complete(move game.Move, nodes int64) SearchMetric {
	return SearchMetric{
		Engine:   m.engine,
		Move:     move,
		Nodes:    nodes,
		Duration: time.Since(m.startTime),
	}
}
