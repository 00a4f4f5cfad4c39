package metrics

import (
	"othello/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth       int
	Duration    time.Duration
	Nodes       int // nodes created by expansion
	Reused      int // already expanded nodes walked over
	IsTreeReset bool
}

type MoveMetric struct {
	Step   int
	Player game.Disk
	Move   game.Position
	SearchMetric
}

type GameMetric struct {
	StartingPlayer game.Disk
	Winner         game.Disk
	BlackCount     int
	WhiteCount     int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type AgentConfig struct {
	ID        int
	Name      string
	Depth     int // 0 for the random agent
	Evaluator string
}

type Collector interface {
	Start(depth int)
	SetTreeReset(value bool)
	AddNodes(n int)
	AddReused(n int)
	Complete() SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	reused      atomic.Int64
	isTreeReset atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) SetTreeReset(value bool) {
	m.isTreeReset.Store(value)
}

// Start begins a new search. The tree reset flag is kept: it describes how the
// tree got to its current root, which happens before the search starts.
func (m *collector) Start(depth int) {
	m.startTime = time.Now()
	m.depth = depth
	m.nodes.Store(0)
	m.reused.Store(0)
}

func (m *collector) AddNodes(n int) {
	m.nodes.Add(int64(n))
}

func (m *collector) AddReused(n int) {
	m.reused.Add(int64(n))
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Reused:      int(m.reused.Load()),
		IsTreeReset: m.isTreeReset.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)         {}
func (m *dummyCollector) SetTreeReset(value bool) {}
func (m *dummyCollector) AddNodes(n int)          {}
func (m *dummyCollector) AddReused(n int)         {}
func (m *dummyCollector) Complete() SearchMetric  { return SearchMetric{} }
