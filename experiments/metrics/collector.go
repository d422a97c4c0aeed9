package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth       int           `json:"depth"`
	Duration    time.Duration `json:"duration"`
	Clones      int           `json:"clones"`
	Evaluations int           `json:"evaluations"`
	Cutoffs     int           `json:"cutoffs"`
	Wins        int           `json:"wins"`   // children short-circuited as a win for the root side
	Losses      int           `json:"losses"` // children short-circuited as a loss for the root side
	Score       int           `json:"score"`  // root alpha once the search completes
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers counters for a single search. Searches are single
// threaded, so implementations need no synchronisation.
type Collector interface {
	Start(depth int)
	AddClone()
	AddEvaluation()
	AddCutoff()
	AddWin()
	AddLoss()
	Complete(score int) SearchMetric
}

type collector struct {
	depth       int
	startTime   time.Time
	clones      int
	evaluations int
	cutoffs     int
	wins        int
	losses      int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddClone() {
	m.clones++
}

func (m *collector) AddEvaluation() {
	m.evaluations++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) AddWin() {
	m.wins++
}

func (m *collector) AddLoss() {
	m.losses++
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Clones:      m.clones,
		Evaluations: m.evaluations,
		Cutoffs:     m.cutoffs,
		Wins:        m.wins,
		Losses:      m.losses,
		Score:       score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)                 {}
func (m *dummyCollector) AddClone()                       {}
func (m *dummyCollector) AddEvaluation()                  {}
func (m *dummyCollector) AddCutoff()                      {}
func (m *dummyCollector) AddWin()                         {}
func (m *dummyCollector) AddLoss()                        {}
func (m *dummyCollector) Complete(score int) SearchMetric { return SearchMetric{Score: score} }
