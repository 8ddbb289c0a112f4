package solver

import (
	"github.com/sirupsen/logrus"

	"sudoku_engine/internal/core"
)

// Status is the state of a deduction run. Stuck, Solved, and Contradiction
// are terminal.
type Status int

const (
	StatusRunning Status = iota
	StatusStuck
	StatusSolved
	StatusContradiction
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusStuck:
		return "stuck"
	case StatusSolved:
		return "solved"
	case StatusContradiction:
		return "contradiction"
	default:
		return "unknown"
	}
}

// Stats records technique applications during a deduction run.
type Stats struct {
	// Applications counts applications per technique name.
	Applications map[string]int
	// TotalSteps is the number of successful technique applications.
	TotalSteps int
}

// NewStats returns an empty statistics record.
func NewStats() *Stats {
	return &Stats{Applications: map[string]int{}}
}

// Count returns how many times the named technique was applied.
func (s *Stats) Count(name string) int { return s.Applications[name] }

// HasProgress reports whether any technique was applied.
func (s *Stats) HasProgress() bool { return s.TotalSteps > 0 }

func (s *Stats) record(name string) {
	if s.Applications == nil {
		s.Applications = map[string]int{}
	}
	s.Applications[name]++
	s.TotalSteps++
}

// clone returns an independent copy of the stats.
func (s *Stats) clone() *Stats {
	c := NewStats()
	for name, n := range s.Applications {
		c.Applications[name] = n
	}
	c.TotalSteps = s.TotalSteps
	return c
}

// TechniqueSolver drives an ordered technique list to a fixed point. Each
// step applies the first technique that makes progress; progress restarts the
// scan from the front, so the simplest technique always settles completely
// before a harder one is tried. The run ends Stuck when the list is exhausted
// without progress, Solved when every cell is decided, or Contradiction when
// the grid turns inconsistent.
type TechniqueSolver struct {
	techniques []Technique
}

// NewTechniqueSolver returns a solver applying the given techniques in order.
func NewTechniqueSolver(techniques []Technique) *TechniqueSolver {
	return &TechniqueSolver{techniques: techniques}
}

// NewTechniqueSolverWithAll returns a solver with every installed technique,
// easiest first.
func NewTechniqueSolverWithAll() *TechniqueSolver {
	return NewTechniqueSolver(AllTechniques())
}

// Step applies the first technique that makes progress and reports whether
// any did. It fails with a contradiction error when the grid is, or becomes,
// inconsistent.
func (s *TechniqueSolver) Step(g *core.CandidateGrid, stats *Stats) (bool, error) {
	if err := g.CheckConsistency(); err != nil {
		return false, err
	}
	for _, t := range s.techniques {
		changed, err := t.Apply(g)
		if err != nil {
			return false, err
		}
		if changed {
			stats.record(t.Name())
			logrus.WithField("technique", t.Name()).Trace("technique applied")
			if err := g.CheckConsistency(); err != nil {
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

// Solve runs deduction to a terminal state on a fresh statistics record.
// The returned error is non-nil exactly when the status is Contradiction.
func (s *TechniqueSolver) Solve(g *core.CandidateGrid) (Status, *Stats, error) {
	stats := NewStats()
	status, err := s.SolveWithStats(g, stats)
	return status, stats, err
}

// SolveWithStats runs deduction to a terminal state, accumulating into stats.
func (s *TechniqueSolver) SolveWithStats(g *core.CandidateGrid, stats *Stats) (Status, error) {
	for {
		progressed, err := s.Step(g, stats)
		if err != nil {
			return StatusContradiction, err
		}
		solved, err := g.IsSolved()
		if err != nil {
			return StatusContradiction, err
		}
		if solved {
			return StatusSolved, nil
		}
		if !progressed {
			return StatusStuck, nil
		}
	}
}
