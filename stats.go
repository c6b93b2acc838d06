package qsim

import (
	"sync"
	"time"
)

/*
Stats accumulates counters for a simulation run: gate applications,
measurements, collapses, and cumulative time spent inside gate math. The
kernel itself is single-threaded, but a Stats sink may be shared between a
circuit and a measurer owned by different goroutines, so access is
mutex-guarded. A nil *Stats is valid and records nothing.
*/
type Stats struct {
	mu sync.RWMutex

	GateApplications int64
	Measurements     int64
	Collapses        int64
	TotalGateTime    time.Duration
}

// NewStats returns an empty stats sink.
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) recordGate(d time.Duration) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.GateApplications++
	s.TotalGateTime += d
}

func (s *Stats) recordMeasurement(collapsed bool) {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Measurements++
	if collapsed {
		s.Collapses++
	}
}

// Snapshot returns a copy safe to read without holding the lock.
func (s *Stats) Snapshot() Stats {
	if s == nil {
		return Stats{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Stats{
		GateApplications: s.GateApplications,
		Measurements:     s.Measurements,
		Collapses:        s.Collapses,
		TotalGateTime:    s.TotalGateTime,
	}
}
