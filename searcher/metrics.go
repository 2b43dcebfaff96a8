package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics summarizes one BestMove call.
type SearchMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // interior nodes expanded
	Leaves    int64 // positions statically evaluated
	Cutoffs   int64 // sibling sets abandoned by an alpha/beta cutoff
}

// MetricsCollector accumulates counters during a search. Start resets the
// collector, so one collector can serve consecutive searches.
type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Leaves:    m.leaves.Load(),
		Cutoffs:   m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

// NewNoMetricsCollector returns a collector that discards everything.
func NewNoMetricsCollector() MetricsCollector {
	return noMetricsCollector{}
}

func (noMetricsCollector) Start()                  {}
func (noMetricsCollector) AddNode()                {}
func (noMetricsCollector) AddLeaf()                {}
func (noMetricsCollector) AddCutoff()              {}
func (noMetricsCollector) Complete() SearchMetrics { return SearchMetrics{} }
