package pipeline

import (
	"github.com/fleximart/retail-etl/internal/domain"
)

// Collector accumulates per-file data quality metrics in the order files are
// first seen, which is the order blocks appear in the report.
type Collector struct {
	order  []string
	byFile map[string]*domain.FileMetrics
}

// NewCollector creates an empty metrics collector.
func NewCollector() *Collector {
	return &Collector{
		byFile: make(map[string]*domain.FileMetrics),
	}
}

// File returns the metrics for the named input file, registering it on first
// use. Counters are updated through the returned pointer.
func (c *Collector) File(name string) *domain.FileMetrics {
	if m, ok := c.byFile[name]; ok {
		return m
	}
	m := &domain.FileMetrics{FileName: name}
	c.byFile[name] = m
	c.order = append(c.order, name)
	return m
}

// All returns the collected metrics in registration order.
func (c *Collector) All() []domain.FileMetrics {
	metrics := make([]domain.FileMetrics, 0, len(c.order))
	for _, name := range c.order {
		metrics = append(metrics, *c.byFile[name])
	}
	return metrics
}
