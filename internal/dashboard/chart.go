package dashboard

import (
	"sort"
	"sync"

	"github.com/google/uuid"
)

// ChartKind selects the chart rendering style.
type ChartKind string

const (
	KindBar      ChartKind = "bar"
	KindDoughnut ChartKind = "doughnut"
)

// Chart is one renderable chart instance. Instances are immutable; a refresh
// produces a new instance with a new id.
type Chart struct {
	ID     string    `json:"id"`
	Kind   ChartKind `json:"kind"`
	Title  string    `json:"title"`
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// NewBarChart builds a bar chart from a label→value map. Labels are sorted so
// repeated renders of the same data produce identical series.
func NewBarChart(title string, data map[string]float64) *Chart {
	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	values := make([]float64, len(labels))
	for i, label := range labels {
		values[i] = data[label]
	}

	return &Chart{
		ID:     uuid.NewString(),
		Kind:   KindBar,
		Title:  title,
		Labels: labels,
		Values: values,
	}
}

// NewDoughnutChart builds a doughnut chart from parallel label and value
// slices.
func NewDoughnutChart(title string, labels []string, values []float64) *Chart {
	return &Chart{
		ID:     uuid.NewString(),
		Kind:   KindDoughnut,
		Title:  title,
		Labels: append([]string(nil), labels...),
		Values: append([]float64(nil), values...),
	}
}

// Slot owns at most one live chart instance. Replacing or disposing the slot
// releases the previous instance; nothing outside the owning render sink
// holds chart handles.
type Slot struct {
	mu    sync.Mutex
	chart *Chart
}

// Replace installs a new chart instance, disposing the previous one.
func (s *Slot) Replace(c *Chart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = c
}

// Dispose releases the current chart instance, if any.
func (s *Slot) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chart = nil
}

// Chart returns the live chart instance, or nil when the slot is empty.
func (s *Slot) Chart() *Chart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chart
}
