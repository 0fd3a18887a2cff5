// Package cpu samples system-wide CPU utilization.
package cpu

import (
	"errors"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/cpu"
)

var ErrNoSample = errors.New("cpu: no usage reported")

// Sampler reads global CPU usage over the window since the previous read.
// It never blocks: gopsutil compares against the times it kept from the
// last call.
type Sampler struct {
	percent func() ([]float64, error)
	usage   float64
}

// New primes the baseline. The first real reading is available after
// the next Refresh.
func New() (*Sampler, error) {
	s := &Sampler{percent: func() ([]float64, error) { return cpu.Percent(0, false) }}
	if _, err := s.percent(); err != nil {
		return nil, fmt.Errorf("cpu: prime usage counters: %w", err)
	}
	return s, nil
}

// Refresh takes a new reading. On failure the previous reading is kept.
func (s *Sampler) Refresh() error {
	pct, err := s.percent()
	if err != nil {
		return fmt.Errorf("cpu: read usage: %w", err)
	}
	if len(pct) == 0 || math.IsNaN(pct[0]) {
		return ErrNoSample
	}
	s.usage = clamp(pct[0])
	return nil
}

func (s *Sampler) Usage() float64 { return s.usage }

func clamp(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
