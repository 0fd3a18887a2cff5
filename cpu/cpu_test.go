package cpu

import (
	"errors"
	"math"
	"testing"
)

func scripted(results ...[]float64) *Sampler {
	i := 0
	return &Sampler{percent: func() ([]float64, error) {
		r := results[i]
		if i < len(results)-1 {
			i++
		}
		if r == nil {
			return nil, errors.New("boom")
		}
		return r, nil
	}}
}

func TestRefreshStoresReading(t *testing.T) {
	s := scripted([]float64{42.5})
	if err := s.Refresh(); err != nil {
		t.Fatal(err)
	}
	if got := s.Usage(); got != 42.5 {
		t.Errorf("Usage() = %v, want 42.5", got)
	}
}

func TestRefreshKeepsPreviousOnError(t *testing.T) {
	s := scripted([]float64{30}, nil)
	if err := s.Refresh(); err != nil {
		t.Fatal(err)
	}
	if err := s.Refresh(); err == nil {
		t.Fatal("expected error from failing read")
	}
	if got := s.Usage(); got != 30 {
		t.Errorf("Usage() = %v after failed refresh, want 30", got)
	}
}

func TestRefreshEmptyResult(t *testing.T) {
	s := scripted([]float64{}, []float64{math.NaN()})
	if err := s.Refresh(); !errors.Is(err, ErrNoSample) {
		t.Errorf("empty result: err = %v, want ErrNoSample", err)
	}
	if err := s.Refresh(); !errors.Is(err, ErrNoSample) {
		t.Errorf("NaN result: err = %v, want ErrNoSample", err)
	}
}

func TestRefreshClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-3, 0},
		{0, 0},
		{99.9, 99.9},
		{104, 100},
	}
	for _, tt := range tests {
		s := scripted([]float64{tt.in})
		if err := s.Refresh(); err != nil {
			t.Fatal(err)
		}
		if got := s.Usage(); got != tt.want {
			t.Errorf("reading %v: Usage() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFakeScript(t *testing.T) {
	f := NewFake(10, 20)
	f.Refresh()
	f.Refresh()
	f.Refresh()
	if f.Usage() != 20 || f.Refreshes != 3 {
		t.Errorf("usage %v after %d refreshes, want 20 after 3", f.Usage(), f.Refreshes)
	}
}
