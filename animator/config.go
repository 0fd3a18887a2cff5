package animator

import (
	"math"
	"time"
)

const (
	BaseInterval  = 200 * time.Millisecond
	TickInterval  = 16 * time.Millisecond
	RefreshPeriod = 3000 * time.Millisecond

	Scale    = 5.0  // usage percent per unit of speed
	MinSpeed = 1.0  // at or below 5% usage
	MaxSpeed = 20.0 // at 100% usage
)

// Config holds the loop's timing constants. Production always uses
// DefaultConfig.
type Config struct {
	BaseInterval  time.Duration
	TickInterval  time.Duration
	RefreshPeriod time.Duration
	Scale         float64
	MinSpeed      float64
	MaxSpeed      float64
}

func DefaultConfig() Config {
	return Config{
		BaseInterval:  BaseInterval,
		TickInterval:  TickInterval,
		RefreshPeriod: RefreshPeriod,
		Scale:         Scale,
		MinSpeed:      MinSpeed,
		MaxSpeed:      MaxSpeed,
	}
}

// Interval maps CPU usage to the time between frames: higher usage, faster cat.
func (c Config) Interval(usage float64) time.Duration {
	speed := usage / c.Scale
	if math.IsNaN(speed) {
		speed = c.MinSpeed
	}
	speed = math.Max(c.MinSpeed, math.Min(c.MaxSpeed, speed))
	return time.Duration(float64(c.BaseInterval) / speed)
}

// Interval uses DefaultConfig.
func Interval(usage float64) time.Duration {
	return DefaultConfig().Interval(usage)
}
