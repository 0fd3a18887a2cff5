// Package animator runs the tray animation loop: it samples CPU usage,
// picks the next frame at a usage-dependent pace and reacts to tray
// clicks and the Quit menu item.
package animator

import (
	"context"
	"fmt"
	"time"

	"runcat/icons"
	"runcat/log"
	"runcat/tray"
)

type Sampler interface {
	Refresh() error
	Usage() float64
}

type Frames interface {
	Len() int
	Frame(v icons.Variant, i int) *icons.Frame
}

// LoopState is everything the loop mutates. Only the loop touches it.
type LoopState struct {
	Frame     int // may equal Frames.Len() until the next frame is due
	LastFrame time.Time
	Interval  time.Duration

	Usage      float64
	LastSample time.Time

	Color icons.Variant
	Exit  bool

	Shown uint64
}

type Animator struct {
	cfg     Config
	frames  Frames
	surface tray.Surface
	sampler Sampler
	state   LoopState
}

func New(cfg Config, frames Frames, surface tray.Surface, sampler Sampler, now time.Time) *Animator {
	return &Animator{
		cfg:     cfg,
		frames:  frames,
		surface: surface,
		sampler: sampler,
		state: LoopState{
			LastFrame:  now,
			Interval:   cfg.BaseInterval,
			LastSample: now,
			Color:      icons.Dark,
		},
	}
}

// State returns a copy of the loop state.
func (a *Animator) State() LoopState { return a.state }

// Run ticks until Quit is selected (nil) or ctx is done (ctx.Err()).
func (a *Animator) Run(ctx context.Context) error {
	ticker := time.NewTicker(a.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			if !a.Tick(now) {
				return nil
			}
		}
	}
}

// Tick runs one scheduler step and reports whether the loop should keep
// running. It never blocks.
func (a *Animator) Tick(now time.Time) bool {
	st := &a.state
	if st.Exit {
		return false
	}

	// whole milliseconds, strictly greater
	if now.Sub(st.LastFrame).Milliseconds() > st.Interval.Milliseconds() {
		a.advance(now)
	}

	if now.Sub(st.LastSample) > a.cfg.RefreshPeriod {
		if err := a.sampler.Refresh(); err != nil {
			log.Warnf("cpu refresh: %v", err)
		} else {
			log.Sample(a.sampler.Usage(), a.cfg.Interval(a.sampler.Usage()))
		}
		st.LastSample = now
	}

	a.drainMenu()
	if st.Exit {
		return false
	}
	a.drainClicks()
	return true
}

func (a *Animator) advance(now time.Time) {
	st := &a.state
	if st.Frame >= a.frames.Len() {
		st.Frame = 0
	}

	frame := a.frames.Frame(st.Color, st.Frame)
	if err := a.surface.SetIcon(frame.Tray); err != nil {
		log.Warnf("set icon %s: %v", frame.Name, err)
	}
	st.Frame++
	st.Shown++

	st.Usage = a.sampler.Usage()
	if err := a.surface.SetTooltip(Tooltip(st.Usage)); err != nil {
		log.Warnf("set tooltip: %v", err)
	}

	st.Interval = a.cfg.Interval(st.Usage)
	st.LastFrame = now
}

func (a *Animator) drainMenu() {
	for {
		select {
		case ev := <-a.surface.MenuEvents():
			if ev.ID == a.surface.QuitID() {
				a.state.Exit = true
			}
		default:
			return
		}
	}
}

func (a *Animator) drainClicks() {
	for {
		select {
		case c := <-a.surface.Clicks():
			if c.Button == tray.Left && c.State == tray.Down {
				a.state.Color = a.state.Color.Toggle()
				log.ColorToggled(a.state.Color.String())
			}
		default:
			return
		}
	}
}

// Tooltip formats a usage reading, e.g. "CPU: 12.34%".
func Tooltip(usage float64) string {
	return fmt.Sprintf("CPU: %.2f%%", usage)
}
