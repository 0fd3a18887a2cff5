package cpu

// Fake returns scripted readings. Once the script runs out the last
// reading repeats.
type Fake struct {
	Readings []float64
	Err      error

	Refreshes int
	usage     float64
}

func NewFake(readings ...float64) *Fake {
	return &Fake{Readings: readings}
}

func (f *Fake) Refresh() error {
	f.Refreshes++
	if f.Err != nil {
		return f.Err
	}
	if len(f.Readings) > 0 {
		f.usage = f.Readings[0]
		if len(f.Readings) > 1 {
			f.Readings = f.Readings[1:]
		}
	}
	return nil
}

func (f *Fake) Usage() float64 { return f.usage }

// Set overrides the current reading without a refresh.
func (f *Fake) Set(usage float64) { f.usage = usage }
