package config

// SpeedRamp computes the scroll speed, which grows linearly with every
// running tick and snaps back to its initial value when a run ends.
type SpeedRamp struct {
	initial   float64
	increment float64
}

// NewSpeedRamp creates a ramp from the speed section of the config.
func NewSpeedRamp(cfg SpeedConfig) SpeedRamp {
	return SpeedRamp{
		initial:   cfg.Initial,
		increment: cfg.Increment,
	}
}

// Initial returns the speed at the start of a run.
func (r SpeedRamp) Initial() float64 {
	return r.initial
}

// Next returns the speed following current.
func (r SpeedRamp) Next(current float64) float64 {
	return current + r.increment
}
