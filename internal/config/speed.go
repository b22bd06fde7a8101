package config

import (
	"math"
	"time"
)

// pulseBase is the pulse period in seconds at speed 1.
const pulseBase = 4.0

// SpeedSlider is the heart speed control. Values snap to the configured step.
type SpeedSlider struct {
	cfg   SpeedConfig
	value float64
}

// NewSpeedSlider creates a slider positioned at cfg.Initial.
func NewSpeedSlider(cfg SpeedConfig) *SpeedSlider {
	s := &SpeedSlider{cfg: cfg}
	s.Set(cfg.Initial)
	return s
}

// Value returns the current speed.
func (s *SpeedSlider) Value() float64 {
	return s.value
}

// Set moves the slider, clamping to [min, max] and snapping to the step.
func (s *SpeedSlider) Set(v float64) {
	v = clampF(v, s.cfg.Min, s.cfg.Max)
	if s.cfg.Step > 0 {
		steps := math.Round((v - s.cfg.Min) / s.cfg.Step)
		v = s.cfg.Min + steps*s.cfg.Step
		// Rounding the step count can overshoot max by a fraction
		v = clampF(v, s.cfg.Min, s.cfg.Max)
	}
	s.value = math.Round(v*1000) / 1000
}

// Up raises the speed by one step.
func (s *SpeedSlider) Up() {
	s.Set(s.value + s.cfg.Step)
}

// Down lowers the speed by one step.
func (s *SpeedSlider) Down() {
	s.Set(s.value - s.cfg.Step)
}

// Fraction returns the slider position in [0, 1] for drawing.
func (s *SpeedSlider) Fraction() float64 {
	span := s.cfg.Max - s.cfg.Min
	if span <= 0 {
		return 1
	}
	return (s.value - s.cfg.Min) / span
}

// PulsePeriod returns how long one full heart pulse takes at the current speed.
func (s *SpeedSlider) PulsePeriod() time.Duration {
	if s.value <= 0 {
		return time.Duration(pulseBase * float64(time.Second))
	}
	return time.Duration(pulseBase / s.value * float64(time.Second))
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
