// Package config provides YAML-based configuration loading for ZTapz and the
// heart speed slider derived from it.
package config

import (
	"fmt"
	"math"
	"strings"
)

// ZTapzConfig contains all tunable settings for the game.
type ZTapzConfig struct {
	Round RoundConfig `yaml:"round"`
	Speed SpeedConfig `yaml:"speed"`
	Audio AudioConfig `yaml:"audio"`
	Intro IntroConfig `yaml:"intro"`
}

// RoundConfig defines the timed round.
type RoundConfig struct {
	DurationSecs int `yaml:"duration_secs"`
}

// SpeedConfig defines the heart speed slider.
// Speed only changes how fast the active heart pulses.
type SpeedConfig struct {
	Initial float64 `yaml:"initial"`
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`
}

// AudioConfig controls the pop sound.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// IntroConfig controls the intro screen.
type IntroConfig struct {
	ShowWarning bool `yaml:"show_warning"`
}

// Normalize replaces invalid values with usable ones.
func (c *ZTapzConfig) Normalize() {
	def := DefaultZTapzConfig()

	if c.Round.DurationSecs <= 0 {
		c.Round.DurationSecs = def.Round.DurationSecs
	}

	if c.Speed.Min <= 0 {
		c.Speed.Min = def.Speed.Min
	}
	if c.Speed.Max <= 0 {
		c.Speed.Max = def.Speed.Max
	}
	if c.Speed.Min > c.Speed.Max {
		c.Speed.Min, c.Speed.Max = c.Speed.Max, c.Speed.Min
	}
	if c.Speed.Step <= 0 {
		c.Speed.Step = def.Speed.Step
	}
	if c.Speed.Initial == 0 {
		c.Speed.Initial = def.Speed.Initial
	}
	c.Speed.Initial = math.Max(c.Speed.Min, math.Min(c.Speed.Max, c.Speed.Initial))

	c.Audio.Volume = math.Max(0, math.Min(1, c.Audio.Volume))
}

// DifficultyPreset is a named starting heart speed.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a --difficulty flag value.
// An empty string means "use the config as is".
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// SpeedForPreset returns the initial heart speed for a preset.
// The boolean is false when the preset keeps the configured speed.
func SpeedForPreset(preset DifficultyPreset, speed SpeedConfig) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return speed.Min, true
	case DifficultyNormal:
		return (speed.Min + speed.Max) / 2, true
	case DifficultyHard:
		return speed.Max, true
	default:
		return 0, false
	}
}

// ApplyZTapzPreset modifies the config based on a difficulty preset.
func ApplyZTapzPreset(cfg *ZTapzConfig, preset DifficultyPreset) {
	if v, ok := SpeedForPreset(preset, cfg.Speed); ok {
		cfg.Speed.Initial = v
	}
}
