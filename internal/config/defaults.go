package config

import (
	_ "embed"
)

//go:embed defaults/ztapz.yaml
var defaultZTapzYAML []byte

// DefaultZTapzConfig returns the built-in configuration: a 60 second
// "Quick Minute" round with the heart speed slider at 4.
func DefaultZTapzConfig() ZTapzConfig {
	return ZTapzConfig{
		Round: RoundConfig{
			DurationSecs: 60,
		},
		Speed: SpeedConfig{
			Initial: 4.0,
			Min:     2.0,
			Max:     5.0,
			Step:    0.1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
		},
		Intro: IntroConfig{
			ShowWarning: true,
		},
	}
}
