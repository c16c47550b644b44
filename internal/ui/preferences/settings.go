package preferences

import (
	"time"

	"holdguard/internal/core/model"
	"holdguard/internal/ui/animation"
)

// Settings defines editable user preferences.
type Settings struct {
	HoldDuration     time.Duration
	SamplingInterval time.Duration
	Disabled         bool
	Style            animation.Style
}

// DefaultSettings returns default settings for holdguard.
func DefaultSettings() Settings {
	return Settings{
		HoldDuration:     model.DefaultHoldDuration,
		SamplingInterval: model.DefaultSamplingInterval,
		Disabled:         false,
		Style:            animation.StyleBorderTrace,
	}
}

// HoldConfig converts settings to a HoldConfig.
func (settings Settings) HoldConfig() model.HoldConfig {
	return model.HoldConfig{
		HoldDuration:     settings.HoldDuration,
		SamplingInterval: settings.SamplingInterval,
		Disabled:         settings.Disabled,
	}
}

// Look converts settings to the presentation config.
func (settings Settings) Look() animation.Config {
	look := animation.DefaultConfig()
	if settings.Style != "" {
		look.Style = settings.Style
	}
	return look
}
