package preferences

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"holdguard/internal/ui/animation"
)

func TestDefaultSettingsConvert(t *testing.T) {
	settings := DefaultSettings()

	config := settings.HoldConfig()
	assert.Equal(t, 3*time.Second, config.HoldDuration)
	assert.Equal(t, 40*time.Millisecond, config.SamplingInterval)
	assert.False(t, config.Disabled)
	assert.NoError(t, config.Validate())

	assert.Equal(t, animation.StyleBorderTrace, settings.Look().Style)
}

func TestLookKeepsDefaultStyleWhenUnset(t *testing.T) {
	settings := Settings{Style: animation.StyleFill}
	assert.Equal(t, animation.StyleFill, settings.Look().Style)

	settings.Style = ""
	assert.Equal(t, animation.StyleBorderTrace, settings.Look().Style)
}
