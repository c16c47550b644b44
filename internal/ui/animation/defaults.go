package animation

import (
	"fmt"
	"strings"
)

// Style selects how hold progress is presented.
type Style string

const (
	// StyleFill grows a bar across the control.
	StyleFill Style = "fill"
	// StyleBorderTrace draws the control's outline quadrant by quadrant.
	StyleBorderTrace Style = "border-trace"
)

// ParseStyle converts a user-supplied name into a Style.
func ParseStyle(value string) (Style, error) {
	switch Style(strings.ToLower(strings.TrimSpace(value))) {
	case StyleFill:
		return StyleFill, nil
	case StyleBorderTrace, "border", "trace":
		return StyleBorderTrace, nil
	default:
		return "", fmt.Errorf("unknown progress style %q", value)
	}
}

// Config contains presentation values for hold feedback.
type Config struct {
	Style       Style
	StrokeWidth float32
	CornerSize  float32
	Inset       float32
}

// DefaultConfig returns the stock border-trace look.
func DefaultConfig() Config {
	return Config{
		Style:       StyleBorderTrace,
		StrokeWidth: 3,
		CornerSize:  7,
		Inset:       1.5,
	}
}
