package animation

import (
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holdguard/internal/core/bordertrace"
)

func TestTraceEmpty(t *testing.T) {
	frame := Trace(fyne.NewSize(100, 40), 0, bordertrace.Decompose(0))

	for _, segment := range frame.Edges {
		assert.Equal(t, segment.From, segment.To)
	}
	for _, corner := range frame.Corners {
		assert.Equal(t, 0.0, corner.Opacity)
	}
}

func TestTraceHalfway(t *testing.T) {
	frame := Trace(fyne.NewSize(100, 40), 0, bordertrace.Decompose(0.375))

	assert.Equal(t, fyne.NewPos(0, 0), frame.Edges[0].From)
	assert.Equal(t, fyne.NewPos(100, 0), frame.Edges[0].To)
	assert.Equal(t, fyne.NewPos(100, 0), frame.Edges[1].From)
	assert.Equal(t, fyne.NewPos(100, 20), frame.Edges[1].To)
	assert.Equal(t, frame.Edges[2].From, frame.Edges[2].To)
	assert.Equal(t, 1.0, frame.Corners[1].Opacity)
	assert.Equal(t, fyne.NewPos(100, 40), frame.Corners[2].At)
}

func TestTraceComplete(t *testing.T) {
	frame := Trace(fyne.NewSize(50, 20), 2, bordertrace.Decompose(1))

	assert.Equal(t, fyne.NewPos(48, 2), frame.Edges[0].To)
	assert.Equal(t, fyne.NewPos(48, 18), frame.Edges[1].To)
	assert.Equal(t, fyne.NewPos(2, 18), frame.Edges[2].To)
	assert.Equal(t, fyne.NewPos(2, 2), frame.Edges[3].To)
}

func TestTraceDegenerateSize(t *testing.T) {
	frame := Trace(fyne.NewSize(2, 2), 5, bordertrace.Decompose(1))

	for _, segment := range frame.Edges {
		assert.Equal(t, fyne.NewPos(5, 5), segment.From)
	}
}

func TestFillWidth(t *testing.T) {
	assert.Equal(t, float32(0), FillWidth(80, -1))
	assert.Equal(t, float32(20), FillWidth(80, 0.25))
	assert.Equal(t, float32(80), FillWidth(80, 3))
}

func TestParseStyle(t *testing.T) {
	style, err := ParseStyle(" Fill ")
	require.NoError(t, err)
	assert.Equal(t, StyleFill, style)

	style, err = ParseStyle("border")
	require.NoError(t, err)
	assert.Equal(t, StyleBorderTrace, style)

	_, err = ParseStyle("sparkles")
	assert.Error(t, err)
}
