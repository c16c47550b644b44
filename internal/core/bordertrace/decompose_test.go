package bordertrace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeBoundedAndMonotonic(t *testing.T) {
	samples := []float64{0, 0.1, 0.25, 0.26, 0.5, 0.75, 0.9, 1.0}

	var previous [8]float64
	for i, progress := range samples {
		values := Decompose(progress).Values()
		for j, value := range values {
			assert.GreaterOrEqual(t, value, 0.0, "progress %v value %d", progress, j)
			assert.LessOrEqual(t, value, 1.0, "progress %v value %d", progress, j)
			if i > 0 {
				assert.GreaterOrEqual(t, value, previous[j], "progress %v value %d", progress, j)
			}
		}
		previous = values
	}
}

func TestDecomposeMonotonicFineSweep(t *testing.T) {
	previous := Decompose(0).Values()
	for step := 1; step <= 1000; step++ {
		values := Decompose(float64(step) / 1000).Values()
		for j := range values {
			assert.GreaterOrEqual(t, values[j], previous[j])
		}
		previous = values
	}
}

func TestDecomposeEndpoints(t *testing.T) {
	assert.Equal(t, [8]float64{}, Decompose(0).Values())

	for _, value := range Decompose(1).Values() {
		assert.InDelta(t, 1.0, value, 1e-9)
	}
}

func TestDecomposeTopLeftIsBinary(t *testing.T) {
	assert.Equal(t, 0.0, Decompose(0).TopLeft)
	assert.Equal(t, 1.0, Decompose(1e-9).TopLeft)
	assert.Equal(t, 1.0, Decompose(0.01).TopLeft)
}

func TestDecomposeQuadrantBoundaries(t *testing.T) {
	atQuarter := Decompose(0.25)
	assert.Equal(t, 1.0, atQuarter.Top)
	assert.Equal(t, 0.0, atQuarter.Right)
	assert.Equal(t, 0.0, atQuarter.TopRight)

	pastQuarter := Decompose(0.26)
	assert.Greater(t, pastQuarter.TopRight, 0.0)
	assert.InDelta(t, 0.25, pastQuarter.TopRight, 1e-9)
	assert.InDelta(t, 0.04, pastQuarter.Right, 1e-9)

	half := Decompose(0.5)
	assert.Equal(t, 1.0, half.Right)
	assert.Equal(t, 0.0, half.Bottom)
	assert.Equal(t, 1.0, half.TopRight)
	assert.Equal(t, 0.0, half.BottomRight)
}

func TestDecomposeCornerTransitionBand(t *testing.T) {
	assert.InDelta(t, 0.5, Decompose(0.52).BottomRight, 1e-9)
	assert.Equal(t, 1.0, Decompose(0.55).BottomRight)
	assert.InDelta(t, 0.75, Decompose(0.78).BottomLeft, 1e-9)
	assert.Equal(t, 1.0, Decompose(0.8).BottomLeft)
}

func TestDecomposeClampsInput(t *testing.T) {
	assert.Equal(t, Decompose(0), Decompose(-0.5))
	assert.Equal(t, Decompose(0), Decompose(math.NaN()))
	assert.Equal(t, Decompose(1), Decompose(7))
}

func TestEdgeProgressOrdering(t *testing.T) {
	edges := EdgeProgress{Top: 1, Right: 2, Bottom: 3, Left: 4, TopLeft: 5, TopRight: 6, BottomRight: 7, BottomLeft: 8}

	assert.Equal(t, [4]float64{1, 2, 3, 4}, edges.Edges())
	assert.Equal(t, [4]float64{5, 6, 7, 8}, edges.Corners())
	assert.Equal(t, [8]float64{1, 2, 3, 4, 5, 6, 7, 8}, edges.Values())
}
