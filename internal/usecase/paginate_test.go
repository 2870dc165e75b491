package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPagePositionsSinglePage(t *testing.T) {
	// square raster: scaled height 210mm, well under one page
	positions, err := PagePositions(794, 794)
	require.NoError(t, err)
	assert.Equal(t, []float64{0}, positions)
}

func TestPagePositionsExactPageHeightGetsExtraPage(t *testing.T) {
	// scaled height is exactly 297mm; the loop condition is >= 0, so an
	// exact fit still produces a second, flush-to-bottom page
	positions, err := PagePositions(210, 297)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -297}, positions)
}

func TestPagePositionsTwoPages(t *testing.T) {
	positions, err := PagePositions(210, 500)
	require.NoError(t, err)
	require.Len(t, positions, 2)
	assert.Equal(t, 0.0, positions[0])
	assert.InDelta(t, -297, positions[1], 1e-9)
}

func TestPagePositionsThreePages(t *testing.T) {
	positions, err := PagePositions(210, 594)
	require.NoError(t, err)
	require.Len(t, positions, 3)
	assert.InDelta(t, -297, positions[1], 1e-9)
	assert.InDelta(t, -594, positions[2], 1e-9)
}

func TestPagePositionsEveryFollowingPageStepsOnePage(t *testing.T) {
	positions, err := PagePositions(794, 5000)
	require.NoError(t, err)
	require.Greater(t, len(positions), 2)
	for i := 2; i < len(positions); i++ {
		assert.InDelta(t, PageHeight, positions[i-1]-positions[i], 1e-9)
	}
}

func TestPagePositionsRejectsBadDimensions(t *testing.T) {
	_, err := PagePositions(0, 100)
	assert.Error(t, err)
	_, err = PagePositions(794, -1)
	assert.Error(t, err)
}

func TestScaledHeight(t *testing.T) {
	assert.InDelta(t, 297, ScaledHeight(210, 297), 1e-9)
	assert.InDelta(t, 210, ScaledHeight(794, 794), 1e-9)
}
