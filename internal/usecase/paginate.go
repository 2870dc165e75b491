package usecase

import "fmt"

// A4 page size in the logical millimetre units the export works in.
const (
	PageWidth  = 210.0
	PageHeight = 297.0
)

// PagePositions computes, for a raster of the given pixel dimensions, the
// vertical offset at which the full image is drawn on each A4 page. The
// image is scaled to the page width, so its logical height is
// H*PageWidth/W. Page one draws it at 0; each following page redraws the
// whole image shifted up (a negative offset) so the next 297mm slice lands
// inside the page viewport, which clips everything else.
//
// The loop runs while the leftover height is >= 0, not > 0: a raster whose
// scaled height is an exact multiple of the page height therefore yields
// one extra flush-to-bottom page. Existing exports depend on that page
// count, so it must not be "fixed" here.
func PagePositions(pxWidth, pxHeight float64) ([]float64, error) {
	if pxWidth <= 0 || pxHeight <= 0 {
		return nil, fmt.Errorf("raster dimensions must be positive, got %gx%g", pxWidth, pxHeight)
	}
	imgHeight := pxHeight * PageWidth / pxWidth
	positions := []float64{0}
	remaining := imgHeight - PageHeight
	for remaining >= 0 {
		positions = append(positions, remaining-imgHeight)
		remaining -= PageHeight
	}
	return positions, nil
}

// ScaledHeight returns the logical height of a raster scaled to the page
// width with its aspect ratio preserved.
func ScaledHeight(pxWidth, pxHeight float64) float64 {
	return pxHeight * PageWidth / pxWidth
}
