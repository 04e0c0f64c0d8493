package blit

import (
	"fmt"
	"image"
)

// checkRect rejects rectangles with inverted corners.
func checkRect(r image.Rectangle) error {
	if r.Min.X > r.Max.X || r.Min.Y > r.Max.Y {
		return fmt.Errorf("%w: %v", ErrInvalidRegion, r)
	}
	return nil
}

// clip resolves which source pixels land where in the destination.
//
// An empty region selects the whole source. The region is intersected with
// the source bounds; a negative destination origin trims the same amount off
// the region's leading edge. The copy size is the smaller of what remains of
// the region and what fits in the destination, per axis. The returned
// rectangle is the source region; the point is the destination origin.
// A zero-area result means there is nothing to do.
//
// The part of a region lying outside the source is dropped without moving
// at: the top-left of the intersected region lands at at, so Rect(-2,-2,2,2)
// placed at (3,3) puts source pixel (0,0) at (3,3).
func clip(dstSize image.Point, srcBounds image.Rectangle, at image.Point, region image.Rectangle) (image.Point, image.Rectangle) {
	if region.Empty() {
		region = srcBounds
	}
	region = region.Intersect(srcBounds)

	if at.X < 0 {
		region.Min.X -= at.X
		at.X = 0
	}
	if at.Y < 0 {
		region.Min.Y -= at.Y
		at.Y = 0
	}

	w := min(dstSize.X-at.X, region.Dx())
	h := min(dstSize.Y-at.Y, region.Dy())
	if w <= 0 || h <= 0 {
		return at, image.Rectangle{}
	}
	region.Max = region.Min.Add(image.Pt(w, h))
	return at, region
}
