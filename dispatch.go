package blit

import (
	"fmt"
	"image"
	"sync"

	intImage "github.com/gogpu/blit/internal/image"
)

// table maps (dst format, src format, mode) to a scanline routine.
// Every pair of the nine formats has an entry for every mode; rows and
// columns for FormatNone stay nil.
type table struct {
	blits [intImage.NumFormats][intImage.NumFormats][modeCount]blitFunc
	masks [intImage.NumFormats][intImage.NumFormats]maskFunc
}

// dispatch is built on first use from the declarative format list.
var dispatch = sync.OnceValue(buildTable)

func buildTable() *table {
	t := &table{}
	n := 0
	for _, dst := range intImage.Formats() {
		for _, src := range intImage.Formats() {
			p := newPixelPair(dst, src)
			for m := mode(0); m < modeCount; m++ {
				t.blits[dst][src][m] = p.blitFunc(m)
				n++
			}
			t.masks[dst][src] = p.blendMask
		}
	}
	Logger().Debug("blit: dispatch table built", "formats", len(intImage.Formats()), "entries", n)
	return t
}

func (t *table) blit(dst, src Format, m mode) blitFunc {
	if !dst.IsValid() || !src.IsValid() || m >= modeCount {
		return nil
	}
	return t.blits[dst][src][m]
}

func (t *table) mask(dst, src Format) maskFunc {
	if !dst.IsValid() || !src.IsValid() {
		return nil
	}
	return t.masks[dst][src]
}

// prepare validates both views and the region and clips the operation.
// It returns the span to walk; ok is false when the clipped area is empty.
// Nothing is written before prepare succeeds.
func prepare(dst, src View, at image.Point, region image.Rectangle, needDstRead bool) (s span, ok bool, err error) {
	if err := dst.Validate(); err != nil {
		return span{}, false, fmt.Errorf("blit: destination: %w", err)
	}
	if err := src.Validate(); err != nil {
		return span{}, false, fmt.Errorf("blit: source: %w", err)
	}
	if !dst.Access.CanWrite() || (needDstRead && !dst.Access.CanRead()) {
		return span{}, false, fmt.Errorf("%w: destination is %v", ErrAccessMode, dst.Access)
	}
	if !src.Access.CanRead() {
		return span{}, false, fmt.Errorf("%w: source is %v", ErrAccessMode, src.Access)
	}
	if err := checkRect(region); err != nil {
		return span{}, false, err
	}

	origin, r := clip(image.Pt(dst.Width, dst.Height), src.Bounds(), at, region)
	if r.Empty() {
		return span{}, false, nil
	}
	return span{
		dst:       dst.Pix[dst.PixOffset(origin.X, origin.Y):],
		src:       src.Pix[src.PixOffset(r.Min.X, r.Min.Y):],
		dstStride: dst.Stride,
		srcStride: src.Stride,
		width:     r.Dx(),
		height:    r.Dy(),
	}, true, nil
}

// run validates, clips, looks up the routine for (dst, src, m) and walks it.
func run(dst, src View, at image.Point, region image.Rectangle, m mode, opacity uint8) error {
	needRead := m == modeBlend || m == modeBlendOpacity
	s, ok, err := prepare(dst, src, at, region, needRead)
	if err != nil {
		logRejected(dst, src, at, region, m, err)
		return err
	}
	if !ok {
		Logger().Debug("blit: empty after clipping", "mode", m.String(), "at", at, "region", region)
		return nil
	}
	fn := dispatch().blit(dst.Format, src.Format, m)
	if fn == nil {
		err := fmt.Errorf("%w: no routine for %v <- %v", ErrInvalidFormat, dst.Format, src.Format)
		logRejected(dst, src, at, region, m, err)
		return err
	}
	s.opacity = opacity
	fn(s)
	return nil
}

func logRejected(dst, src View, at image.Point, region image.Rectangle, m mode, err error) {
	Logger().Warn("blit: rejected",
		"mode", m.String(),
		"dst_format", dst.Format.String(),
		"src_format", src.Format.String(),
		"at", at,
		"region", region,
		"err", err)
}
