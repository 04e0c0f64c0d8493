package blit

import (
	"github.com/gogpu/blit/internal/blend"
	"github.com/gogpu/blit/internal/channel"
	intImage "github.com/gogpu/blit/internal/image"
)

// mode selects one of the four blit operating modes.
type mode uint8

const (
	// modeCopy converts (or copies) pixels without blending.
	modeCopy mode = iota

	// modeCopyAlpha copies pixels, then writes sourceAlpha*opacity into the
	// destination alpha channel.
	modeCopyAlpha

	// modeBlend blends by the source pixel's own alpha.
	modeBlend

	// modeBlendOpacity blends by source alpha and an external opacity.
	modeBlendOpacity

	modeCount
)

var modeNames = [modeCount]string{
	modeCopy:         "copy",
	modeCopyAlpha:    "copy+alpha",
	modeBlend:        "blend",
	modeBlendOpacity: "blend+opacity",
}

func (m mode) String() string {
	if m >= modeCount {
		return "unknown"
	}
	return modeNames[m]
}

// span describes the clipped rectangle handed to a blitFunc. dst and src
// start at the first pixel of the rectangle in each buffer.
type span struct {
	dst, src             []byte
	dstStride, srcStride int
	width, height        int
	opacity              uint8
}

// blitFunc walks every pixel of a span exactly once, row by row.
type blitFunc func(s span)

// pixelPair bundles what a per-pixel loop needs for one format pair.
type pixelPair struct {
	dst, src   intImage.Format
	dbpp, sbpp int
	load       intImage.LoadFunc
	loadDst    intImage.LoadFunc
	store      intImage.StoreFunc
	conv       *intImage.Converter
	srcAlpha   channel.Channel
	dstAlpha   channel.Channel
	plan       *blend.Plan
}

func newPixelPair(dst, src intImage.Format) *pixelPair {
	dl := dst.Layout()
	da, sa := dst.Accessor(), src.Accessor()
	return &pixelPair{
		dst:      dst,
		src:      src,
		dbpp:     dst.BytesPerPixel(),
		sbpp:     src.BytesPerPixel(),
		load:     sa.Load,
		loadDst:  da.Load,
		store:    da.Store,
		conv:     intImage.NewConverter(dst, src),
		srcAlpha: src.Layout().Alpha,
		dstAlpha: dl.Alpha,
		plan:     blend.NewPlan(dl.Blue, dl.Green, dl.Red, dl.Alpha),
	}
}

// alpha8 is the 8-bit channel an opacity value is converted from.
var alpha8 = channel.New(0, 8)

// blitFunc returns the scanline routine for mode m.
// Modes that need a source alpha channel fall back when the source has
// none: blend becomes copy, and blend+opacity blends by the opacity alone.
func (p *pixelPair) blitFunc(m mode) blitFunc {
	switch m {
	case modeCopy:
		if p.dst == p.src {
			return p.copyRaw
		}
		return p.copyConvert
	case modeCopyAlpha:
		if p.dstAlpha.IsNull() {
			return p.blitFunc(modeCopy)
		}
		return p.copySetAlpha
	case modeBlend:
		if p.srcAlpha.IsNull() {
			return p.blitFunc(modeCopy)
		}
		return p.blendAlpha
	case modeBlendOpacity:
		if p.srcAlpha.IsNull() {
			return p.blendOpacity
		}
		return p.blendAlphaOpacity
	}
	return nil
}

// copyRaw copies identical formats row by row, or in one block when neither
// buffer has row padding.
func (p *pixelPair) copyRaw(s span) {
	rowBytes := s.width * p.dbpp
	if s.dstStride == rowBytes && s.srcStride == rowBytes {
		n := rowBytes * s.height
		copy(s.dst[:n], s.src[:n])
		return
	}
	for y := 0; y < s.height; y++ {
		copy(s.dst[y*s.dstStride:y*s.dstStride+rowBytes], s.src[y*s.srcStride:y*s.srcStride+rowBytes])
	}
}

func (p *pixelPair) copyConvert(s span) {
	for y := 0; y < s.height; y++ {
		p.conv.ConvertRow(s.dst[y*s.dstStride:], s.src[y*s.srcStride:], s.width)
	}
}

func (p *pixelPair) copySetAlpha(s span) {
	keep := ^p.dstAlpha.Mask()
	for y := 0; y < s.height; y++ {
		d, sr := s.dst[y*s.dstStride:], s.src[y*s.srcStride:]
		for x := 0; x < s.width; x++ {
			sw := p.load(sr[x*p.sbpp:])
			a := blend.Scale(p.srcAlpha.To8(sw), s.opacity)
			w := p.conv.Convert(sw)&keep | channel.Convert(uint32(a), alpha8, p.dstAlpha)
			p.store(d[x*p.dbpp:], w)
		}
	}
}

func (p *pixelPair) blendAlpha(s span) {
	for y := 0; y < s.height; y++ {
		d, sr := s.dst[y*s.dstStride:], s.src[y*s.srcStride:]
		for x := 0; x < s.width; x++ {
			sw := p.load(sr[x*p.sbpp:])
			a := p.srcAlpha.To8(sw)
			if a == 0 {
				continue
			}
			dp := d[x*p.dbpp:]
			p.store(dp, p.plan.Blend(p.loadDst(dp), p.conv.Convert(sw), a))
		}
	}
}

func (p *pixelPair) blendAlphaOpacity(s span) {
	for y := 0; y < s.height; y++ {
		d, sr := s.dst[y*s.dstStride:], s.src[y*s.srcStride:]
		for x := 0; x < s.width; x++ {
			sw := p.load(sr[x*p.sbpp:])
			a := p.srcAlpha.To8(sw)
			if a == 0 {
				continue
			}
			dp := d[x*p.dbpp:]
			p.store(dp, p.plan.Blend2(p.loadDst(dp), p.conv.Convert(sw), a, s.opacity))
		}
	}
}

func (p *pixelPair) blendOpacity(s span) {
	for y := 0; y < s.height; y++ {
		d, sr := s.dst[y*s.dstStride:], s.src[y*s.srcStride:]
		for x := 0; x < s.width; x++ {
			dp := d[x*p.dbpp:]
			sw := p.conv.Convert(p.load(sr[x*p.sbpp:]))
			p.store(dp, p.plan.Blend(p.loadDst(dp), sw, s.opacity))
		}
	}
}

// maskFunc blends a solid color through the alpha of a coverage map.
type maskFunc func(s span, color uint32)

// blendMask treats the source as coverage: its alpha (0xFF when the format
// has none) scales the destination's move toward color, a word already in
// the destination format.
func (p *pixelPair) blendMask(s span, color uint32) {
	for y := 0; y < s.height; y++ {
		d, m := s.dst[y*s.dstStride:], s.src[y*s.srcStride:]
		for x := 0; x < s.width; x++ {
			a := p.srcAlpha.To8(p.load(m[x*p.sbpp:]))
			if a == 0 {
				continue
			}
			dp := d[x*p.dbpp:]
			p.store(dp, p.plan.Blend2(p.loadDst(dp), color, a, s.opacity))
		}
	}
}
