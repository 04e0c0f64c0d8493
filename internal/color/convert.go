package color

import stdcolor "image/color"

// U8ToF32 converts ColorU8 to ColorF32.
// Each uint8 component [0,255] is mapped to float32 [0,1].
func U8ToF32(c ColorU8) ColorF32 {
	return ColorF32{
		R: float32(c.R) / 255.0,
		G: float32(c.G) / 255.0,
		B: float32(c.B) / 255.0,
		A: float32(c.A) / 255.0,
	}
}

// F32ToU8 converts ColorF32 to ColorU8.
// Each float32 component [0,1] is mapped to uint8 [0,255] with rounding.
func F32ToU8(c ColorF32) ColorU8 {
	return ColorU8{
		R: clampAndRound(c.R),
		G: clampAndRound(c.G),
		B: clampAndRound(c.B),
		A: clampAndRound(c.A),
	}
}

// FromStd converts any image/color value to a non-premultiplied ColorF32.
func FromStd(c stdcolor.Color) ColorF32 {
	if c == nil {
		return ColorF32{}
	}
	n := stdcolor.NRGBA64Model.Convert(c).(stdcolor.NRGBA64)
	return ColorF32{
		R: float32(n.R) / 0xffff,
		G: float32(n.G) / 0xffff,
		B: float32(n.B) / 0xffff,
		A: float32(n.A) / 0xffff,
	}
}

// NRGBA converts c to a non-premultiplied 8-bit image/color value.
func (c ColorF32) NRGBA() stdcolor.NRGBA {
	u := F32ToU8(c)
	return stdcolor.NRGBA{R: u.R, G: u.G, B: u.B, A: u.A}
}

// clampAndRound clamps a float32 to [0,1] and converts to uint8 with rounding.
func clampAndRound(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	// Round to nearest integer
	return uint8(v*255.0 + 0.5)
}
