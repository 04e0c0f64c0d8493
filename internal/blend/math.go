package blend

// Scale multiplies v by the opacity a with the blend's truncating
// fixed-point rule, (v * a) >> 8. MaxOpacity leaves v unchanged.
func Scale(v, a uint8) uint8 {
	if a == MaxOpacity {
		return v
	}
	return uint8(uint16(v) * uint16(a) >> OpacityBits)
}

// Lerp is the single-channel blend d + ((s - d) * a) >> 8 with an
// arithmetic (flooring) shift. It is the reference the packed groups of a
// Plan must reproduce bit for bit.
func Lerp(d, s uint32, a uint8) uint32 {
	delta := (int64(s) - int64(d)) * int64(a)
	return uint32(int64(d) + delta>>OpacityBits)
}
