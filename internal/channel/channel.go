// Package channel describes one color component inside a packed pixel word
// and converts its bits between layouts.
//
// All arithmetic is done on unsigned integers. Widening a channel replicates
// its bit pattern instead of multiplying, so a saturated narrow channel always
// becomes a saturated wide channel:
//
//	3-bit 011 -> 8-bit 01101101
//	3-bit 111 -> 8-bit 11111111
package channel

import "math"

// MaxBits is the widest pixel word a channel can live in.
const MaxBits = 32

// Channel is a contiguous bit range inside a pixel word.
//
// A Channel with Count == 0 is the null channel: the color component is
// absent from the format.
type Channel struct {
	// First is the index of the lowest bit of the channel.
	First uint

	// Count is the number of bits in the channel.
	Count uint
}

// Null is the absent channel.
var Null = Channel{}

// New returns the channel occupying count bits starting at first.
func New(first, count uint) Channel {
	return Channel{First: first, Count: count}
}

// IsNull reports whether the channel is absent.
func (c Channel) IsNull() bool {
	return c.Count == 0
}

// End returns the index one past the highest bit of the channel.
func (c Channel) End() uint {
	return c.First + c.Count
}

// Max returns the largest value the channel can hold (2^Count - 1).
func (c Channel) Max() uint32 {
	if c.Count == 0 {
		return 0
	}
	return uint32(uint64(1)<<c.Count - 1)
}

// Mask returns the channel's bits in pixel-word position.
func (c Channel) Mask() uint32 {
	return c.Max() << c.First
}

// Extract returns the channel value of word shifted down to bit 0.
func (c Channel) Extract(word uint32) uint32 {
	return (word >> c.First) & c.Max()
}

// Place masks v to the channel width and shifts it into position.
func (c Channel) Place(v uint32) uint32 {
	return (v & c.Max()) << c.First
}

// Overlaps reports whether two channels share any bit.
func (c Channel) Overlaps(o Channel) bool {
	if c.IsNull() || o.IsNull() {
		return false
	}
	return c.First < o.End() && o.First < c.End()
}

// Float returns the channel value of word normalized to [0,1].
// The null channel yields 1 so that a format without alpha reads as opaque.
func (c Channel) Float(word uint32) float32 {
	if c.IsNull() {
		return 1
	}
	return float32(c.Extract(word)) / float32(c.Max())
}

// FromFloat returns round(v * Max) in channel position. v is clamped to [0,1].
// The null channel contributes 0.
func (c Channel) FromFloat(v float32) uint32 {
	if c.IsNull() {
		return 0
	}
	switch {
	case v <= 0 || v != v:
		return 0
	case v >= 1:
		return c.Mask()
	}
	return c.Place(uint32(math.Round(float64(v) * float64(c.Max()))))
}

// Replicate widens the from-bit value v to a to-bit value by repeating its
// bit pattern downward from the most significant bit. When to <= from the
// value is truncated to its to most significant bits instead.
func Replicate(v uint32, from, to uint) uint32 {
	if from == 0 || to == 0 {
		return 0
	}
	if to <= from {
		return v >> (from - to)
	}
	acc := uint64(v) & (uint64(1)<<from - 1)
	bits := from
	for bits < to {
		acc |= acc << bits
		bits += bits
	}
	return uint32(acc >> (bits - to))
}

// Convert moves the src channel of word into the dst channel layout.
//
// A null src channel synthesizes full intensity in dst, so converting a
// format without alpha into one with alpha yields opaque pixels. A wider dst
// is filled by bit replication; a narrower dst keeps the most significant
// bits and truncates the rest.
func Convert(word uint32, src, dst Channel) uint32 {
	if dst.IsNull() {
		return 0
	}
	if src.IsNull() {
		return dst.Mask()
	}
	v := src.Extract(word)
	if dst.Count > src.Count {
		v = Replicate(v, src.Count, dst.Count)
	} else {
		v >>= src.Count - dst.Count
	}
	return dst.Place(v)
}

// To8 returns the channel value of word widened or narrowed to 8 bits.
// The null channel yields 0xFF.
func (c Channel) To8(word uint32) uint8 {
	return uint8(Convert(word, c, Channel{Count: 8}))
}
