// Package blend implements fixed-point alpha blending of packed pixel words.
//
// A blend moves every destination channel toward the matching source
// channel by an 8-bit opacity:
//
//	d' = d + ((s - d) * a) >> 8
//
// Instead of one multiply per channel, channels are spread into fields of a
// 32-bit scratch word with OpacityBits of headroom each, so one multiply-add
// blends a whole group of channels without carries crossing field borders.
// Channels that do not fit in one scratch word go into further groups.
package blend

import "github.com/gogpu/blit/internal/channel"

const (
	// OpacityBits is the width of an opacity factor.
	OpacityBits = 8

	// MaxOpacity is the fully opaque factor.
	MaxOpacity = 1<<OpacityBits - 1

	// scratchBits is the width of the word a group is packed into.
	scratchBits = 32
)

// slot is one channel spread into a scratch field starting at shift.
type slot struct {
	ch    channel.Channel
	shift uint
}

// group is a set of channels blended by a single multiply-add.
type group struct {
	slots []slot
}

func (g *group) spread(word uint32) uint32 {
	var v uint32
	for _, s := range g.slots {
		v |= s.ch.Extract(word) << s.shift
	}
	return v
}

func (g *group) pack(v uint32) uint32 {
	var word uint32
	for _, s := range g.slots {
		word |= s.ch.Place(v >> (s.shift + OpacityBits))
	}
	return word
}

// Plan blends pixel words of one channel layout.
// A Plan is immutable and safe for concurrent use.
type Plan struct {
	groups []group
	mask   uint32
}

// NewPlan builds a blend plan for the given channels. Null channels are
// skipped; channels absent from the plan keep their destination bits.
func NewPlan(chans ...channel.Channel) *Plan {
	p := &Plan{}
	var cur group
	used := uint(0)
	for _, c := range chans {
		if c.IsNull() {
			continue
		}
		width := c.Count + OpacityBits
		if used+width > scratchBits && len(cur.slots) > 0 {
			p.groups = append(p.groups, cur)
			cur = group{}
			used = 0
		}
		cur.slots = append(cur.slots, slot{ch: c, shift: used})
		used += width
		p.mask |= c.Mask()
	}
	if len(cur.slots) > 0 {
		p.groups = append(p.groups, cur)
	}
	return p
}

// Groups returns the number of multiply-adds one blend costs.
func (p *Plan) Groups() int {
	return len(p.groups)
}

// Mask returns the bits covered by the plan's channels.
func (p *Plan) Mask() uint32 {
	return p.mask
}

// Blend moves dst toward src by opacity a. Both words must already be in
// the plan's layout. a == 0 returns dst; a == MaxOpacity returns src's
// channels. Bits outside the plan's channels are taken from dst.
func (p *Plan) Blend(dst, src uint32, a uint8) uint32 {
	switch a {
	case 0:
		return dst
	case MaxOpacity:
		return dst&^p.mask | src&p.mask
	}
	return p.blend(dst, src, a)
}

// Blend2 blends with two opacities applied one after the other:
//
//	d' = d + ((((s - d) * a1) >> 8) * a2) >> 8
//
// The intermediate result is truncated before the second scaling, which is
// not the same as scaling once by a1*a2. A factor of MaxOpacity is an
// identity and reduces to Blend with the other factor.
func (p *Plan) Blend2(dst, src uint32, a1, a2 uint8) uint32 {
	switch {
	case a1 == 0 || a2 == 0:
		return dst
	case a2 == MaxOpacity:
		return p.Blend(dst, src, a1)
	case a1 == MaxOpacity:
		return p.Blend(dst, src, a2)
	}
	return p.blend(dst, p.blend(dst, src, a1), a2)
}

// blend is d + ((s-d)*a)>>8 for every channel, computed as
// (s*a + d*(256-a)) >> 8 on the spread groups.
func (p *Plan) blend(dst, src uint32, a uint8) uint32 {
	sa := uint32(a)
	da := uint32(1<<OpacityBits) - sa
	out := dst &^ p.mask
	for i := range p.groups {
		g := &p.groups[i]
		out |= g.pack(g.spread(src)*sa + g.spread(dst)*da)
	}
	return out
}
