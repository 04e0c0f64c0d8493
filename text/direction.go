package text

import (
	"cmp"
	"slices"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
)

// ResolveDirection returns the paragraph direction of text. An explicit
// base direction wins; DirectionAuto takes the direction of the first
// strong character and defaults to left-to-right.
func ResolveDirection(text string, base Direction) Direction {
	if base == DirectionLTR || base == DirectionRTL {
		return base
	}
	for i := 0; i < len(text); {
		p, size := bidi.LookupString(text[i:])
		switch p.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
		if size == 0 {
			_, size = utf8.DecodeRuneInString(text[i:])
		}
		i += size
	}
	return DirectionLTR
}

// bidiRun is a maximal run of one direction.
type bidiRun struct {
	// start and end are rune indices into the paragraph, end exclusive.
	start, end int
	level      int
}

func (r bidiRun) rtl() bool { return r.level%2 == 1 }

// visualRuns splits text into directional runs ordered left to right on
// screen. Text the bidi algorithm cannot resolve is one run in dir.
func visualRuns(text string, dir Direction) []bidiRun {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return nil
	}
	base := 0
	defaultDir := bidi.LeftToRight
	if dir == DirectionRTL {
		base = 1
		defaultDir = bidi.RightToLeft
	}
	fallback := []bidiRun{{start: 0, end: n, level: base}}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return fallback
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return fallback
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		// Pos reports rune indices, end inclusive.
		start, end := run.Pos()
		level := base
		switch {
		case run.Direction() == bidi.RightToLeft && base == 0:
			level = 1
		case run.Direction() != bidi.RightToLeft && base == 1:
			level = 2
		}
		runs = append(runs, bidiRun{start: start, end: min(end+1, n), level: level})
	}
	slices.SortFunc(runs, func(a, b bidiRun) int { return cmp.Compare(a.start, b.start) })
	reorderRuns(runs)
	return runs
}

// reorderRuns applies rule L2 of the bidi algorithm to runs in logical
// order: from the highest level down to the lowest odd level, every
// maximal sequence at that level or above is reversed.
func reorderRuns(runs []bidiRun) {
	highest, lowestOdd := 0, 3
	for _, r := range runs {
		highest = max(highest, r.level)
		if r.level%2 == 1 {
			lowestOdd = min(lowestOdd, r.level)
		}
	}
	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(runs); {
			if runs[i].level < level {
				i++
				continue
			}
			j := i
			for j < len(runs) && runs[j].level >= level {
				j++
			}
			slices.Reverse(runs[i:j])
			i = j
		}
	}
}
