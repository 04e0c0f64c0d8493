// Package blit provides software pixel-format conversion and compositing
// for packed pixel buffers.
//
// # Overview
//
// blit copies and alpha-blends rectangles between buffers in any of nine
// packed formats, from 8-bit alpha maps and RGB-3-3-2 up to ARGB-8-8-8-8.
// Every pair of formats is supported in every mode; a dispatch table built
// on first use selects a specialized scanline routine per
// (destination, source, mode) triple.
//
// # Quick Start
//
//	import "github.com/gogpu/blit"
//
//	screen, _ := blit.NewImage(320, 240, blit.FormatRGB565)
//	sprite, _ := blit.NewImage(16, 16, blit.FormatARGB4444)
//
//	// Copy with format conversion
//	err := blit.Blit(screen.Lock(blit.AccessWrite), sprite.Lock(blit.AccessRead),
//	    image.Pt(10, 10), image.Rectangle{})
//
//	// Blend by the sprite's alpha, then at half opacity
//	err = blit.Draw(screen.Lock(blit.AccessReadWrite), sprite.Lock(blit.AccessRead),
//	    image.Pt(40, 10), blit.WithBlend(), blit.WithOpacity(0x80))
//
// # Modes
//
// There are four operating modes:
//   - copy: convert each source pixel to the destination format
//   - copy+alpha: copy, then set destination alpha to source alpha * opacity
//   - blend: move each destination pixel toward the source by source alpha
//   - blend+opacity: blend by source alpha, then by an external opacity
//
// Sources without an alpha channel are treated as opaque. Destinations
// without one discard the alpha result.
//
// # Channel Conversion
//
// Channels are widened by bit replication, so full intensity stays full
// intensity (5-bit 0x1F becomes 8-bit 0xFF), and narrowed by truncation.
// A channel missing from the source converts to full intensity; a channel
// missing from the destination is dropped.
//
// # Clipping
//
// Blits clip against both buffers. Negative destination coordinates trim the
// source region; anything that falls outside the destination is skipped. A
// blit that clips to nothing succeeds without touching memory. Invalid
// formats, strides, access modes and inverted rectangles are reported before
// any pixel is written.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Blit functions hold no state beyond the read-only dispatch table. Calls
// on disjoint destinations may run concurrently.
package blit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0-alpha.1"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0

	// VersionPrerelease is the prerelease identifier
	VersionPrerelease = "alpha.1"
)
