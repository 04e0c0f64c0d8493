package image

import "encoding/binary"

// LoadFunc reads one pixel word from the start of b.
type LoadFunc func(b []byte) uint32

// StoreFunc writes one pixel word to the start of b.
type StoreFunc func(b []byte, word uint32)

// Accessor reads and writes pixel words of a single byte width.
// Every accessor touches exactly BytesPerPixel bytes, so a 24-bit pixel at
// the very end of a buffer never reaches past it.
type Accessor struct {
	Load  LoadFunc
	Store StoreFunc
}

var accessorTable = [5]Accessor{
	1: {Load: load8, Store: store8},
	2: {Load: load16, Store: store16},
	3: {Load: load24, Store: store24},
	4: {Load: load32, Store: store32},
}

// Accessor returns the pixel accessor for the format's word width.
// Unknown formats return the zero Accessor.
func (f Format) Accessor() Accessor {
	bpp := f.BytesPerPixel()
	if bpp <= 0 || bpp >= len(accessorTable) {
		return Accessor{}
	}
	return accessorTable[bpp]
}

func load8(b []byte) uint32 {
	return uint32(b[0])
}

func store8(b []byte, word uint32) {
	b[0] = byte(word)
}

func load16(b []byte) uint32 {
	return uint32(binary.LittleEndian.Uint16(b))
}

func store16(b []byte, word uint32) {
	binary.LittleEndian.PutUint16(b, uint16(word))
}

func load24(b []byte) uint32 {
	_ = b[2] // bounds check hint to compiler
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func store24(b []byte, word uint32) {
	_ = b[2]
	b[0] = byte(word)
	b[1] = byte(word >> 8)
	b[2] = byte(word >> 16)
}

func load32(b []byte) uint32 {
	return binary.LittleEndian.Uint32(b)
}

func store32(b []byte, word uint32) {
	binary.LittleEndian.PutUint32(b, word)
}
