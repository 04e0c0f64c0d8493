package blit

import "testing"

func TestFormatNames(t *testing.T) {
	formats := Formats()
	if len(formats) != 9 {
		t.Fatalf("len(Formats()) = %d, want 9", len(formats))
	}
	for _, f := range formats {
		if got := ParseFormat(f.String()); got != f {
			t.Errorf("ParseFormat(%q) = %v, want %v", f.String(), got, f)
		}
	}
	if got := ParseFormat("rgb-5-6-5"); got != FormatNone {
		t.Errorf("ParseFormat is case insensitive: got %v", got)
	}
}

func TestConvertPixel(t *testing.T) {
	tests := []struct {
		dst, src Format
		word     uint32
		want     uint32
	}{
		{FormatARGB8888, FormatRGB565, 0xF800, 0xFFFF0000},
		{FormatRGB565, FormatARGB8888, 0x80FF8040, 0xFC08},
		{FormatA8, FormatRGB565, 0x1234, 0xFF},
		{FormatRGB332, FormatARGB8888, 0xFFE0C040, 0xF9},
		{FormatARGB4444, FormatA8, 0x80, 0x8FFF},
		{FormatXRGB8888, FormatARGB8888, 0x12345678, 0x00345678},
	}
	for _, tt := range tests {
		t.Run(tt.src.String()+"->"+tt.dst.String(), func(t *testing.T) {
			if got := ConvertPixel(tt.dst, tt.src, tt.word); got != tt.want {
				t.Errorf("ConvertPixel(%#x) = %#x, want %#x", tt.word, got, tt.want)
			}
		})
	}
}

func TestPixelColor(t *testing.T) {
	if got := PixelFromColor(FormatRGB565, RGB(1, 0, 0)); got != 0xF800 {
		t.Errorf("PixelFromColor(RGB565, red) = %#x, want 0xf800", got)
	}
	if got := PixelFromColor(FormatARGB8888, RGBA(0, 0, 1, 0.5)); got != 0x800000FF {
		t.Errorf("PixelFromColor(ARGB8888, blue/2) = %#x, want 0x800000ff", got)
	}
	if c := ColorFromPixel(FormatRGB565, 0); c != RGB(0, 0, 0) {
		t.Errorf("ColorFromPixel(RGB565, 0) = %+v, want opaque black", c)
	}
}
