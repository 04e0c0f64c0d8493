package image

import (
	"errors"
	"testing"

	"github.com/gogpu/blit/internal/color"
)

func TestNewBuf(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		format  Format
		wantErr error
	}{
		{"valid 565", 10, 5, FormatRGB565, nil},
		{"valid 888", 3, 3, FormatRGB888, nil},
		{"zero width", 0, 5, FormatA8, ErrInvalidDimensions},
		{"negative height", 5, -1, FormatA8, ErrInvalidDimensions},
		{"none format", 5, 5, FormatNone, ErrInvalidFormat},
		{"unknown format", 5, 5, Format(50), ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := NewBuf(tt.width, tt.height, tt.format)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewBuf() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if buf.Stride() != tt.format.RowBytes(tt.width) {
				t.Errorf("Stride() = %d, want %d", buf.Stride(), tt.format.RowBytes(tt.width))
			}
			if buf.ByteSize() != tt.format.ImageBytes(tt.width, tt.height) {
				t.Errorf("ByteSize() = %d, want %d", buf.ByteSize(), tt.format.ImageBytes(tt.width, tt.height))
			}
		})
	}
}

func TestNewBufWithStride(t *testing.T) {
	if _, err := NewBufWithStride(4, 4, FormatRGB888, 11); !errors.Is(err, ErrInvalidStride) {
		t.Errorf("stride 11 for 4 RGB-8-8-8 pixels: error = %v, want ErrInvalidStride", err)
	}
	buf, err := NewBufWithStride(4, 4, FormatRGB888, 16)
	if err != nil {
		t.Fatalf("NewBufWithStride: %v", err)
	}
	if buf.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", buf.Stride())
	}
	if got := len(buf.RowBytes(1)); got != 12 {
		t.Errorf("len(RowBytes(1)) = %d, want 12", got)
	}
}

func TestFromRaw(t *testing.T) {
	// Last row needs no trailing stride padding.
	data := make([]byte, 2*8+4)
	buf, err := FromRaw(data, 2, 3, FormatRGB565, 8)
	if err != nil {
		t.Fatalf("FromRaw: %v", err)
	}
	if err := buf.SetPixel(1, 2, 0xBEEF); err != nil {
		t.Fatalf("SetPixel: %v", err)
	}
	if data[18] != 0xEF || data[19] != 0xBE {
		t.Errorf("pixel (1,2) bytes = % x, want ef be", data[18:20])
	}

	if _, err := FromRaw(data[:19], 2, 3, FormatRGB565, 8); !errors.Is(err, ErrDataTooSmall) {
		t.Errorf("short data error = %v, want ErrDataTooSmall", err)
	}
}

func TestBuf_PixelOutOfBounds(t *testing.T) {
	buf, _ := NewBuf(2, 2, FormatARGB8888)
	if err := buf.SetPixel(2, 0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("SetPixel(2,0) error = %v, want ErrOutOfBounds", err)
	}
	if got := buf.Pixel(-1, 0); got != 0 {
		t.Errorf("Pixel(-1,0) = %#x, want 0", got)
	}
	if got := buf.PixelOffset(0, 2); got != -1 {
		t.Errorf("PixelOffset(0,2) = %d, want -1", got)
	}
	if got := buf.RowBytes(5); got != nil {
		t.Errorf("RowBytes(5) = %v, want nil", got)
	}
}

func TestBuf_Color(t *testing.T) {
	buf, _ := NewBuf(2, 2, FormatARGB4444)
	if err := buf.SetColor(1, 1, color.ColorF32{R: 1, G: 0, B: 0, A: 1}); err != nil {
		t.Fatalf("SetColor: %v", err)
	}
	if got := buf.Pixel(1, 1); got != 0xFF00 {
		t.Errorf("Pixel(1,1) = %#x, want 0xff00", got)
	}
	if got := buf.Color(1, 1); got != (color.ColorF32{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("Color(1,1) = %v", got)
	}
	if got := buf.Color(9, 9); got != (color.ColorF32{}) {
		t.Errorf("Color(9,9) = %v, want zero", got)
	}
}

func TestBuf_FillClear(t *testing.T) {
	buf, _ := NewBufWithStride(3, 2, FormatRGB888, 12)
	buf.Fill(0x102030)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := buf.Pixel(x, y); got != 0x102030 {
				t.Errorf("Pixel(%d,%d) = %#x, want 0x102030", x, y, got)
			}
		}
	}
	// Stride padding stays untouched.
	if buf.Data()[9] != 0 || buf.Data()[11] != 0 {
		t.Errorf("padding bytes written: % x", buf.Data()[9:12])
	}

	buf.Clear()
	if got := buf.Pixel(2, 1); got != 0 {
		t.Errorf("after Clear Pixel(2,1) = %#x, want 0", got)
	}
}

func TestBuf_Clone(t *testing.T) {
	buf, _ := NewBuf(2, 2, FormatA8)
	_ = buf.SetPixel(0, 0, 7)
	c := buf.Clone()
	_ = buf.SetPixel(0, 0, 9)
	if got := c.Pixel(0, 0); got != 7 {
		t.Errorf("clone pixel = %d, want 7", got)
	}
}

func TestBuf_SubBuf(t *testing.T) {
	buf, _ := NewBuf(4, 4, FormatRGB565)
	sub := buf.SubBuf(1, 1, 2, 2)
	if sub == nil {
		t.Fatal("SubBuf returned nil")
	}
	_ = sub.SetPixel(1, 1, 0x1234)
	if got := buf.Pixel(2, 2); got != 0x1234 {
		t.Errorf("parent Pixel(2,2) = %#x, want 0x1234", got)
	}
	if sub.Stride() != buf.Stride() {
		t.Errorf("sub stride = %d, want %d", sub.Stride(), buf.Stride())
	}

	for _, r := range [][4]int{{-1, 0, 1, 1}, {0, 0, 0, 1}, {3, 3, 2, 1}} {
		if buf.SubBuf(r[0], r[1], r[2], r[3]) != nil {
			t.Errorf("SubBuf(%v) != nil", r)
		}
	}
}

func TestMinLen(t *testing.T) {
	if got := MinLen(2, 3, FormatRGB565, 8); got != 20 {
		t.Errorf("MinLen = %d, want 20", got)
	}
	if got := MinLen(0, 3, FormatRGB565, 8); got != 0 {
		t.Errorf("MinLen(empty) = %d, want 0", got)
	}
}

func BenchmarkBuf_Fill(b *testing.B) {
	buf, _ := NewBuf(256, 256, FormatRGB888)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Fill(uint32(i))
	}
}
