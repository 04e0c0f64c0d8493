package blit

import (
	"image"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.mode() != modeCopy {
		t.Errorf("default mode = %v, want copy", o.mode())
	}
	if o.opacity != 0xFF {
		t.Errorf("default opacity = %#x, want 0xff", o.opacity)
	}
	if !o.region.Empty() {
		t.Errorf("default region = %v, want empty", o.region)
	}
}

func TestOptionsMode(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want mode
	}{
		{"none", nil, modeCopy},
		{"opacity", []Option{WithOpacity(0x40)}, modeCopyAlpha},
		{"blend", []Option{WithBlend()}, modeBlend},
		{"blend opacity", []Option{WithBlend(), WithOpacity(0x40)}, modeBlendOpacity},
		{"opacity blend", []Option{WithOpacity(0x40), WithBlend()}, modeBlendOpacity},
		{"region only", []Option{WithSourceRect(image.Rect(0, 0, 1, 1))}, modeCopy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			for _, opt := range tt.opts {
				opt(&o)
			}
			if got := o.mode(); got != tt.want {
				t.Errorf("mode() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawMatchesModeFunctions(t *testing.T) {
	src := newTestView(t, 2, 2, FormatARGB8888, 0, 0)
	fillView(src, 0x80FF8040)

	viaDraw := newTestView(t, 2, 2, FormatRGB888, 0, 0x20)
	viaFunc := newTestView(t, 2, 2, FormatRGB888, 0, 0x20)

	if err := Draw(viaDraw, src, image.Point{}, WithBlend(), WithOpacity(0xC0)); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if err := BlendOpacity(viaFunc, src, image.Point{}, image.Rectangle{}, 0xC0); err != nil {
		t.Fatalf("BlendOpacity: %v", err)
	}
	for i := range viaDraw.Pix {
		if viaDraw.Pix[i] != viaFunc.Pix[i] {
			t.Fatalf("Draw result % x, want % x", viaDraw.Pix, viaFunc.Pix)
		}
	}
}
