// Command blitdemo composes a test card with every pixel format and writes
// it as PNG or BMP. With -preview it also shows the result in the terminal.
package main

import (
	"flag"
	"image"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/blit"
	"github.com/gogpu/blit/text"
)

const spriteSize = 56

func main() {
	var (
		width   = flag.Int("width", 640, "image width")
		height  = flag.Int("height", 360, "image height")
		output  = flag.String("output", "demo.png", "output file (.png or .bmp)")
		shaper  = flag.String("shaper", "builtin", "text shaper: builtin or gotext")
		verbose = flag.Bool("v", false, "log dispatch and text details")
		show    = flag.Bool("preview", false, "show the result in the terminal")
		format  = blit.FormatRGB565
	)
	flag.TextVar(&format, "format", blit.FormatRGB565, "screen pixel format, e.g. RGB-5-6-5 or XRGB-8-8-8-8")
	flag.Parse()

	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if *shaper == "gotext" {
		text.SetShaper(text.NewGoTextShaper())
	}

	screen, err := blit.NewImage(*width, *height, format)
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	dst := screen.Lock(blit.AccessReadWrite)

	drawCheckerboard(dst, 16)
	if err := drawSprites(dst); err != nil {
		log.Fatalf("Failed to draw sprites: %v", err)
	}
	if err := drawOverlay(dst); err != nil {
		log.Fatalf("Failed to draw overlay: %v", err)
	}

	if err := screen.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d %v)\n", *output, *width, *height, format)

	if *show {
		if err := preview(screen); err != nil {
			log.Fatalf("Failed to preview: %v", err)
		}
	}
}

func drawCheckerboard(dst blit.View, cell int) {
	light, dark := blit.RGB(0.85, 0.85, 0.9), blit.RGB(0.55, 0.55, 0.65)
	for y := 0; y < dst.Height; y += cell {
		for x := 0; x < dst.Width; x += cell {
			c := light
			if (x/cell+y/cell)%2 == 1 {
				c = dark
			}
			_ = blit.Fill(dst, image.Rect(x, y, x+cell, y+cell), c)
		}
	}
}

// newSprite renders a soft-edged disc in format f, colored by hue.
func newSprite(f blit.Format, hue float64) (*blit.Image, error) {
	m, err := blit.NewImage(spriteSize, spriteSize, f)
	if err != nil {
		return nil, err
	}
	v := m.Lock(blit.AccessWrite)
	c := hsv(hue)
	r := float64(spriteSize) / 2
	for y := 0; y < spriteSize; y++ {
		for x := 0; x < spriteSize; x++ {
			d := math.Hypot(float64(x)+0.5-r, float64(y)+0.5-r) / r
			c.A = float32(math.Max(0, math.Min(1, (1-d)*3)))
			v.SetPixel(x, y, blit.PixelFromColor(f, c))
		}
	}
	return m, nil
}

func drawSprites(dst blit.View) error {
	face := text.DefaultFace(11)
	formats := blit.Formats()
	for i, f := range formats {
		sprite, err := newSprite(f, float64(i)/float64(len(formats)))
		if err != nil {
			return err
		}
		x := 12 + (i%5)*(spriteSize+64)
		y := 40 + (i/5)*(spriteSize+60)
		src := sprite.Lock(blit.AccessRead)

		if err := blit.Draw(dst, src, image.Pt(x, y), blit.WithBlend()); err != nil {
			return err
		}
		// half-opacity copy, offset, to show blend+opacity
		if err := blit.Draw(dst, src, image.Pt(x+24, y+12), blit.WithBlend(), blit.WithOpacity(0x80)); err != nil {
			return err
		}
		if err := text.Draw(dst, f.String(), face, x, y+spriteSize+24, blit.RGB(0.05, 0.05, 0.1)); err != nil {
			return err
		}
	}
	return nil
}

func drawOverlay(dst blit.View) error {
	bar, err := blit.NewImage(dst.Width, 28, blit.FormatARGB8888)
	if err != nil {
		return err
	}
	bar.Fill(blit.RGBA(0, 0, 0, 1))

	face := text.DefaultFace(18)
	if err := text.Draw(bar.Lock(blit.AccessReadWrite), "blit "+blit.Version+" / "+dst.Format.String(), face, 8, 20, blit.RGB(1, 1, 0.6)); err != nil {
		return err
	}
	return blit.BlendOpacity(dst, bar.Lock(blit.AccessRead), image.Pt(0, 0), image.Rectangle{}, 0xC0)
}

// hsv returns a saturated color for hue in [0,1).
func hsv(h float64) blit.Color {
	i := math.Floor(h * 6)
	f := h*6 - i
	q, t := float32(1-f), float32(f)
	switch int(i) % 6 {
	case 0:
		return blit.RGB(1, t, 0)
	case 1:
		return blit.RGB(q, 1, 0)
	case 2:
		return blit.RGB(0, 1, t)
	case 3:
		return blit.RGB(0, q, 1)
	case 4:
		return blit.RGB(t, 0, 1)
	default:
		return blit.RGB(1, 0, q)
	}
}
