package main

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"

	"github.com/gogpu/blit"
)

// preview shows the screen in the terminal using upper half blocks, two
// pixel rows per cell. It redraws on resize and returns on Esc, q or Ctrl-C.
func preview(screen *blit.Image) error {
	term, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := term.Init(); err != nil {
		return err
	}
	defer term.Fini()

	snap := screen.Snapshot()
	for {
		paint(term, snap)
		term.Show()

		switch ev := term.PollEvent().(type) {
		case *tcell.EventResize:
			term.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			return nil
		}
	}
}

func paint(term tcell.Screen, img image.Image) {
	cols, rows := term.Size()
	w, h := fit(img.Bounds().Size(), image.Pt(cols, rows*2))
	if w == 0 || h == 0 {
		return
	}
	small := resize.Resize(uint(w), uint(h), img, resize.Bilinear)

	term.Clear()
	for y := 0; y+1 < h; y += 2 {
		for x := 0; x < w; x++ {
			style := tcell.StyleDefault.
				Foreground(termColor(small.At(x, y))).
				Background(termColor(small.At(x, y+1)))
			term.SetContent(x, y/2, '▀', nil, style)
		}
	}
}

// fit scales size down to lie within box, keeping the aspect ratio.
func fit(size, box image.Point) (int, int) {
	if size.X <= 0 || size.Y <= 0 {
		return 0, 0
	}
	w, h := box.X, size.Y*box.X/size.X
	if h > box.Y {
		w, h = size.X*box.Y/size.Y, box.Y
	}
	return w, h
}

func termColor(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}
