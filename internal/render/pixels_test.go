package render

import (
	"image/color"
	"testing"

	"termsweep/pkg/board"
)

type keepRNG struct{}

func (keepRNG) Intn(n int) int { return n - 1 }

func pixel(buf []byte, i int) color.RGBA {
	return color.RGBA{R: buf[i*4], G: buf[i*4+1], B: buf[i*4+2], A: buf[i*4+3]}
}

func TestFillPanels(t *testing.T) {
	b, err := board.New(4, 4, 2, keepRNG{})
	if err != nil {
		t.Fatal(err)
	}
	b.ToggleFlag(0, 1)
	b.Open(3, 3)

	p := DefaultPalette()
	buf := make([]byte, 4*16)
	FillPanels(buf, b, p, false)

	if got := pixel(buf, 0); got != p.Hidden {
		t.Fatalf("hidden mine drawn as %v", got)
	}
	if got := pixel(buf, 1); got != p.Flagged {
		t.Fatalf("flagged mine drawn as %v", got)
	}
	if got := pixel(buf, 15); got != p.Open {
		t.Fatalf("open cell drawn as %v", got)
	}

	FillPanels(buf, b, p, true)
	if got := pixel(buf, 0); got != p.Mine {
		t.Fatalf("showMines should expose the mine, got %v", got)
	}
	if got := pixel(buf, 1); got != p.Flagged {
		t.Fatalf("showMines should keep the flag, got %v", got)
	}
}

func TestCountColor(t *testing.T) {
	if CountColor(0).A != 0 {
		t.Fatal("zero count must be transparent")
	}
	for n := 1; n <= 8; n++ {
		if CountColor(n).A != 255 {
			t.Fatalf("count %d must be opaque", n)
		}
	}
	if CountColor(9) != CountColor(0) || CountColor(-1) != CountColor(0) {
		t.Fatal("out-of-range counts must fall back to transparent")
	}
}
