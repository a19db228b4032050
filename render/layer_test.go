package render

import (
	"testing"

	"github.com/lixenwraith/termview/geom"
	"github.com/lixenwraith/termview/terminal"
)

func cellRune(l *Layer, x, y int) rune {
	return l.Cell(x, y).Rune
}

func TestLayerResizeReusesCapacity(t *testing.T) {
	l := NewLayer(10, 10)
	l.SetCell(5, 5, terminal.Cell{Rune: 'x'})

	// Shrinking must not reallocate and must clear content
	l.Resize(5, 5)
	if l.Width() != 5 || l.Height() != 5 {
		t.Errorf("Expected 5x5, got %dx%d", l.Width(), l.Height())
	}
	if got := cellRune(l, 2, 2); got != 0 {
		t.Errorf("Expected cleared cell after resize, got %q", got)
	}

	// Growing past capacity reallocates
	l.Resize(20, 20)
	if l.Width() != 20 || l.Height() != 20 {
		t.Errorf("Expected 20x20, got %dx%d", l.Width(), l.Height())
	}
	if got := cellRune(l, 19, 19); got != 0 {
		t.Errorf("Expected zero cell in grown layer, got %q", got)
	}
}

func TestLayerBlit(t *testing.T) {
	src := NewLayer(4, 2)
	src.Fill(src.Bounds(), 'a', terminal.Attribute{})

	dst := NewLayer(10, 5)
	dst.Blit(src, src.Bounds(), 3, 2)

	if got := cellRune(dst, 3, 2); got != 'a' {
		t.Errorf("Expected blitted 'a' at origin, got %q", got)
	}
	if got := cellRune(dst, 6, 3); got != 'a' {
		t.Errorf("Expected blitted 'a' at far corner, got %q", got)
	}
	if got := cellRune(dst, 2, 2); got != 0 {
		t.Errorf("Expected untouched cell left of blit, got %q", got)
	}
	if got := cellRune(dst, 7, 2); got != 0 {
		t.Errorf("Expected untouched cell right of blit, got %q", got)
	}
}

func TestLayerBlitClipping(t *testing.T) {
	src := NewLayer(4, 4)
	src.Fill(src.Bounds(), 'b', terminal.Attribute{})

	dst := NewLayer(5, 5)

	// Negative destination clips the source top-left
	dst.Blit(src, src.Bounds(), -2, -2)
	if got := cellRune(dst, 0, 0); got != 'b' {
		t.Errorf("Expected clipped blit to land at 0,0, got %q", got)
	}
	if got := cellRune(dst, 1, 1); got != 'b' {
		t.Errorf("Expected clipped blit at 1,1, got %q", got)
	}
	if got := cellRune(dst, 2, 2); got != 0 {
		t.Errorf("Expected no content past clipped blit, got %q", got)
	}

	// Overhanging destination clips the source bottom-right
	dst2 := NewLayer(5, 5)
	dst2.Blit(src, src.Bounds(), 3, 3)
	if got := cellRune(dst2, 4, 4); got != 'b' {
		t.Errorf("Expected corner blit, got %q", got)
	}
	if got := cellRune(dst2, 2, 2); got != 0 {
		t.Errorf("Expected untouched cell, got %q", got)
	}
}

func TestLayerBlitSubRect(t *testing.T) {
	src := NewLayer(6, 1)
	for x := 0; x < 6; x++ {
		src.SetCell(x, 0, terminal.Cell{Rune: rune('0' + x)})
	}

	dst := NewLayer(6, 1)
	dst.Blit(src, geom.NewRect(2, 0, 3, 1), 0, 0)

	for x, want := range []rune{'2', '3', '4', 0, 0, 0} {
		if got := cellRune(dst, x, 0); got != want {
			t.Errorf("Cell %d = %q, want %q", x, got, want)
		}
	}
}

func TestPainterClip(t *testing.T) {
	l := NewLayer(10, 3)
	p := NewPainter(l)
	p.SetClip(geom.NewRect(2, 0, 4, 3))

	// Text starting before the clip keeps alignment: cursor advances even
	// where cells are not written
	p.DrawStringAt(0, 0, "abcdefgh")

	want := []rune{0, 0, 'c', 'd', 'e', 'f', 0, 0, 0, 0}
	for x, w := range want {
		if got := cellRune(l, x, 0); got != w {
			t.Errorf("Cell %d = %q, want %q", x, got, w)
		}
	}
}

func TestPainterClipClampedToLayer(t *testing.T) {
	l := NewLayer(4, 4)
	p := NewPainter(l)
	p.SetClip(geom.NewRect(-5, -5, 100, 100))
	if got := p.Clip(); got != l.Bounds() {
		t.Errorf("Expected clip clamped to layer bounds, got %v", got)
	}
}

func TestPainterWideRune(t *testing.T) {
	l := NewLayer(6, 1)
	p := NewPainter(l)
	p.DrawStringAt(0, 0, "世a")

	if got := cellRune(l, 0, 0); got != '世' {
		t.Errorf("Expected wide rune at 0, got %q", got)
	}
	if got := cellRune(l, 1, 0); got != 0 {
		t.Errorf("Expected continuation cell at 1, got %q", got)
	}
	if got := cellRune(l, 2, 0); got != 'a' {
		t.Errorf("Expected 'a' after wide rune, got %q", got)
	}
}

func TestPainterCombiningSequence(t *testing.T) {
	l := NewLayer(4, 1)
	p := NewPainter(l)
	// "e" followed by a combining acute is one grapheme cluster, one cell
	p.DrawStringAt(0, 0, "éx")

	if got := cellRune(l, 1, 0); got != 'x' {
		t.Errorf("Expected 'x' in second cell, got %q", got)
	}
}

func TestPainterFrame(t *testing.T) {
	l := NewLayer(5, 4)
	p := NewPainter(l)
	p.DrawFrame(l.Bounds(), false)

	if got := cellRune(l, 0, 0); got != '┌' {
		t.Errorf("Expected corner, got %q", got)
	}
	if got := cellRune(l, 4, 3); got != '┘' {
		t.Errorf("Expected corner, got %q", got)
	}
	if got := cellRune(l, 2, 0); got != '─' {
		t.Errorf("Expected horizontal edge, got %q", got)
	}
	if got := cellRune(l, 0, 2); got != '│' {
		t.Errorf("Expected vertical edge, got %q", got)
	}
	if got := cellRune(l, 2, 2); got != 0 {
		t.Errorf("Expected untouched interior, got %q", got)
	}
}

func TestPainterAttribute(t *testing.T) {
	l := NewLayer(3, 1)
	p := NewPainter(l)
	attr := terminal.MakeAttribute(terminal.RGBWhite, terminal.RGBBlack, terminal.AttrBold)
	p.SetAttribute(attr)
	p.DrawStringAt(0, 0, "ok")

	if got := l.Cell(0, 0).Attr; got != attr {
		t.Errorf("Expected attribute carried to cell, got %+v", got)
	}
}
