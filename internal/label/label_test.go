package label

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/font"

	"github.com/gogpu/garden/surface"
)

func newLabeler(t *testing.T) *Labeler {
	t.Helper()
	l, err := New(12)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return l
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, size := range []float64{0, -4} {
		if _, err := New(size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%v) error = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestMeasure(t *testing.T) {
	l := newLabeler(t)
	if got := l.Measure(""); got != 0 {
		t.Errorf("Measure(\"\") = %v, want 0", got)
	}
	short, long := l.Measure("Kale"), l.Measure("Kale and Chard")
	if short <= 0 {
		t.Fatalf("Measure(Kale) = %v, want > 0", short)
	}
	if long <= short {
		t.Errorf("Measure(long) = %v, not wider than %v", long, short)
	}
	if short > 12*4 {
		t.Errorf("Measure(Kale) = %v, implausibly wide for 12px text", short)
	}
}

func TestDraw(t *testing.T) {
	l := newLabeler(t)
	s := surface.New(80, 30, surface.WithPixelRatio(2))
	if err := l.Draw(s, "Tomato", 40, 5, color.Black); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}

	inked := 0
	img := s.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			inked++
		}
	}
	if inked == 0 {
		t.Fatal("Draw() left the surface blank")
	}
	// Nothing lands in the far left or far right margins of a centered caption.
	for y := 0; y < img.Rect.Dy(); y++ {
		if img.RGBAAt(1, y).A != 0 || img.RGBAAt(img.Rect.Dx()-2, y).A != 0 {
			t.Fatalf("caption reached the surface edge at row %d", y)
		}
	}
}

func TestMeasureMatchesDrawingFace(t *testing.T) {
	l := newLabeler(t)
	const text = "Mint"
	logical := l.Measure(text)
	for _, r := range []surface.PixelRatio{1, 2, 2.5, 3} {
		face, err := l.face(r)
		if err != nil {
			t.Fatal(err)
		}
		drawn := float64(font.MeasureString(face, text)) / 64
		want := logical * float64(r)
		if math.Abs(drawn-want) > 0.5+0.01*want {
			t.Errorf("ratio %v: drawn advance %v, measured %v", r, drawn, want)
		}
	}
}

func TestDrawCenteredAcrossRatios(t *testing.T) {
	l := newLabeler(t)
	for _, r := range []surface.PixelRatio{1, 2, 3} {
		s := surface.New(60, 20, surface.WithPixelRatio(r))
		if err := l.Draw(s, "Mint", 30, 2, color.Black); err != nil {
			t.Fatal(err)
		}
		img := s.Image()
		minX, maxX := img.Rect.Dx(), -1
		for y := range img.Rect.Dy() {
			for x := range img.Rect.Dx() {
				if img.RGBAAt(x, y).A != 0 {
					minX, maxX = min(minX, x), max(maxX, x+1)
				}
			}
		}
		if maxX < 0 {
			t.Fatalf("ratio %v: nothing drawn", r)
		}
		center := float64(minX+maxX) / 2 / float64(r)
		if math.Abs(center-30) > 1 {
			t.Errorf("ratio %v: ink centered at %v, want near 30", r, center)
		}
	}
}

func TestDrawOnEmptySurface(t *testing.T) {
	l := newLabeler(t)
	if err := l.Draw(surface.New(0, 0), "Pea", 0, 0, color.Black); err != nil {
		t.Errorf("Draw() on an empty surface error = %v", err)
	}
}

func TestTitle(t *testing.T) {
	tests := map[string]string{
		"sweet basil": "Sweet Basil",
		"TOMATO":      "Tomato",
		"":            "",
	}
	for in, want := range tests {
		if got := Title(in); got != want {
			t.Errorf("Title(%q) = %q, want %q", in, got, want)
		}
	}
}
