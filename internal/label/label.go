// Package label draws short captions under garden entities.
//
// Captions are measured with HarfBuzz shaping from go-text/typesetting so
// kerning is taken into account when centering, and rasterized with
// golang.org/x/image/font at the target surface's pixel ratio.
package label

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"

	"github.com/gogpu/garden/surface"
)

// ErrInvalidSize is returned for a non-positive font size.
var ErrInvalidSize = errors.New("label: font size must be positive")

// Labeler measures and draws captions in Go Regular at a fixed logical size.
// A Labeler is not safe for concurrent use.
type Labeler struct {
	size    float64
	shaper  shaping.HarfbuzzShaper
	shaped  *gotext.Face
	outline *opentype.Font
	faces   map[surface.PixelRatio]font.Face
}

// New creates a Labeler for the given logical font size.
func New(size float64) (*Labeler, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSize, size)
	}
	shaped, err := gotext.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("label: parse font for shaping: %w", err)
	}
	outline, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("label: parse font for drawing: %w", err)
	}
	return &Labeler{
		size:    size,
		shaped:  shaped,
		outline: outline,
		faces:   make(map[surface.PixelRatio]font.Face),
	}, nil
}

// Size returns the logical font size.
func (l *Labeler) Size() float64 { return l.size }

// Measure returns the advance of text in logical pixels.
func (l *Labeler) Measure(text string) float64 {
	if text == "" {
		return 0
	}
	runes := []rune(text)
	out := l.shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      l.shaped,
		Size:      fixed.Int26_6(l.size * 64),
		Script:    language.LookupScript(runes[0]),
		Language:  language.NewLanguage("en"),
	})
	return float64(out.Advance) / 64
}

// Draw renders text centered on cx with its top edge at top, in logical
// coordinates of dst.
func (l *Labeler) Draw(dst *surface.Surface, text string, cx, top float64, c color.Color) error {
	if text == "" || dst.Image().Rect.Empty() {
		return nil
	}
	ratio := dst.PixelRatio()
	face, err := l.face(ratio)
	if err != nil {
		return err
	}

	x := ratio.ScaleF(cx - l.Measure(text)/2)
	y := ratio.ScaleF(top)
	d := font.Drawer{
		Dst:  dst.Image(),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y*64) + face.Metrics().Ascent},
	}
	d.DrawString(text)
	return nil
}

// face returns the drawing face for ratio, creating it on first use. Faces are
// unhinted so their advances scale linearly with the ratio and agree with
// Measure.
func (l *Labeler) face(ratio surface.PixelRatio) (font.Face, error) {
	if f, ok := l.faces[ratio]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(l.outline, &opentype.FaceOptions{
		Size:    ratio.ScaleF(l.size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("label: create face: %w", err)
	}
	l.faces[ratio] = f
	return f, nil
}

// Title converts a caption to English title case, so "sweet basil"
// becomes "Sweet Basil".
func Title(text string) string {
	return cases.Title(xlanguage.English).String(text)
}
