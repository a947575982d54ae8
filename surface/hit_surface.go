// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"

	"github.com/gogpu/garden/hitcolor"
)

// coverageThreshold is the minimum coverage (of 0xff) for a backing pixel to
// take an identity color. Hit drawing is aliased: a pixel is either fully
// painted or left untouched, so identity colors never blend.
const coverageThreshold = 0x80

// HitSurface is an identity raster used for picking.
//
// Every painted pixel holds the opaque color hitcolor.Encode(id) of some
// identifier; the drawing methods take identifiers rather than colors so no
// decorative color can reach the raster. The backing buffer is never
// discarded except by Clear and Resize, so Query can read it at any time.
type HitSurface struct {
	raster
}

// NewHit creates an empty identity raster with the given logical size.
func NewHit(width, height int, opts ...Option) *HitSurface {
	return &HitSurface{raster: newRaster(width, height, opts)}
}

// Resize sets the logical size and reallocates the backing raster.
// The previous content is discarded.
func (s *HitSurface) Resize(width, height int) {
	s.resize(width, height)
}

// Clear makes every pixel fully transparent, so Query reports no hit anywhere.
func (s *HitSurface) Clear() {
	s.clear()
}

// Fill paints the silhouette of p with the identity color of id.
// The caller must keep id within [0, hitcolor.MaxID].
func (s *HitSurface) Fill(p *Path, id int) {
	if s.empty() || p.IsEmpty() {
		return
	}
	s.paint(s.coverage(p), hitcolor.Encode(id))
}

// FillRect paints the logical rectangle (x, y, w, h) with the identity color of id.
func (s *HitSurface) FillRect(x, y, w, h float64, id int) {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	s.Fill(p, id)
}

// Stroke paints a stroke of the given logical width along p.
func (s *HitSurface) Stroke(p *Path, width float64, id int) {
	s.Fill(strokeOutline(p, width), id)
}

// paint writes c into every backing pixel whose coverage reaches the threshold.
func (s *HitSurface) paint(mask *image.Alpha, c hitcolor.RGB) {
	pix := s.img.Pix
	for i, a := range mask.Pix {
		if a < coverageThreshold {
			continue
		}
		o := i * 4
		pix[o+0] = c.R
		pix[o+1] = c.G
		pix[o+2] = c.B
		pix[o+3] = 0xff
	}
}

// Query returns the identifier painted at the logical point (x, y).
//
// The point is rounded half up to whole logical pixels. The bounds test is
// x < 0 || y < 0 || x > width || y > height, so the point (width, height)
// itself passes the test; it maps outside the backing raster and reads as
// transparent. A pixel whose alpha is not fully opaque is never a hit.
func (s *HitSurface) Query(x, y float64) (int, bool) {
	p, ok := s.BackingPixel(x, y)
	if !ok {
		return 0, false
	}
	return s.QueryPixel(p)
}

// QueryPixel returns the identifier painted at backing pixel p.
func (s *HitSurface) QueryPixel(p image.Point) (int, bool) {
	if !p.In(s.img.Rect) {
		return 0, false
	}
	c := s.img.RGBAAt(p.X, p.Y)
	if c.A < 0xff {
		return 0, false
	}
	return hitcolor.Decode(hitcolor.FromRGBA(c)), true
}

// roundHalfUp rounds toward +Inf at .5, matching canvas-style pixel rounding.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
