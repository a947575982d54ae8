// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Surface is a visual offscreen raster.
//
// Drawing is anti-aliased and composited source-over. Surface implements
// image.Image over its backing raster, so a host can keep one handle that
// stays valid across Resize calls.
type Surface struct {
	raster
}

// New creates a transparent surface with the given logical size.
// Negative dimensions are clamped to zero.
func New(width, height int, opts ...Option) *Surface {
	return &Surface{raster: newRaster(width, height, opts)}
}

// Resize sets the logical size and reallocates the backing raster at
// width*ratio by height*ratio pixels. The previous content is discarded.
func (s *Surface) Resize(width, height int) {
	s.resize(width, height)
}

// Clear makes every pixel fully transparent. The size is unchanged.
func (s *Surface) Clear() {
	s.clear()
}

// Fill fills p with c.
func (s *Surface) Fill(p *Path, c color.Color) {
	if s.empty() || p.IsEmpty() || c == nil {
		return
	}
	z := s.rasterizer(draw.Over)
	p.rasterize(z, float32(s.ratio))
	z.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{})
}

// FillRect fills the logical rectangle (x, y, w, h) with c.
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	p := NewPath()
	p.Rectangle(x, y, w, h)
	s.Fill(p, c)
}

// Stroke outlines p using style.
func (s *Surface) Stroke(p *Path, style StrokeStyle) {
	if style.Color == nil {
		return
	}
	s.Fill(strokeOutline(p, style.Width), style.Color)
}

// DrawSurface composites src source-over with its origin at the logical
// point (x, y). src is scaled when its pixel ratio differs from s.
func (s *Surface) DrawSurface(src *Surface, x, y float64) {
	s.DrawSurfaceAt(src, s.backingPoint(x, y))
}

// DrawSurfaceAt is DrawSurface with the origin given as a backing pixel of s.
func (s *Surface) DrawSurfaceAt(src *Surface, dp image.Point) {
	if s.empty() || src == nil || src.empty() {
		return
	}
	if src.ratio == s.ratio {
		xdraw.Copy(s.img, dp, src.img, src.img.Rect, xdraw.Over, nil)
		return
	}
	dr := image.Rect(0, 0, s.ratio.Scale(src.width), s.ratio.Scale(src.height)).Add(dp)
	xdraw.ApproxBiLinear.Scale(s.img, dr, src.img, src.img.Rect, xdraw.Over, nil)
}

// DrawImage draws img scaled into the logical rectangle (x, y, w, h).
func (s *Surface) DrawImage(img image.Image, x, y, w, h float64) {
	if s.empty() || img == nil || w <= 0 || h <= 0 {
		return
	}
	dr := image.Rectangle{Min: s.backingPoint(x, y), Max: s.backingPoint(x+w, y+h)}
	if dr.Empty() {
		return
	}
	xdraw.CatmullRom.Scale(s.img, dr, img, img.Bounds(), xdraw.Over, nil)
}

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image. The bounds are in backing pixels.
func (s *Surface) Bounds() image.Rectangle {
	return s.img.Rect
}

// At implements image.Image. Coordinates are in backing pixels.
func (s *Surface) At(x, y int) color.Color {
	return s.img.At(x, y)
}

var _ image.Image = (*Surface)(nil)
