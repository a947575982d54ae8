// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/garden/internal/logging"
)

// raster is the sizing model shared by Surface and HitSurface: a logical size
// and a backing *image.RGBA scaled by the pixel ratio.
type raster struct {
	width  int
	height int
	ratio  PixelRatio
	img    *image.RGBA

	// z is reused across fills and reset to the backing size on each use.
	z *vector.Rasterizer
}

func newRaster(width, height int, opts []Option) raster {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	r := raster{ratio: o.ratio.Normalize()}
	r.resize(width, height)
	return r
}

// resize sets the logical size and reallocates the backing raster.
// The previous content is discarded.
func (r *raster) resize(width, height int) {
	if width < 0 || height < 0 {
		logging.Logger().Warn("surface: negative size clamped to zero", "width", width, "height", height)
		width, height = max(width, 0), max(height, 0)
	}
	r.width, r.height = width, height
	r.img = image.NewRGBA(image.Rect(0, 0, r.ratio.Scale(width), r.ratio.Scale(height)))
	logging.Logger().Debug("surface: raster allocated",
		"width", width, "height", height,
		"backingWidth", r.img.Rect.Dx(), "backingHeight", r.img.Rect.Dy())
}

// clear resets every backing pixel to transparent.
func (r *raster) clear() {
	clear(r.img.Pix)
}

func (r *raster) empty() bool {
	return r.img.Rect.Empty()
}

// rasterizer returns a vector.Rasterizer sized to the backing raster.
func (r *raster) rasterizer(op draw.Op) *vector.Rasterizer {
	w, h := r.img.Rect.Dx(), r.img.Rect.Dy()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	r.z.DrawOp = op
	return r.z
}

// coverage rasterizes p into an alpha mask the size of the backing raster.
func (r *raster) coverage(p *Path) *image.Alpha {
	z := r.rasterizer(draw.Src)
	p.rasterize(z, float32(r.ratio))
	mask := image.NewAlpha(r.img.Rect)
	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
	return mask
}

// BackingPixel maps the logical point (x, y) to the backing pixel a pick at
// that point reads. The point is rounded half up to whole logical pixels and
// ok is false when x < 0 || y < 0 || x > width || y > height. The returned
// pixel may still lie outside the raster when x == width or y == height.
func (r *raster) BackingPixel(x, y float64) (p image.Point, ok bool) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return image.Point{}, false
	}
	rx, ry := roundHalfUp(x), roundHalfUp(y)
	if rx < 0 || ry < 0 || rx > float64(r.width) || ry > float64(r.height) {
		return image.Point{}, false
	}
	return r.backingPoint(rx, ry), true
}

// backingPoint maps a logical point to its backing pixel.
func (r *raster) backingPoint(x, y float64) image.Point {
	return image.Pt(int(r.ratio.ScaleF(x)), int(r.ratio.ScaleF(y)))
}

// Width returns the logical width.
func (r *raster) Width() int { return r.width }

// Height returns the logical height.
func (r *raster) Height() int { return r.height }

// PixelRatio returns the backing pixel ratio.
func (r *raster) PixelRatio() PixelRatio { return r.ratio }

// Image returns the backing raster. This is a direct reference that is
// replaced by the next Resize.
func (r *raster) Image() *image.RGBA { return r.img }

// Snapshot returns a copy of the backing raster.
func (r *raster) Snapshot() *image.RGBA {
	out := image.NewRGBA(r.img.Rect)
	copy(out.Pix, r.img.Pix)
	return out
}
