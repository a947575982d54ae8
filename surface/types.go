// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"image/color"
)

// StrokeStyle defines how to stroke a path on a visual Surface.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in logical pixels.
	Width float64
}

// DefaultStrokeStyle returns a 1px black StrokeStyle.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: color.Black,
		Width: 1.0,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Option configures a Surface or HitSurface at creation.
type Option func(*options)

type options struct {
	ratio PixelRatio
}

func defaultOptions() options {
	return options{ratio: DefaultPixelRatio()}
}

// WithPixelRatio sets the backing pixel ratio. Non-positive ratios fall back to 1.
func WithPixelRatio(r PixelRatio) Option {
	return func(o *options) {
		o.ratio = r.Normalize()
	}
}
