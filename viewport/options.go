// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import "github.com/gogpu/garden/surface"

// Option configures a Viewport during creation.
//
// Example:
//
//	vp, err := viewport.New(host,
//	    viewport.WithSize(800, 600),
//	    viewport.WithLayers(background, plants),
//	)
type Option func(*options)

type options struct {
	width   int
	height  int
	layers  []*Layer
	ratio   surface.PixelRatio
	offsets bool
}

func defaultOptions() options {
	return options{ratio: surface.DefaultPixelRatio()}
}

// WithSize sets the initial logical size. The default is 0x0.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width, o.height = width, height
	}
}

// WithLayers adds the given layers, bottom first, as if by Add.
func WithLayers(layers ...*Layer) Option {
	return func(o *options) {
		o.layers = append(o.layers, layers...)
	}
}

// WithPixelRatio sets the pixel ratio of the composite surface.
func WithPixelRatio(r surface.PixelRatio) Option {
	return func(o *options) {
		o.ratio = r
	}
}

// WithLayerOffsets makes Render and PickAt honor each layer's position.
// By default every layer is composited and picked at the origin and the
// position is advisory data only. Positions are snapped to whole backing
// pixels of the composite.
func WithLayerOffsets() Option {
	return func(o *options) {
		o.offsets = true
	}
}

// LayerOption configures a Layer during creation.
type LayerOption func(*layerOptions)

type layerOptions struct {
	name   string
	x, y   float64
	width  int
	height int
	hidden bool
	ratio  surface.PixelRatio
}

func defaultLayerOptions() layerOptions {
	return layerOptions{ratio: surface.DefaultPixelRatio()}
}

// WithName names the layer. Names are labels only; they need not be unique.
func WithName(name string) LayerOption {
	return func(o *layerOptions) {
		o.name = name
	}
}

// WithPosition sets the initial position.
func WithPosition(x, y float64) LayerOption {
	return func(o *layerOptions) {
		o.x, o.y = x, y
	}
}

// WithLayerSize gives the layer an explicit size. A zero dimension is
// filled in from the viewport when the layer is added.
func WithLayerSize(width, height int) LayerOption {
	return func(o *layerOptions) {
		o.width, o.height = width, height
	}
}

// Hidden creates the layer invisible.
func Hidden() LayerOption {
	return func(o *layerOptions) {
		o.hidden = true
	}
}

// WithLayerPixelRatio sets the pixel ratio of the layer's surfaces.
func WithLayerPixelRatio(r surface.PixelRatio) LayerOption {
	return func(o *layerOptions) {
		o.ratio = r
	}
}
