// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"fmt"
	"image"
	"slices"
	"weak"

	"github.com/gogpu/garden/internal/logging"
	"github.com/gogpu/garden/surface"
)

// Viewport owns an ordered layer sequence, a host and the composite surface
// mounted into that host.
//
// The host is owned exclusively: New clears it and mounts the composite
// surface as its only child, and nothing else may write into it while the
// Viewport is in use.
type Viewport struct {
	host      Host
	layers    []*Layer
	composite *surface.Surface
	width     int
	height    int
	offsets   bool
}

// New creates a viewport over host.
//
// Example:
//
//	host := viewport.NewImageHost()
//	vp, err := viewport.New(host, viewport.WithSize(800, 600))
func New(host Host, opts ...Option) (*Viewport, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := checkInitial(o.layers); err != nil {
		return nil, err
	}

	v := &Viewport{
		host:      host,
		composite: surface.New(o.width, o.height, surface.WithPixelRatio(o.ratio)),
		offsets:   o.offsets,
	}
	v.width, v.height = v.composite.Width(), v.composite.Height()

	host.Clear()
	host.Mount(v.composite)

	for _, l := range o.layers {
		v.attach(l)
	}
	logging.Logger().Debug("viewport: created",
		"width", v.width, "height", v.height, "ratio", float64(v.composite.PixelRatio()), "layers", len(v.layers))
	return v, nil
}

// Add appends l as the new top-most layer.
//
// A layer dimension that is zero is taken from the viewport. Layers with a
// full explicit size keep it, and their content, until the next Resize.
func (v *Viewport) Add(l *Layer) error {
	if err := checkFree(l); err != nil {
		return err
	}
	v.attach(l)
	return nil
}

// checkFree reports why l cannot be added to a viewport.
func checkFree(l *Layer) error {
	if l == nil {
		return ErrNilLayer
	}
	if l.owner.Value() != nil {
		return fmt.Errorf("%w: layer %d", ErrAttached, l.id)
	}
	return nil
}

// checkInitial validates the layers passed to New before the host is touched,
// so a failed New leaves the host and every layer as they were.
func checkInitial(layers []*Layer) error {
	seen := make(map[*Layer]bool, len(layers))
	for i, l := range layers {
		err := checkFree(l)
		if err == nil && seen[l] {
			err = fmt.Errorf("%w: layer %d given twice", ErrAttached, l.id)
		}
		if err != nil {
			return fmt.Errorf("initial layer %d: %w", i, err)
		}
		seen[l] = true
	}
	return nil
}

func (v *Viewport) attach(l *Layer) {
	w, h := l.width, l.height
	if w == 0 {
		w = v.width
	}
	if h == 0 {
		h = v.height
	}
	if w != l.width || h != l.height {
		l.Resize(w, h)
	}

	v.layers = append(v.layers, l)
	l.owner = weak.Make(v)
	logging.Logger().Debug("viewport: layer added", "layer", l.id, "name", l.name, "index", len(v.layers)-1)
}

// Resize sets the viewport size and propagates it to the composite surface
// and to every layer, overriding any size a layer held before.
func (v *Viewport) Resize(width, height int) {
	v.composite.Resize(width, height)
	v.width, v.height = v.composite.Width(), v.composite.Height()
	for _, l := range v.layers {
		l.Resize(v.width, v.height)
	}
}

// PickAt returns the identifier painted at the logical point (x, y) on the
// top-most layer that has one. Layers are queried from the top of the
// sequence down; visibility is not consulted.
func (v *Viewport) PickAt(x, y float64) (int, bool) {
	_, id, ok := v.PickLayerAt(x, y)
	return id, ok
}

// PickLayerAt is PickAt that also returns the layer the identifier was read from.
//
// With layer offsets enabled the point is resolved to the composite pixel it
// falls on and each layer is read at the pixel Render copied there, so a pick
// always agrees with the rendered output for layers that share the viewport's
// pixel ratio.
func (v *Viewport) PickLayerAt(x, y float64) (*Layer, int, bool) {
	if !v.offsets {
		for i := len(v.layers) - 1; i >= 0; i-- {
			l := v.layers[i]
			if id, ok := l.hit.Query(x, y); ok {
				return l, id, true
			}
		}
		return nil, 0, false
	}

	p, ok := v.composite.BackingPixel(x, y)
	if !ok || !p.In(v.composite.Image().Rect) {
		return nil, 0, false
	}
	ratio := v.composite.PixelRatio()
	for i := len(v.layers) - 1; i >= 0; i-- {
		l := v.layers[i]
		dp := v.offset(l)
		var (
			id  int
			hit bool
		)
		if l.hit.PixelRatio() == ratio {
			id, hit = l.hit.QueryPixel(p.Sub(dp))
		} else {
			id, hit = l.hit.Query(x-float64(dp.X)/float64(ratio), y-float64(dp.Y)/float64(ratio))
		}
		if hit {
			return l, id, true
		}
	}
	return nil, 0, false
}

// offset returns the layer position snapped to a whole composite pixel.
// Render and PickLayerAt both place the layer there.
func (v *Viewport) offset(l *Layer) image.Point {
	r := v.composite.PixelRatio()
	return image.Pt(r.Snap(l.x), r.Snap(l.y))
}

// Render clears the composite surface and draws every visible layer onto it,
// bottom to top.
func (v *Viewport) Render() {
	v.composite.Clear()
	for _, l := range v.layers {
		if !l.visible {
			continue
		}
		var dp image.Point
		if v.offsets {
			dp = v.offset(l)
		}
		v.composite.DrawSurfaceAt(l.surface, dp)
	}
}

// Layers returns a copy of the layer sequence, bottom-most first.
func (v *Viewport) Layers() []*Layer {
	return slices.Clone(v.layers)
}

// Len returns the number of layers.
func (v *Viewport) Len() int { return len(v.layers) }

// Layer returns the attached layer with the given identifier.
func (v *Viewport) Layer(id int) (*Layer, bool) {
	for _, l := range v.layers {
		if l.id == id {
			return l, true
		}
	}
	return nil, false
}

// LayerByName returns the bottom-most attached layer with the given name.
func (v *Viewport) LayerByName(name string) (*Layer, bool) {
	for _, l := range v.layers {
		if l.name == name {
			return l, true
		}
	}
	return nil, false
}

// Width returns the logical width.
func (v *Viewport) Width() int { return v.width }

// Height returns the logical height.
func (v *Viewport) Height() int { return v.height }

// PixelRatio returns the pixel ratio of the composite surface.
func (v *Viewport) PixelRatio() surface.PixelRatio { return v.composite.PixelRatio() }

// Composite returns the composite surface mounted into the host.
func (v *Viewport) Composite() *surface.Surface { return v.composite }

// Host returns the host element.
func (v *Viewport) Host() Host { return v.host }

func (v *Viewport) indexOf(l *Layer) int {
	return slices.Index(v.layers, l)
}
