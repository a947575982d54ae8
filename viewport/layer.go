// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"slices"
	"sync/atomic"
	"weak"

	"github.com/gogpu/garden/internal/logging"
	"github.com/gogpu/garden/surface"
)

// layerIDs hands out layer identifiers. Identifiers are never reused.
var layerIDs atomic.Int64

// Layer is an orderable compositing unit with a visual Surface and an
// identity HitSurface of identical size.
//
// A new layer is detached. Viewport.Add attaches it; Destroy detaches it.
// The layer refers to its viewport through a weak pointer, so it never
// keeps a viewport alive.
type Layer struct {
	id      int
	name    string
	x, y    float64
	width   int
	height  int
	visible bool

	surface *surface.Surface
	hit     *surface.HitSurface

	owner weak.Pointer[Viewport]
}

// NewLayer creates a detached, visible layer.
func NewLayer(opts ...LayerOption) *Layer {
	o := defaultLayerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	l := &Layer{
		id:      int(layerIDs.Add(1) - 1),
		name:    o.name,
		x:       o.x,
		y:       o.y,
		visible: !o.hidden,
		surface: surface.New(0, 0, surface.WithPixelRatio(o.ratio)),
		hit:     surface.NewHit(0, 0, surface.WithPixelRatio(o.ratio)),
	}
	if o.width > 0 || o.height > 0 {
		l.Resize(o.width, o.height)
	}
	return l
}

// ID returns the layer identifier, unique within the process.
func (l *Layer) ID() int { return l.id }

// Name returns the layer name.
func (l *Layer) Name() string { return l.name }

// Surface returns the visual raster.
func (l *Layer) Surface() *surface.Surface { return l.surface }

// Hit returns the identity raster.
func (l *Layer) Hit() *surface.HitSurface { return l.hit }

// Width returns the logical width.
func (l *Layer) Width() int { return l.width }

// Height returns the logical height.
func (l *Layer) Height() int { return l.height }

// Visible reports whether Render draws the layer.
func (l *Layer) Visible() bool { return l.visible }

// SetVisible shows or hides the layer. Hidden layers are skipped by Render
// but still take part in PickAt.
func (l *Layer) SetVisible(visible bool) { l.visible = visible }

// Position returns the stored position.
func (l *Layer) Position() (x, y float64) { return l.x, l.y }

// SetPosition stores the layer position. It only affects Render and PickAt
// when the viewport was created WithLayerOffsets.
func (l *Layer) SetPosition(x, y float64) {
	l.x, l.y = x, y
}

// Resize resizes both rasters in lockstep. Their content is discarded.
func (l *Layer) Resize(width, height int) {
	l.surface.Resize(width, height)
	l.hit.Resize(width, height)
	l.width, l.height = l.surface.Width(), l.surface.Height()
}

// Viewport returns the viewport the layer belongs to, or nil when detached.
func (l *Layer) Viewport() *Viewport {
	return l.owner.Value()
}

// Index returns the position of the layer in its viewport's sequence.
// ok is false when the layer is detached.
func (l *Layer) Index() (index int, ok bool) {
	vp := l.owner.Value()
	if vp == nil {
		return -1, false
	}
	i := vp.indexOf(l)
	return i, i >= 0
}

// attachment returns the owning viewport and the layer's index in it.
func (l *Layer) attachment() (*Viewport, int, error) {
	vp := l.owner.Value()
	if vp == nil {
		return nil, -1, ErrDetached
	}
	i := vp.indexOf(l)
	if i < 0 {
		return nil, -1, ErrDetached
	}
	return vp, i, nil
}

// MoveUp swaps the layer with its upper neighbor.
// It is a no-op when the layer is already top-most.
func (l *Layer) MoveUp() error {
	vp, i, err := l.attachment()
	if err != nil {
		return err
	}
	if i < len(vp.layers)-1 {
		vp.layers[i], vp.layers[i+1] = vp.layers[i+1], vp.layers[i]
	}
	return nil
}

// MoveDown swaps the layer with its lower neighbor.
// It is a no-op when the layer is already bottom-most.
func (l *Layer) MoveDown() error {
	vp, i, err := l.attachment()
	if err != nil {
		return err
	}
	if i > 0 {
		vp.layers[i], vp.layers[i-1] = vp.layers[i-1], vp.layers[i]
	}
	return nil
}

// MoveToTop moves the layer to the end of the sequence.
func (l *Layer) MoveToTop() error {
	vp, i, err := l.attachment()
	if err != nil {
		return err
	}
	copy(vp.layers[i:], vp.layers[i+1:])
	vp.layers[len(vp.layers)-1] = l
	return nil
}

// MoveToBottom moves the layer to the start of the sequence.
func (l *Layer) MoveToBottom() error {
	vp, i, err := l.attachment()
	if err != nil {
		return err
	}
	copy(vp.layers[1:i+1], vp.layers[:i])
	vp.layers[0] = l
	return nil
}

// Destroy removes the layer from its viewport and clears the back-reference.
// The layer may be added to a viewport again afterwards.
func (l *Layer) Destroy() error {
	vp, i, err := l.attachment()
	if err != nil {
		return err
	}
	vp.layers = slices.Delete(vp.layers, i, i+1)
	l.owner = weak.Pointer[Viewport]{}
	logging.Logger().Debug("viewport: layer detached", "layer", l.id, "name", l.name)
	return nil
}
