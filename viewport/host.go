// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
)

// Host is the display element a Viewport renders into.
//
// The Viewport calls Clear once and then mounts exactly one child, its
// composite surface. The child is an image.Image whose bounds follow the
// viewport size across resizes, so a host can keep the handle it was given.
type Host interface {
	// Clear removes every child.
	Clear()

	// Mount appends child.
	Mount(child image.Image)
}

// ImageHost is an in-memory Host. It is what a window system binding or a
// headless renderer reads the composite from.
type ImageHost struct {
	children []image.Image
}

// NewImageHost creates an empty ImageHost.
func NewImageHost() *ImageHost {
	return &ImageHost{}
}

// Clear implements Host.
func (h *ImageHost) Clear() {
	h.children = nil
}

// Mount implements Host.
func (h *ImageHost) Mount(child image.Image) {
	h.children = append(h.children, child)
}

// Children returns the mounted children in mount order.
func (h *ImageHost) Children() []image.Image {
	return h.children
}

// Snapshot flattens the children, first mounted at the bottom, into a new
// image covering the union of their bounds.
func (h *ImageHost) Snapshot() (*image.RGBA, error) {
	if len(h.children) == 0 {
		return nil, ErrNoContent
	}
	var bounds image.Rectangle
	for _, c := range h.children {
		bounds = bounds.Union(c.Bounds())
	}
	out := image.NewRGBA(bounds)
	for _, c := range h.children {
		draw.Draw(out, c.Bounds(), c, c.Bounds().Min, draw.Over)
	}
	return out, nil
}

// EncodePNG writes Snapshot as PNG to w.
func (h *ImageHost) EncodePNG(w io.Writer) error {
	img, err := h.Snapshot()
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// SavePNG writes Snapshot as a PNG file.
func (h *ImageHost) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := h.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
