// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewport composites an ordered stack of layers and resolves
// pointer coordinates to the identifier of the top-most object beneath them.
//
// A Layer owns a visual surface.Surface and an identity surface.HitSurface
// of identical size. A Viewport owns the ordered layer sequence, one
// composite Surface mounted into a Host, and the current size.
//
// Index 0 of the sequence is the bottom-most layer and the last index is the
// top-most one. Render draws visible layers bottom to top; PickAt queries
// layers top to bottom and returns the first hit, so whatever occludes
// visually also wins picking. PickAt does not consult visibility.
//
// Content that should be pickable must be drawn twice: once into the layer's
// Surface for display, and once into its HitSurface as a silhouette painted
// with the object's identifier:
//
//	host := viewport.NewImageHost()
//	vp, _ := viewport.New(host, viewport.WithSize(200, 100))
//	l := viewport.NewLayer(viewport.WithName("shapes"))
//	_ = vp.Add(l)
//
//	l.Surface().FillRect(10, 10, 10, 10, color.RGBA{200, 0, 0, 255})
//	l.Hit().FillRect(10, 10, 10, 10, 7)
//	vp.Render()
//	id, ok := vp.PickAt(15, 15) // 7, true
//
// Everything in this package is synchronous and must be used from one
// goroutine. The host must not reorder layers while Render or PickAt runs.
package viewport
