// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import "errors"

// Sentinel errors returned by Viewport and Layer operations.
var (
	// ErrNilHost is returned when a Viewport is created without a host.
	ErrNilHost = errors.New("viewport: nil host")

	// ErrNilLayer is returned when a nil layer is added.
	ErrNilLayer = errors.New("viewport: nil layer")

	// ErrDetached is returned by ordering operations on a layer that does
	// not belong to a viewport.
	ErrDetached = errors.New("viewport: layer is not attached")

	// ErrAttached is returned when adding a layer that already belongs to a viewport.
	ErrAttached = errors.New("viewport: layer is already attached")

	// ErrNoContent is returned when an ImageHost has nothing mounted.
	ErrNoContent = errors.New("viewport: host has no mounted raster")
)
