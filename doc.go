// Package garden is the host object of a garden planner canvas.
//
// # Overview
//
// A Garden owns one viewport.Viewport mounted into a host element and
// exposes the operations a planner screen needs: layer management and
// adding, moving and removing plants. Plants are drawn twice, once as a
// visible disc with an outline and a caption, and once as a silhouette in
// the identity raster, so a pointer position resolves to a plant with a
// single pixel read.
//
// # Quick Start
//
//	host := viewport.NewImageHost()
//	g, err := garden.New(garden.Config{Width: 800, Height: 600, Host: host})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	id, _ := g.AddPlant(garden.Plant{Species: "tomato", X: 120, Y: 80, Radius: 24})
//	g.Render()
//
//	if p, ok := g.PlantAt(125, 85); ok {
//	    fmt.Println("picked", p.ID == id, p.Species)
//	}
//	_ = host.SavePNG("garden.png")
//
// # Layers
//
// Every garden starts with two layers, bottom to top: "ground", which holds
// the optional background image, and "plants". AddLayer stacks further
// layers on top; their content is drawn by the caller through
// Layer.Surface and Layer.Hit.
//
// # Architecture
//
// The library is organized into:
//   - garden: host object, plants, configuration, logging
//   - viewport: layer sequence, compositing, picking
//   - surface: visual and identity rasters, paths
//   - hitcolor: identifier to color codec
//
// # Coordinate System
//
// Coordinates are logical pixels with the origin at the top-left, X to the
// right and Y down. Backing rasters are scaled by the pixel ratio.
package garden
