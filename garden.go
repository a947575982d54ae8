package garden

import (
	"fmt"
	"image"
	"slices"

	"github.com/gogpu/garden/hitcolor"
	"github.com/gogpu/garden/internal/label"
	"github.com/gogpu/garden/surface"
	"github.com/gogpu/garden/viewport"
)

// Names of the built-in layers.
const (
	LayerGround = "ground"
	LayerPlants = "plants"
)

// Config holds the creation-time configuration of a Garden.
type Config struct {
	// Width and Height are the logical size of the canvas.
	Width, Height int

	// Host receives the composite raster. The garden owns it exclusively.
	Host viewport.Host
}

// Garden is the top-level planner canvas. It owns exactly one Viewport.
//
// Garden is NOT safe for concurrent use. Drive it from the goroutine that
// handles input events.
type Garden struct {
	vp     *viewport.Viewport
	ratio  surface.PixelRatio
	ground *viewport.Layer
	bed    *viewport.Layer
	labels *label.Labeler

	plants map[int]*Plant
	order  []int // draw order, oldest first
	nextID int

	background  image.Image
	plantsDirty bool
	groundDirty bool
}

// New creates a garden over cfg.Host.
func New(cfg Config, opts ...Option) (*Garden, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	g := &Garden{
		ratio:  o.ratio,
		plants: make(map[int]*Plant),
		nextID: 1,
	}
	if o.labels {
		l, err := label.New(o.labelSize)
		if err != nil {
			return nil, err
		}
		g.labels = l
	}

	g.ground = g.newLayer(LayerGround)
	g.bed = g.newLayer(LayerPlants)
	vpOpts := []viewport.Option{
		viewport.WithSize(cfg.Width, cfg.Height),
		viewport.WithPixelRatio(o.ratio),
		viewport.WithLayers(g.ground, g.bed),
	}
	if o.offsets {
		vpOpts = append(vpOpts, viewport.WithLayerOffsets())
	}
	vp, err := viewport.New(cfg.Host, vpOpts...)
	if err != nil {
		return nil, fmt.Errorf("garden: %w", err)
	}
	g.vp = vp

	Logger().Info("garden: created", "width", cfg.Width, "height", cfg.Height, "ratio", float64(o.ratio))
	return g, nil
}

func (g *Garden) newLayer(name string) *viewport.Layer {
	return viewport.NewLayer(viewport.WithName(name), viewport.WithLayerPixelRatio(g.ratio))
}

// Viewport returns the garden's viewport.
func (g *Garden) Viewport() *viewport.Viewport { return g.vp }

// Width returns the logical width.
func (g *Garden) Width() int { return g.vp.Width() }

// Height returns the logical height.
func (g *Garden) Height() int { return g.vp.Height() }

// Resize resizes the canvas and every layer. Layer content is discarded;
// the garden redraws its own layers on the next Render or pick, while
// content of layers added with AddLayer must be redrawn by the caller.
func (g *Garden) Resize(width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, width, height)
	}
	g.vp.Resize(width, height)
	g.plantsDirty, g.groundDirty = true, true
	return nil
}

// Render redraws stale garden layers and composites the viewport into the host.
func (g *Garden) Render() error {
	if err := g.sync(); err != nil {
		return err
	}
	g.vp.Render()
	return nil
}

// Pick returns the identifier under the logical point (x, y) on the
// top-most layer that has one.
func (g *Garden) Pick(x, y float64) (int, bool) {
	if err := g.sync(); err != nil {
		Logger().Warn("garden: redraw before pick failed", "err", err)
	}
	return g.vp.PickAt(x, y)
}

// PlantAt returns the plant under the logical point (x, y). Only hits on the
// plants layer count: identifiers painted by callers on their own layers are
// never plants, even when they equal a plant id, and they occlude the plants
// beneath them.
func (g *Garden) PlantAt(x, y float64) (Plant, bool) {
	if err := g.sync(); err != nil {
		Logger().Warn("garden: redraw before pick failed", "err", err)
	}
	l, id, ok := g.vp.PickLayerAt(x, y)
	if !ok || l != g.bed {
		return Plant{}, false
	}
	return g.Plant(id)
}

// SetBackground draws img stretched over the ground layer. Nil clears it.
func (g *Garden) SetBackground(img image.Image) {
	g.background = img
	g.groundDirty = true
}

// sync repaints the built-in layers whose rasters are stale.
func (g *Garden) sync() error {
	if g.groundDirty {
		s := g.ground.Surface()
		s.Clear()
		if g.background != nil {
			s.DrawImage(g.background, 0, 0, float64(s.Width()), float64(s.Height()))
		}
		g.groundDirty = false
	}
	if g.plantsDirty {
		vis, hit := g.bed.Surface(), g.bed.Hit()
		vis.Clear()
		hit.Clear()
		for _, id := range g.order {
			if err := g.plants[id].draw(vis, hit, g.labels); err != nil {
				return fmt.Errorf("garden: draw plant %d: %w", id, err)
			}
		}
		g.plantsDirty = false
	}
	return nil
}

// AddPlant places p on the plants layer above every existing plant and
// returns its new identifier. p.ID is ignored.
func (g *Garden) AddPlant(p Plant) (int, error) {
	if !(p.Radius > 0) {
		return 0, fmt.Errorf("%w: radius %v", ErrInvalidPlant, p.Radius)
	}
	if g.nextID > hitcolor.MaxID {
		return 0, ErrIDSpaceExhausted
	}
	p.ID = g.nextID
	g.nextID++

	g.plants[p.ID] = &p
	g.order = append(g.order, p.ID)
	g.plantsDirty = true
	Logger().Debug("garden: plant added", "id", p.ID, "species", p.Species, "x", p.X, "y", p.Y)
	return p.ID, nil
}

// RemovePlant removes the plant with the given identifier.
// Identifiers are not reused.
func (g *Garden) RemovePlant(id int) error {
	if _, ok := g.plants[id]; !ok {
		return fmt.Errorf("%w: %d", ErrPlantNotFound, id)
	}
	delete(g.plants, id)
	g.order = slices.DeleteFunc(g.order, func(v int) bool { return v == id })
	g.plantsDirty = true
	Logger().Debug("garden: plant removed", "id", id)
	return nil
}

// MovePlant moves a plant's center to (x, y).
func (g *Garden) MovePlant(id int, x, y float64) error {
	p, ok := g.plants[id]
	if !ok {
		return fmt.Errorf("%w: %d", ErrPlantNotFound, id)
	}
	p.X, p.Y = x, y
	g.plantsDirty = true
	return nil
}

// Plant returns a copy of the plant with the given identifier.
func (g *Garden) Plant(id int) (Plant, bool) {
	p, ok := g.plants[id]
	if !ok {
		return Plant{}, false
	}
	return *p, true
}

// Plants returns copies of all plants in draw order, bottom-most first.
func (g *Garden) Plants() []Plant {
	out := make([]Plant, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.plants[id])
	}
	return out
}

// AddLayer stacks a new, empty layer on top of the existing ones.
func (g *Garden) AddLayer(name string) (*viewport.Layer, error) {
	if _, ok := g.vp.LayerByName(name); ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateLayer, name)
	}
	l := g.newLayer(name)
	if err := g.vp.Add(l); err != nil {
		return nil, err
	}
	Logger().Info("garden: layer added", "name", name)
	return l, nil
}

// Layer returns the layer with the given name.
func (g *Garden) Layer(name string) (*viewport.Layer, bool) {
	return g.vp.LayerByName(name)
}

// Layers returns the layers bottom-most first.
func (g *Garden) Layers() []*viewport.Layer {
	return g.vp.Layers()
}

// RemoveLayer detaches a layer added with AddLayer.
func (g *Garden) RemoveLayer(name string) error {
	if name == LayerGround || name == LayerPlants {
		return fmt.Errorf("%w: %q", ErrReservedLayer, name)
	}
	l, ok := g.vp.LayerByName(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrLayerNotFound, name)
	}
	if err := l.Destroy(); err != nil {
		return err
	}
	Logger().Info("garden: layer removed", "name", name)
	return nil
}
