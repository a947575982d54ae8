// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewport

import (
	"errors"
	"runtime"
	"testing"
)

func names(vp *Viewport) []string {
	var out []string
	for _, l := range vp.Layers() {
		out = append(out, l.Name())
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func abc(t *testing.T) (*Viewport, map[string]*Layer) {
	t.Helper()
	m := map[string]*Layer{}
	var ls []*Layer
	for _, n := range []string{"A", "B", "C"} {
		l := newTestLayer(WithName(n))
		m[n] = l
		ls = append(ls, l)
	}
	vp, _ := newTestViewport(t, 10, 10, WithLayers(ls...))
	return vp, m
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name  string
		layer string
		op    func(*Layer) error
		want  []string
	}{
		{"B to top", "B", (*Layer).MoveToTop, []string{"A", "C", "B"}},
		{"A up", "A", (*Layer).MoveUp, []string{"B", "A", "C"}},
		{"C up at top", "C", (*Layer).MoveUp, []string{"A", "B", "C"}},
		{"C down", "C", (*Layer).MoveDown, []string{"A", "C", "B"}},
		{"A down at bottom", "A", (*Layer).MoveDown, []string{"A", "B", "C"}},
		{"C to bottom", "C", (*Layer).MoveToBottom, []string{"C", "A", "B"}},
		{"B to bottom", "B", (*Layer).MoveToBottom, []string{"B", "A", "C"}},
		{"A to bottom", "A", (*Layer).MoveToBottom, []string{"A", "B", "C"}},
		{"C to top", "C", (*Layer).MoveToTop, []string{"A", "B", "C"}},
		{"A to top", "A", (*Layer).MoveToTop, []string{"B", "C", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp, m := abc(t)
			if err := tt.op(m[tt.layer]); err != nil {
				t.Fatalf("error = %v", err)
			}
			if got := names(vp); !equal(got, tt.want) {
				t.Errorf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndex(t *testing.T) {
	vp, m := abc(t)
	for i, n := range []string{"A", "B", "C"} {
		if got, ok := m[n].Index(); !ok || got != i {
			t.Errorf("%s.Index() = (%d, %v), want (%d, true)", n, got, ok, i)
		}
	}
	if err := m["A"].MoveToTop(); err != nil {
		t.Fatal(err)
	}
	if got, _ := m["A"].Index(); got != vp.Len()-1 {
		t.Errorf("A.Index() after MoveToTop = %d", got)
	}
}

func TestDestroy(t *testing.T) {
	vp, m := abc(t)
	b := m["B"]
	if err := b.Destroy(); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if got := names(vp); !equal(got, []string{"A", "C"}) {
		t.Errorf("order after Destroy = %v", got)
	}
	if _, ok := vp.Layer(b.ID()); ok {
		t.Error("destroyed layer still found by id")
	}
	if _, ok := b.Index(); ok {
		t.Error("Index() of a destroyed layer reported ok")
	}
	if b.Viewport() != nil {
		t.Error("back-reference not cleared")
	}
	if err := b.Destroy(); !errors.Is(err, ErrDetached) {
		t.Errorf("second Destroy() error = %v, want ErrDetached", err)
	}

	if err := vp.Add(b); err != nil {
		t.Fatalf("re-adding a destroyed layer: %v", err)
	}
	if got := names(vp); !equal(got, []string{"A", "C", "B"}) {
		t.Errorf("order after re-add = %v", got)
	}
}

func TestDetachedOperations(t *testing.T) {
	l := newTestLayer()
	if _, ok := l.Index(); ok {
		t.Error("Index() of a new layer reported ok")
	}
	if l.Viewport() != nil {
		t.Error("new layer has a viewport")
	}
	ops := map[string]func() error{
		"MoveUp":       l.MoveUp,
		"MoveDown":     l.MoveDown,
		"MoveToTop":    l.MoveToTop,
		"MoveToBottom": l.MoveToBottom,
		"Destroy":      l.Destroy,
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrDetached) {
			t.Errorf("%s() on a detached layer error = %v, want ErrDetached", name, err)
		}
	}
}

func TestLayerIDsAreUnique(t *testing.T) {
	seen := map[int]bool{}
	prev := -1
	for range 100 {
		l := NewLayer()
		if seen[l.ID()] {
			t.Fatalf("duplicate layer id %d", l.ID())
		}
		if l.ID() <= prev {
			t.Fatalf("layer id %d not greater than %d", l.ID(), prev)
		}
		seen[l.ID()] = true
		prev = l.ID()
	}
}

func TestLayerResizeLockstep(t *testing.T) {
	l := newTestLayer(WithLayerSize(8, 6))
	if l.Surface().Width() != 8 || l.Hit().Width() != 8 {
		t.Fatal("explicit size not applied to both surfaces")
	}
	l.Resize(12, 3)
	if l.Width() != 12 || l.Height() != 3 ||
		l.Surface().Width() != 12 || l.Surface().Height() != 3 ||
		l.Hit().Width() != 12 || l.Hit().Height() != 3 {
		t.Errorf("surfaces out of step after Resize(12, 3)")
	}
	l.Resize(-1, 4)
	if l.Width() != 0 || l.Hit().Width() != 0 {
		t.Errorf("negative width not clamped: layer %d, hit %d", l.Width(), l.Hit().Width())
	}
}

func TestLayerStateAccessors(t *testing.T) {
	l := newTestLayer(WithName("plants"), WithPosition(3, 4), Hidden())
	if l.Name() != "plants" {
		t.Errorf("Name() = %q", l.Name())
	}
	if x, y := l.Position(); x != 3 || y != 4 {
		t.Errorf("Position() = (%v, %v)", x, y)
	}
	if l.Visible() {
		t.Error("Hidden() layer is visible")
	}
	l.SetVisible(true)
	l.SetPosition(-1, 2.5)
	if !l.Visible() {
		t.Error("SetVisible(true) had no effect")
	}
	if x, y := l.Position(); x != -1 || y != 2.5 {
		t.Errorf("Position() after SetPosition = (%v, %v)", x, y)
	}
}

func TestBackReferenceIsWeak(t *testing.T) {
	l := newTestLayer()
	func() {
		vp, err := New(NewImageHost(), WithSize(4, 4), WithPixelRatio(1))
		if err != nil {
			t.Fatal(err)
		}
		if err := vp.Add(l); err != nil {
			t.Fatal(err)
		}
	}()
	runtime.GC()
	runtime.GC()
	if l.Viewport() != nil {
		t.Error("layer kept its viewport alive")
	}
	if err := l.MoveUp(); !errors.Is(err, ErrDetached) {
		t.Errorf("MoveUp() after the viewport was collected error = %v, want ErrDetached", err)
	}
}
