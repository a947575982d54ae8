// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package hitcolor

import (
	"image/color"
	"testing"
)

func TestEncodeChannels(t *testing.T) {
	tests := []struct {
		id   int
		want RGB
	}{
		{0, RGB{0, 0, 0}},
		{1, RGB{0, 0, 1}},
		{0xff, RGB{0, 0, 0xff}},
		{0x100, RGB{0, 1, 0}},
		{0x123456, RGB{0x12, 0x34, 0x56}},
		{MaxID, RGB{0xff, 0xff, 0xff}},
	}
	for _, tt := range tests {
		if got := Encode(tt.id); got != tt.want {
			t.Errorf("Encode(%#x) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// Walk the id space with a stride that touches every channel boundary.
	for id := 0; id <= MaxID; id += 4093 {
		if got := Decode(Encode(id)); got != id {
			t.Fatalf("Decode(Encode(%d)) = %d", id, got)
		}
	}
	for _, id := range []int{0, 1, 255, 256, 65535, 65536, MaxID - 1, MaxID} {
		if got := Decode(Encode(id)); got != id {
			t.Errorf("Decode(Encode(%d)) = %d", id, got)
		}
	}
}

func TestCSS(t *testing.T) {
	if got, want := CSS(0x0a0b0c), "rgb(10, 11, 12)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
	if got, want := CSS(7), "rgb(0, 0, 7)"; got != want {
		t.Errorf("CSS() = %q, want %q", got, want)
	}
}

func TestRGBAIsOpaque(t *testing.T) {
	c := Encode(0x010203).RGBA()
	want := color.RGBA{R: 1, G: 2, B: 3, A: 0xff}
	if c != want {
		t.Errorf("RGBA() = %v, want %v", c, want)
	}
	if got := FromRGBA(c); Decode(got) != 0x010203 {
		t.Errorf("FromRGBA round trip = %#x", Decode(got))
	}
}
