/*
NAME
  buffer_test.go

DESCRIPTION
  buffer_test.go provides testing for the window type's compaction, growth
  and shrinkage policy.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package scan

import (
	"bytes"
	"testing"
)

// load puts b into w as the current window at offset start.
func load(w *window, start int, b []byte) {
	copy(w.buf[start:], b)
	w.start = start
	w.n = len(b)
}

func TestWindowCompact(t *testing.T) {
	w := newWindow(8)
	load(w, 5, []byte("abc"))

	w.compact()
	if w.start != 0 || !bytes.Equal(w.bytes(), []byte("abc")) {
		t.Errorf("unexpected window after compaction: start=%d bytes=%q", w.start, w.bytes())
	}
	if len(w.buf) != 8 {
		t.Errorf("compaction should not resize: got capacity %d, want 8", len(w.buf))
	}
}

func TestWindowAdvance(t *testing.T) {
	w := newWindow(8)
	load(w, 0, []byte("abcdef"))

	w.advance(4)
	if !bytes.Equal(w.bytes(), []byte("ef")) {
		t.Errorf("unexpected window after advance: %q", w.bytes())
	}
	if w.start != 4 {
		t.Errorf("advance must not relocate the window: start=%d, want 4", w.start)
	}
}

func TestWindowEnsure(t *testing.T) {
	tests := []struct {
		name      string
		def       int
		grownTo   int // Region size before the call; 0 means def.
		start     int
		window    []byte
		size      int
		wantCap   int
		wantStart int
	}{
		{
			name:      "fits in place",
			def:       8,
			start:     2,
			window:    []byte("ab"),
			size:      4,
			wantCap:   8,
			wantStart: 2,
		},
		{
			name:      "shrink to default",
			def:       8,
			grownTo:   32,
			start:     30,
			window:    []byte("ab"),
			size:      6,
			wantCap:   8,
			wantStart: 0,
		},
		{
			name:      "compact keeping capacity",
			def:       8,
			grownTo:   32,
			start:     30,
			window:    []byte("ab"),
			size:      20,
			wantCap:   32,
			wantStart: 0,
		},
		{
			name:      "tight fit allocation",
			def:       8,
			start:     6,
			window:    []byte("ab"),
			size:      40,
			wantCap:   40,
			wantStart: 0,
		},
	}

	for _, test := range tests {
		w := newWindow(test.def)
		if test.grownTo != 0 {
			w.buf = make([]byte, test.grownTo)
		}
		load(w, test.start, test.window)

		w.ensure(test.size)

		if len(w.buf) != test.wantCap {
			t.Errorf("%s: unexpected capacity: got %d, want %d", test.name, len(w.buf), test.wantCap)
		}
		if w.start != test.wantStart {
			t.Errorf("%s: unexpected start: got %d, want %d", test.name, w.start, test.wantStart)
		}
		if !bytes.Equal(w.bytes(), test.window) {
			t.Errorf("%s: window corrupted: got %q, want %q", test.name, w.bytes(), test.window)
		}
	}
}

func TestWindowGrow(t *testing.T) {
	// With leading slack, grow compacts rather than enlarging.
	w := newWindow(8)
	load(w, 6, []byte("ab"))
	w.grow(4)
	if len(w.buf) != 8 || w.start != 0 {
		t.Errorf("grow with slack should compact: cap=%d start=%d", len(w.buf), w.start)
	}

	// Without slack, grow enlarges by the increment.
	load(w, 0, []byte("abcdefgh"))
	w.grow(4)
	if len(w.buf) != 12 {
		t.Errorf("unexpected capacity after grow: got %d, want 12", len(w.buf))
	}
	if !bytes.Equal(w.bytes(), []byte("abcdefgh")) {
		t.Errorf("window corrupted by grow: %q", w.bytes())
	}
}
