/*
NAME
  buffer.go

DESCRIPTION
  buffer.go provides the window type, which owns the scanner's backing byte
  region and manages compaction, growth and shrinkage as bytes are appended
  and consumed.

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

// window owns a contiguous byte region and tracks the span of valid,
// unconsumed bytes within it. All resizing and copying of the region happens
// here; start+n never exceeds len(buf).
type window struct {
	buf   []byte // Backing region; len(buf) is the region capacity.
	start int    // Offset of the first valid byte.
	n     int    // Number of valid bytes.
	def   int    // Preferred steady-state capacity.
}

func newWindow(size int) *window {
	return &window{buf: make([]byte, size), def: size}
}

// bytes returns the window contents, valid until the next ensure, grow,
// extend or advance.
func (w *window) bytes() []byte { return w.buf[w.start : w.start+w.n] }

// free returns the unused region following the window, into which new source
// bytes may be filled before a call to extend.
func (w *window) free() []byte { return w.buf[w.start+w.n:] }

// extend marks n bytes of free space as valid window bytes.
func (w *window) extend(n int) { w.n += n }

// advance consumes n bytes from the front of the window. Leading slack is
// left in place; compaction is the only thing that relocates the window.
func (w *window) advance(n int) {
	w.start += n
	w.n -= n
}

// compact slides the window to offset zero within the current region,
// reclaiming leading slack.
func (w *window) compact() {
	if w.start == 0 {
		return
	}
	copy(w.buf, w.buf[w.start:w.start+w.n])
	w.start = 0
}

// ensure guarantees that size valid bytes can be held contiguously from the
// window's start. The sizing policy bounds memory while avoiding churn:
// if size already fits between the window start and the end of the region,
// nothing happens; if size fits the default capacity but the region has
// grown beyond it, the region shrinks back to the default; if size fits the
// current region only once compacted, the window is compacted in place;
// otherwise a region of exactly size bytes replaces the current one.
func (w *window) ensure(size int) {
	switch {
	case size <= len(w.buf)-w.start:
	case size <= w.def && len(w.buf) > w.def:
		buf := make([]byte, w.def)
		copy(buf, w.bytes())
		w.buf = buf
		w.start = 0
	case size <= len(w.buf):
		w.compact()
	default:
		buf := make([]byte, size)
		copy(buf, w.bytes())
		w.buf = buf
		w.start = 0
	}
}

// grow makes room for more source bytes during a scan with no known target
// size: leading slack is reclaimed by compaction first, and only when there
// is none is the region enlarged, by inc bytes.
func (w *window) grow(inc int) {
	if w.start > 0 {
		w.compact()
		return
	}
	buf := make([]byte, len(w.buf)+inc)
	copy(buf, w.bytes())
	w.buf = buf
}
