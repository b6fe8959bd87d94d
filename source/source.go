/*
NAME
  source.go

DESCRIPTION
  source.go provides the in-memory byte source.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package source provides concrete byte sources for the scan package: an
// in-memory region, a file, and a followed (growing) file.
package source

// Bytes is an in-memory byte source. The zero value is an exhausted source.
type Bytes struct {
	b   []byte
	off int

	// Chunk, when positive, caps the number of bytes supplied per Fill.
	// This is useful for exercising readers against arbitrarily chunked
	// arrivals.
	Chunk int
}

// NewBytes returns a Bytes supplying b.
func NewBytes(b []byte) *Bytes { return &Bytes{b: b} }

// Fill implements scan.Source.
func (s *Bytes) Fill(p []byte) (int, error) {
	if s.off >= len(s.b) {
		return 0, nil
	}
	if s.Chunk > 0 && len(p) > s.Chunk {
		p = p[:s.Chunk]
	}
	n := copy(p, s.b[s.off:])
	s.off += n
	return n, nil
}
