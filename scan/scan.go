/*
NAME
  scan.go

DESCRIPTION
  scan.go provides the Scanner type, a buffered incremental reader over an
  arbitrary byte source, along with its configuration and the Source
  capability it pulls from.

AUTHOR
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package scan provides a buffered incremental reader over an arbitrary byte
// source. A Scanner offers two operations: read an exact number of bytes, and
// read up to the first occurrence of any of several byte-string delimiters,
// pulling from the source only as much as is needed to satisfy each call.
// Views delivered to callbacks borrow the scanner's internal buffer and are
// valid only for the duration of the callback.
//
// A Scanner is not safe for concurrent use; callers sharing one across
// goroutines must provide their own mutual exclusion.
package scan

import (
	"fmt"
	"io"
)

// Source is the capability a Scanner pulls bytes from. Any file, connection
// or in-memory region can be a Source.
type Source interface {
	// Fill reads up to len(p) bytes into p and returns the number of bytes
	// read. A return of 0 with a nil error means end of data. Fill must not
	// return more than len(p).
	Fill(p []byte) (int, error)
}

// Default configuration values.
const (
	defaultInitialSize = 4 << 10 // Standard file buffer size.
	defaultGrowth      = 512
)

// Config provides parameters for a Scanner.
type Config struct {
	// InitialSize is the starting, and preferred steady-state, size of the
	// scanner's buffer in bytes. Oversized reads grow the buffer; once they
	// pass, it shrinks back toward this size. Defaults to 4096.
	InitialSize int

	// Growth is the number of bytes added to the buffer each time a delimiter
	// scan outgrows it. Defaults to 512.
	Growth int

	// Budget is a ceiling on the total number of bytes the scanner will ever
	// pull from its source. Zero means no ceiling.
	Budget int64
}

// Validate checks for any errors in the config fields and defaults settings
// if particular values have not been set.
func (c *Config) Validate() error {
	switch {
	case c.InitialSize == 0:
		c.InitialSize = defaultInitialSize
	case c.InitialSize < 0:
		return fmt.Errorf("invalid initial size: %d", c.InitialSize)
	}

	switch {
	case c.Growth == 0:
		c.Growth = defaultGrowth
	case c.Growth < 0:
		return fmt.Errorf("invalid growth: %d", c.Growth)
	}

	if c.Budget < 0 {
		return fmt.Errorf("invalid budget: %d", c.Budget)
	}
	return nil
}

// Scanner is a buffered incremental reader over a Source.
type Scanner struct {
	src    Source
	win    *window
	growth int
	budget int64
	pos    int64 // Bytes consumed from the stream and delivered to callers.
	pulled int64 // Bytes ever pulled from the source.
}

// New returns a new Scanner reading from src, configured by c.
func New(src Source, c Config) (*Scanner, error) {
	if src == nil {
		return nil, fmt.Errorf("no source provided")
	}
	err := c.Validate()
	if err != nil {
		return nil, fmt.Errorf("config could not be validated: %w", err)
	}
	return &Scanner{
		src:    src,
		win:    newWindow(c.InitialSize),
		growth: c.Growth,
		budget: c.Budget,
	}, nil
}

// Pos returns the scanner's position in the stream, that is, the count of
// bytes consumed from the buffered stream so far.
func (s *Scanner) Pos() int64 { return s.pos }

// SourceBytes returns the total number of bytes pulled from the source,
// which may exceed Pos when the scanner has buffered ahead.
func (s *Scanner) SourceBytes() int64 { return s.pulled }

// allowance returns how many of the req bytes may be pulled from a source
// without taking pulled past budget. A budget of zero or less means no
// ceiling.
func allowance(pulled, budget int64, req int) int {
	if budget <= 0 {
		return req
	}
	if rem := budget - pulled; rem < int64(req) {
		return int(rem)
	}
	return req
}

// fill pulls bytes from the source into the window's free space, stopping at
// the read budget. It returns the number of bytes pulled; 0 with a nil error
// means no more bytes may be had, either because the source is exhausted or
// because the budget is. The window is extended only once the pull has
// succeeded.
func (s *Scanner) fill() (int, error) {
	p := s.win.free()
	max := allowance(s.pulled, s.budget, len(p))
	if max == 0 {
		return 0, nil
	}
	n, err := s.src.Fill(p[:max])
	if err != nil {
		return 0, err
	}
	if n > max {
		return 0, fmt.Errorf("source filled %d bytes, more than the %d requested", n, max)
	}
	s.win.extend(n)
	s.pulled += int64(n)
	return n, nil
}

// readerSource adapts an io.Reader to the Source capability, translating
// io.EOF into the zero-bytes end-of-data contract.
type readerSource struct {
	r   io.Reader
	eof bool
}

// FromReader returns a Source that pulls from r. io.EOF from r is reported
// as end of data; any other error is passed through.
func FromReader(r io.Reader) Source {
	return &readerSource{r: r}
}

// Fill implements Source.
func (rs *readerSource) Fill(p []byte) (int, error) {
	if rs.eof {
		return 0, nil
	}
	n, err := rs.r.Read(p)
	if err == io.EOF {
		rs.eof = true
		return n, nil
	}
	return n, err
}
