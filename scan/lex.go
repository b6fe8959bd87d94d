/*
NAME
  lex.go

DESCRIPTION
  lex.go provides a lexer that cuts a byte stream into delimited records,
  writing each to a destination no earlier than a specified delay apart.

AUTHOR
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package scan

import (
	"errors"
	"io"
	"time"
)

var noDelay = make(chan time.Time)

func init() {
	close(noDelay)
}

// Lex reads src and writes each delimited record to dst as a separate write,
// with successive writes performed not earlier than the specified delay
// apart. Records are cut on the delimiters in delims, resolved per mode;
// includeDelim controls whether the matched delimiter is written with its
// record. An unterminated tail is written as a final record. Lex returns
// io.EOF once src is exhausted, and the first write or source error
// otherwise.
func Lex(dst io.Writer, src io.Reader, delay time.Duration, delims [][]byte, mode Mode, includeDelim bool) error {
	var tick <-chan time.Time
	if delay == 0 {
		tick = noDelay
	} else {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	s, err := New(FromReader(src), Config{})
	if err != nil {
		return err
	}

	emit := func(p []byte, _ Match) error {
		<-tick
		_, err := dst.Write(p)
		return err
	}

	// The tail flush only writes when something unterminated remains.
	flush := func(p []byte, m Match) error {
		if len(p) == 0 {
			return nil
		}
		return emit(p, m)
	}

	if len(delims) == 0 {
		err := s.ReadUntil(nil, mode, includeDelim, flush)
		if err != nil {
			return err
		}
		return io.EOF
	}

	for {
		err := s.ReadUntil(delims, mode, includeDelim, emit)
		switch {
		case err == nil:
		case errors.Is(err, ErrNotFound):
			// End of data; flush any unterminated tail.
			err = s.ReadUntil(nil, mode, includeDelim, flush)
			if err != nil {
				return err
			}
			return io.EOF
		default:
			return err
		}
	}
}
