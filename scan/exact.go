/*
NAME
  exact.go

DESCRIPTION
  exact.go provides the Scanner's exact-size read operation.

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

import "fmt"

// ReadExact delivers exactly n bytes to fn, or fails without consuming
// anything. The slice passed to fn borrows the scanner's buffer and must not
// be retained past fn's return; a later operation may relocate it. The
// callback's error, if any, is returned to the caller, with the bytes
// considered delivered either way.
//
// ReadExact returns ErrBudgetExceeded if the read would require pulling past
// the configured budget, ErrNoMoreData if the source ends short of n bytes,
// and any source error unchanged. On failure the scanner's position and
// window are left as they were.
func (s *Scanner) ReadExact(n int, fn func(p []byte) error) error {
	if n < 0 {
		return fmt.Errorf("invalid read size: %d", n)
	}
	s.win.ensure(n)
	for s.win.n < n {
		need := n - s.win.n
		if allowance(s.pulled, s.budget, need) < need {
			return ErrBudgetExceeded
		}
		m, err := s.fill()
		if err != nil {
			return err
		}
		if m == 0 {
			return ErrNoMoreData
		}
	}
	err := fn(s.win.bytes()[:n])
	s.win.advance(n)
	s.pos += int64(n)
	return err
}
