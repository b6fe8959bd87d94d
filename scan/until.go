/*
NAME
  until.go

DESCRIPTION
  until.go provides the Scanner's delimited read operation: an incremental
  multi-delimiter scan that resolves partial matches straddling fill
  boundaries and stops pulling from the source as soon as a winner is
  certain.

AUTHOR
  Dan Kortschak <dan@ausocean.org>
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
	"fmt"
)

// Mode selects the policy for resolving ties between delimiters that match
// at the same offset. A match at an earlier offset always beats one at a
// later offset, whatever the mode.
type Mode int

const (
	// ModeEarliest resolves ties by list order: the delimiter earliest in
	// the caller's list wins.
	ModeEarliest Mode = iota

	// ModeShortest resolves ties to the shortest matching delimiter.
	ModeShortest

	// ModeLongest resolves ties to the longest matching delimiter.
	ModeLongest
)

// Match identifies the delimiter that ended a ReadUntil.
type Match struct {
	Index int    // Index into the caller's delimiter list, or -1 for a drain to end of data.
	Delim []byte // The matched delimiter, nil for a drain.
}

// candidate is a confirmed delimiter occurrence: delimiter idx matched in
// full at window offset off.
type candidate struct {
	off int
	idx int
	d   []byte
}

// pending is a delimiter whose prefix reaches the end of the window; more
// bytes could complete it at offset off.
type pending struct {
	off int
	idx int
}

// ReadUntil scans for the earliest occurrence of any of delims, pulling from
// the source as needed, and delivers the span up to the winning delimiter to
// fn along with the delimiter's identity. The winning delimiter is always
// consumed from the stream; includeDelim controls only whether its bytes
// appear in the delivered span. The slice passed to fn borrows the scanner's
// buffer and must not be retained past fn's return.
//
// Ties between delimiters matching at the same offset resolve per mode. An
// empty delims list drains the stream: the whole remainder is delivered with
// Match{Index: -1}. If end of data (or the read budget) arrives before any
// delimiter, ReadUntil returns ErrNotFound and the buffered remainder stays
// available to later calls. Source errors are returned unchanged.
func (s *Scanner) ReadUntil(delims [][]byte, mode Mode, includeDelim bool, fn func(p []byte, m Match) error) error {
	if mode < ModeEarliest || mode > ModeLongest {
		return fmt.Errorf("invalid matching mode: %d", mode)
	}
	if len(delims) == 0 {
		return s.drain(fn)
	}

	minLen, maxLen := len(delims[0]), len(delims[0])
	for i, d := range delims {
		if len(d) == 0 {
			return fmt.Errorf("empty delimiter at index %d", i)
		}
		minLen = min(minLen, len(d))
		maxLen = max(maxLen, len(d))
	}

	var (
		cands   []candidate // Confirmed matches, all at the same minimal offset.
		pends   []pending
		scanned int // Window offset below which full checks are complete.
	)

	for {
		win := s.win.bytes()
		pends = pends[:0]

		bestOff := -1
		if len(cands) > 0 {
			bestOff = cands[0].off
		}

		if len(win) >= minLen {
			for pos := scanned; pos < len(win); pos++ {
				if bestOff != -1 && pos > bestOff {
					break
				}
				for i, d := range delims {
					if end := pos + len(d); end <= len(win) {
						if !bytes.Equal(win[pos:end], d) {
							continue
						}
						switch {
						case bestOff == -1 || pos < bestOff:
							cands = append(cands[:0], candidate{pos, i, d})
							bestOff = pos
						case pos == bestOff && !confirmed(cands, i):
							cands = append(cands, candidate{pos, i, d})
						}
					} else if bytes.HasPrefix(d, win[pos:]) {
						pends = append(pends, pending{pos, i})
					}
				}
			}
		}

		if bestOff != -1 && !undecided(cands, pends, mode, bestOff) {
			return s.resolve(cands, mode, includeDelim, fn)
		}

		// No winner is certain yet; remember how far full checks got and
		// pull more. Any pending occurrence starts no earlier than
		// len(win)-maxLen+1, so rescanning from there resolves them all.
		scanned = max(0, len(win)-maxLen+1)
		if len(s.win.free()) == 0 {
			s.win.grow(s.growth)
		}
		m, err := s.fill()
		if err != nil {
			return err
		}
		if m == 0 {
			if len(cands) > 0 {
				return s.resolve(cands, mode, includeDelim, fn)
			}
			return ErrNotFound
		}
	}
}

// confirmed reports whether delimiter idx is already among the candidates.
func confirmed(cands []candidate, idx int) bool {
	for _, c := range cands {
		if c.idx == idx {
			return true
		}
	}
	return false
}

// undecided reports whether any pending delimiter could still beat the best
// confirmed candidate under the given mode, in which case more bytes are
// needed before resolving.
func undecided(cands []candidate, pends []pending, mode Mode, bestOff int) bool {
	for _, p := range pends {
		if p.off < bestOff {
			return true
		}
		if p.off > bestOff {
			continue
		}
		switch mode {
		case ModeEarliest:
			// A pending delimiter earlier in the list would take the tie.
			if p.idx < winner(cands, mode).idx {
				return true
			}
		case ModeLongest:
			// A pending delimiter here is necessarily longer than every
			// confirmed candidate, so it would win once completed.
			return true
		case ModeShortest:
			// A pending delimiter here is necessarily longer than every
			// confirmed candidate; it can never win.
		}
	}
	return false
}

// winner picks the best candidate per mode. All candidates share one offset.
func winner(cands []candidate, mode Mode) candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		switch mode {
		case ModeEarliest:
			if c.idx < best.idx {
				best = c
			}
		case ModeShortest:
			if len(c.d) < len(best.d) || (len(c.d) == len(best.d) && c.idx < best.idx) {
				best = c
			}
		case ModeLongest:
			if len(c.d) > len(best.d) || (len(c.d) == len(best.d) && c.idx < best.idx) {
				best = c
			}
		}
	}
	return best
}

// resolve delivers the winning match to fn and consumes the span, delimiter
// included, from the window.
func (s *Scanner) resolve(cands []candidate, mode Mode, includeDelim bool, fn func(p []byte, m Match) error) error {
	best := winner(cands, mode)
	total := best.off + len(best.d)
	view := s.win.bytes()[:total]
	if !includeDelim {
		view = view[:best.off]
	}
	err := fn(view, Match{Index: best.idx, Delim: best.d})
	s.win.advance(total)
	s.pos += int64(total)
	return err
}

// drain pulls until end of data and delivers the whole remaining window.
func (s *Scanner) drain(fn func(p []byte, m Match) error) error {
	for {
		if len(s.win.free()) == 0 {
			s.win.grow(s.growth)
		}
		m, err := s.fill()
		if err != nil {
			return err
		}
		if m == 0 {
			break
		}
	}
	view := s.win.bytes()
	err := fn(view, Match{Index: -1})
	s.win.advance(len(view))
	s.pos += int64(len(view))
	return err
}
