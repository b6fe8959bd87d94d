/*
NAME
  follow.go

DESCRIPTION
  follow.go provides a byte source that follows a growing file, waiting on
  filesystem write events when the end of the file is reached.

AUTHOR
  Saxon A. Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package source

import (
	"io"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ausocean/utils/logging"
)

// Default wait before a followed file that has stopped growing is treated as
// ended.
const defaultFollowTimeout = 5 * time.Second

// Follow is a byte source that tails a file. When the end of the file is
// reached, Fill blocks until the file grows, reporting end of data only once
// no write has arrived within the configured timeout or the source has been
// stopped.
type Follow struct {
	f       *os.File
	w       *fsnotify.Watcher
	path    string
	timeout time.Duration
	log     logging.Logger
}

// NewFollow returns a new Follow for the file at path. A timeout of 0 means
// the default of 5 seconds.
func NewFollow(l logging.Logger, path string, timeout time.Duration) *Follow {
	if timeout == 0 {
		timeout = defaultFollowTimeout
	}
	return &Follow{path: path, timeout: timeout, log: l}
}

// Name returns the name of the source.
func (s *Follow) Name() string {
	return "Follow"
}

// Start opens the followed file and begins watching it for growth.
func (s *Follow) Start() error {
	f, err := os.Open(s.path)
	if err != nil {
		return errors.Wrap(err, "could not open followed file")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		f.Close()
		return errors.Wrap(err, "could not create file watcher")
	}

	err = w.Add(s.path)
	if err != nil {
		f.Close()
		w.Close()
		return errors.Wrap(err, "could not watch followed file")
	}

	s.f = f
	s.w = w
	return nil
}

// Stop stops watching and closes the file. A Fill blocked on file growth
// returns end of data.
func (s *Follow) Stop() error {
	err := s.w.Close()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Fill implements scan.Source. At end of file it waits for the file to grow
// before reading on; a quiet period of the configured timeout is reported as
// end of data.
func (s *Follow) Fill(p []byte) (int, error) {
	if s.f == nil {
		return 0, errors.New("followed file is not open, Follow not started")
	}

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	for {
		n, err := s.f.Read(p)
		if err != nil && err != io.EOF {
			return n, err
		}
		if n > 0 {
			return n, nil
		}

		select {
		case ev, ok := <-s.w.Events:
			if !ok {
				return 0, nil
			}
			if ev.Op&fsnotify.Write == 0 {
				continue
			}
			s.log.Debug("followed file grew", "name", ev.Name)
		case werr, ok := <-s.w.Errors:
			if !ok {
				return 0, nil
			}
			return 0, errors.Wrap(werr, "file watch failed")
		case <-timer.C:
			s.log.Debug("followed file quiet, treating as end of data", "path", s.path)
			return 0, nil
		}
	}
}
