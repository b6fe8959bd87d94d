/*
NAME
  file.go

DESCRIPTION
  file.go provides a file-backed byte source, optionally looping back to the
  start of the file when its end is reached.

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
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ausocean/utils/logging"
)

// File is a byte source backed by a file. With looping enabled the source
// never reports end of data; it seeks back to the start of the file instead.
type File struct {
	f         *os.File
	path      string
	loop      bool
	isRunning bool
	log       logging.Logger
	set       bool
	mu        sync.Mutex
}

// New returns a new File.
func New(l logging.Logger) *File { return &File{log: l} }

// NewWith returns a new File with required params provided i.e. the Set
// method does not need to be called.
func NewWith(l logging.Logger, path string, loop bool) *File {
	return &File{log: l, path: path, loop: loop, set: true}
}

// Name returns the name of the source.
func (s *File) Name() string {
	return "File"
}

// Set provides the path of the file to read and whether to loop it.
func (s *File) Set(path string, loop bool) error {
	if path == "" {
		return errors.New("no file path provided")
	}
	s.path = path
	s.loop = loop
	s.set = true
	return nil
}

// Start opens the file at the configured path.
func (s *File) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var err error
	if !s.set {
		return errors.New("file source has not been set")
	}
	s.f, err = os.Open(s.path)
	if err != nil {
		return fmt.Errorf("could not open source file: %w", err)
	}
	s.isRunning = true
	return nil
}

// Stop closes the file such that any further fills will fail.
func (s *File) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.f.Close()
	if err == nil {
		s.isRunning = false
		return nil
	}
	return err
}

// Fill implements scan.Source. If Start has not been called, or Stop has
// since been called, an error is returned. End of file is reported as end of
// data unless looping is enabled.
func (s *File) Fill(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return 0, errors.New("source file is closed, File not started")
	}

	n, err := s.f.Read(p)
	if err != nil && err != io.EOF {
		return n, err
	}

	if n == 0 && err == io.EOF {
		if !s.loop {
			return 0, nil
		}
		s.log.Info("looping input file")
		// We've hit end of file with loop set, so seek to start and read
		// from there.
		_, err = s.f.Seek(0, io.SeekStart)
		if err != nil {
			return 0, fmt.Errorf("could not seek to start of file for input loop: %w", err)
		}
		n, err = s.f.Read(p)
		if err != nil && err != io.EOF {
			return n, fmt.Errorf("could not read after start seek: %w", err)
		}
	}
	return n, nil
}

// IsRunning is used to determine if the File source is running.
func (s *File) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f != nil && s.isRunning
}
