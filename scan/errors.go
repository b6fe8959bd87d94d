/*
NAME
  errors.go

DESCRIPTION
  errors.go provides the errors returned by Scanner operations.

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

import "errors"

var (
	// ErrNotFound is returned by ReadUntil when end of data is reached
	// without any of the requested delimiters occurring.
	ErrNotFound = errors.New("delimiters not found")

	// ErrBudgetExceeded is returned by ReadExact when satisfying the read
	// would require pulling more bytes from the source than the configured
	// budget permits.
	ErrBudgetExceeded = errors.New("read budget exceeded")

	// ErrNoMoreData is returned by ReadExact when the source reaches end of
	// data before the requested number of bytes is available.
	ErrNoMoreData = errors.New("no more data")
)
