/*
NAME
  lex_test.go

DESCRIPTION
  lex_test.go provides testing for the lexer in lex.go.

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
	"bytes"
	"fmt"
	"io"
	"reflect"
	"testing"
	"time"
)

var lexTests = []struct {
	name    string
	input   []byte
	delay   time.Duration
	delims  [][]byte
	mode    Mode
	include bool
	want    [][]byte
	err     error
}{
	{
		name:   "empty",
		delims: [][]byte{[]byte("\n")},
		err:    io.EOF,
	},
	{
		name:   "lines",
		input:  []byte("one\ntwo\nthree\n"),
		delims: [][]byte{[]byte("\n")},
		want:   [][]byte{[]byte("one"), []byte("two"), []byte("three")},
		err:    io.EOF,
	},
	{
		name:   "lines delayed",
		input:  []byte("one\ntwo\nthree\n"),
		delay:  time.Millisecond,
		delims: [][]byte{[]byte("\n")},
		want:   [][]byte{[]byte("one"), []byte("two"), []byte("three")},
		err:    io.EOF,
	},
	{
		name:    "lines included",
		input:   []byte("one\ntwo\n"),
		delims:  [][]byte{[]byte("\n")},
		include: true,
		want:    [][]byte{[]byte("one\n"), []byte("two\n")},
		err:     io.EOF,
	},
	{
		name:   "unterminated tail",
		input:  []byte("one\ntail"),
		delims: [][]byte{[]byte("\n")},
		want:   [][]byte{[]byte("one"), []byte("tail")},
		err:    io.EOF,
	},
	{
		name:   "mixed endings",
		input:  []byte("one\r\ntwo\nthree\r\n"),
		delims: [][]byte{[]byte("\r\n"), []byte("\n")},
		mode:   ModeEarliest,
		want:   [][]byte{[]byte("one"), []byte("two"), []byte("three")},
		err:    io.EOF,
	},
	{
		name:  "drain",
		input: []byte("all of it"),
		want:  [][]byte{[]byte("all of it")},
		err:   io.EOF,
	},
	{
		name: "drain empty",
		err:  io.EOF,
	},
	{
		name:   "empty records",
		input:  []byte("\n\nx\n"),
		delims: [][]byte{[]byte("\n")},
		want:   [][]byte{{}, {}, []byte("x")},
		err:    io.EOF,
	},
}

func TestLex(t *testing.T) {
	for _, test := range lexTests {
		var buf recordWriter
		err := Lex(&buf, bytes.NewReader(test.input), test.delay, test.delims, test.mode, test.include)
		if fmt.Sprint(err) != fmt.Sprint(test.err) {
			t.Errorf("unexpected error for %q: got:%v want:%v", test.name, err, test.err)
		}
		got := [][]byte(buf)
		if len(got) == 0 && len(test.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("unexpected result for %q:\ngot :%q\nwant:%q", test.name, got, test.want)
		}
	}
}

// recordWriter records each write as a separate record, copying since the
// written bytes borrow the scanner's buffer.
type recordWriter [][]byte

func (e *recordWriter) Write(p []byte) (int, error) {
	*e = append(*e, append([]byte{}, p...))
	return len(p), nil
}
