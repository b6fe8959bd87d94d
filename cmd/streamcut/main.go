/*
DESCRIPTION
  streamcut reads a byte stream from a file or stdin and splits it into
  delimiter-separated records, writing each record to an output as a separate
  write with an optional minimum delay between writes.

AUTHORS
  Saxon A. Nelson-Milton <saxon@ausocean.org>
  Trek Hopton <trek@ausocean.org>

LICENSE
  Copyright (C) 2026 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package main provides streamcut, a delimiter-based stream splitting tool.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/streamscan/scan"
	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v1.0.0"

// Logging configuration.
const (
	logMaxSize   = 500 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

// delimList collects repeated -delim flags, decoding Go escape sequences so
// that delimiters such as \r\n can be given on the command line.
type delimList [][]byte

func (l *delimList) String() string {
	var parts []string
	for _, d := range *l {
		parts = append(parts, strconv.Quote(string(d)))
	}
	return strings.Join(parts, ",")
}

func (l *delimList) Set(v string) error {
	s, err := strconv.Unquote(`"` + strings.ReplaceAll(v, `"`, `\"`) + `"`)
	if err != nil {
		return errors.Wrap(err, "invalid delimiter")
	}
	if s == "" {
		return errors.New("empty delimiter")
	}
	*l = append(*l, []byte(s))
	return nil
}

func main() {
	var delims delimList
	flag.Var(&delims, "delim", "record delimiter, may be repeated (Go escapes allowed e.g. \\r\\n); none means drain to end")
	inPath := flag.String("input", "", "input file path, stdin if empty")
	outPath := flag.String("output", "", "output file path, stdout if empty")
	modeStr := flag.String("mode", "earliest", "tie-break between delimiters matching at one offset: earliest, shortest or longest")
	include := flag.Bool("include", false, "include the matched delimiter in each record")
	delay := flag.Duration("delay", 0, "minimum delay between record writes")
	logPath := flag.String("log", "", "log file path, stderr if empty")
	showVersion := flag.Bool("version", false, "show version")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Log to a rotated file when a path is given, otherwise to stderr.
	var logSink io.Writer = os.Stderr
	if *logPath != "" {
		logSink = &lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
	}
	log := logging.New(logVerbosity, logSink, logSuppress)

	var mode scan.Mode
	switch *modeStr {
	case "earliest":
		mode = scan.ModeEarliest
	case "shortest":
		mode = scan.ModeShortest
	case "longest":
		mode = scan.ModeLongest
	default:
		log.Fatal("unknown matching mode", "mode", *modeStr)
	}

	src := io.Reader(os.Stdin)
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatal("could not open input", "error", err.Error())
		}
		defer f.Close()
		src = f
	}

	dst := io.Writer(os.Stdout)
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatal("could not create output", "error", err.Error())
		}
		defer f.Close()
		dst = f
	}

	log.Info("starting streamcut", "version", version, "delims", delims.String(), "mode", *modeStr)

	err := scan.Lex(dst, src, *delay, delims, mode, *include)
	if err != nil && err != io.EOF {
		log.Fatal("lex failed", "error", err.Error())
	}
	log.Info("stream exhausted")
}
