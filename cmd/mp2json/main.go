// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

// Command mp2json reads a MessagePack byte stream from standard input
// and writes pretty-printed JSON to standard output. The input may hold
// more than one concatenated top-level value; when it does, the output
// is a JSON array of them in decode order.
//
// mp2json accepts no flags or environment variables besides -h/--help,
// and terminates on end-of-input. It exits 1 and logs a diagnostic line
// to stderr if the input is not valid MessagePack.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/mpnode/msgpack/internal/cliutil"
	"github.com/mpnode/msgpack/lib/msgpack"
)

func main() {
	flags := pflag.NewFlagSet("mp2json", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: mp2json < input.msgpack > output.json")
		fmt.Fprintln(os.Stderr, "reads a MessagePack byte stream on stdin, writes pretty-printed JSON on stdout")
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := cliutil.NewLogger()

	if err := run(os.Stdin, os.Stdout); err != nil {
		logger.Error("mp2json failed", "error", err.Error(), "category", string(cliutil.Category(err)))
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return cliutil.Internal("read stdin: %w", err)
	}

	root, count, err := msgpack.Unpack(data)
	if err != nil {
		var allocErr *msgpack.AllocationError
		if errors.As(err, &allocErr) {
			return cliutil.Internal("decode msgpack: %w", err)
		}
		return cliutil.Validation("decode msgpack: %w", err)
	}

	value, err := treeToJSON(root, count)
	if err != nil {
		return cliutil.Internal("convert to JSON: %w", err)
	}

	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return cliutil.Internal("encode JSON: %w", err)
	}

	_, err = fmt.Fprintln(out, string(encoded))
	return err
}
