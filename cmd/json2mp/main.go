// Copyright 2026 The mpnode Authors
// SPDX-License-Identifier: Apache-2.0

// Command json2mp reads a JSON document from standard input and writes
// the equivalent MessagePack bytes to standard output. The input may
// use JSON-with-comments (// line comments, /* block comments */,
// trailing commas): it is stripped to plain JSON before parsing.
//
// json2mp does not parse hex strings back into Blob or Ext nodes; a
// JSON string that happens to look like hex is indistinguishable from
// one that is hex-encoded binary, so the binary kinds do not survive a
// round trip through JSON.
//
// json2mp accepts no flags or environment variables besides -h/--help,
// and terminates on end-of-input. It exits 1 and logs a diagnostic line
// to stderr if the input is not valid JSON.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"github.com/tidwall/jsonc"

	"github.com/mpnode/msgpack/internal/cliutil"
	"github.com/mpnode/msgpack/lib/msgpack"
)

func main() {
	flags := pflag.NewFlagSet("json2mp", pflag.ContinueOnError)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: json2mp < input.json > output.msgpack")
		fmt.Fprintln(os.Stderr, "reads a JSON (or JSON-with-comments) document on stdin, writes MessagePack bytes on stdout")
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := cliutil.NewLogger()

	if err := run(os.Stdin, os.Stdout); err != nil {
		logger.Error("json2mp failed", "error", err.Error(), "category", string(cliutil.Category(err)))
		os.Exit(1)
	}
}

func run(in io.Reader, out io.Writer) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return cliutil.Internal("read stdin: %w", err)
	}

	stripped := jsonc.ToJSON(data)

	dec := json.NewDecoder(bytes.NewReader(stripped))
	dec.UseNumber()

	root, err := decodeJSONValue(dec)
	if err != nil {
		return cliutil.Validation("parse JSON: %w", err)
	}

	packed, err := msgpack.Pack(root)
	if err != nil {
		return cliutil.Internal("encode msgpack: %w", err)
	}

	_, err = out.Write(packed)
	return err
}
