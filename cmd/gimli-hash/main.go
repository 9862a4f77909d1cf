// Copyright (c) 2019 Tesla Motors, Inc. All rights reserved.
// Use of this source code is governed by an Apache-2.0-style
// license that can be found in the LICENSE file.

// Command gimli-hash prints the lowercase hex digest of its arguments'
// files, or of stdin when given none, matching the reference CLI's
// output format: the digest, two spaces, then the filename (or "-" for
// stdin).
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"lithium"
	"lithium/internal/field"
)

func hashReader(r io.Reader) (string, error) {
	h := lithium.NewHasher()
	buf := make([]byte, 4096)
	br := bufio.NewReader(r)
	for {
		n, err := br.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil, lithium.HashSize)), nil
}

func main() {
	verbose := flag.Bool("v", false, "report whether the host CPU exposes a fast-multiply instruction")
	flag.Parse()

	if *verbose {
		fmt.Fprintf(os.Stderr, "gimli-hash: fast-multiply capability: %v\n", field.HasFastMultiply)
	}

	args := flag.Args()
	if len(args) == 0 {
		digest, err := hashReader(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gimli-hash: read:", err)
			os.Exit(1)
		}
		fmt.Printf("%s  -\n", digest)
		return
	}

	for _, name := range args {
		f, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gimli-hash: open:", err)
			os.Exit(1)
		}
		digest, err := hashReader(f)
		f.Close()
		if err != nil {
			fmt.Fprintln(os.Stderr, "gimli-hash: read:", err)
			os.Exit(1)
		}
		fmt.Printf("%s  %s\n", digest, name)
	}
}
