// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tool abstracts external binary execution behind a small seam so
// stages that shell out (pandoc, vale) can be tested without the tools
// installed.
package tool

import (
	"bytes"
	"io"
	"os/exec"
)

// Runner executes external binaries. The production implementation is
// backed by os/exec; tests substitute fakes.
type Runner interface {
	// LookPath reports whether the binary exists on PATH.
	LookPath(bin string) (string, error)

	// Run executes the binary and returns captured stdout and stderr.
	// A non-zero exit is returned as the error alongside any output the
	// tool produced.
	Run(name string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)
}

type osRunner struct{}

func (osRunner) LookPath(bin string) (string, error) {
	return exec.LookPath(bin)
}

func (osRunner) Run(name string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	cmd := exec.Command(name, args...)
	var out, errBuf bytes.Buffer
	cmd.Stdin = stdin
	cmd.Stdout = &out
	cmd.Stderr = &errBuf
	err := cmd.Run()
	return out.Bytes(), errBuf.Bytes(), err
}

// Default returns the os/exec-backed runner.
func Default() Runner { return osRunner{} }
