// Copyright 2026 The Roomctl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadToken prompts for a bearer token with terminal echo disabled,
// falling back to a plain line read when stdin is not a terminal
// (piped input in scripts and tests).
func ReadToken(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading token: %w", err)
		}
		return strings.TrimSpace(string(raw)), nil
	}

	return readLine(os.Stdin)
}

// ReadLineDefault prompts on stderr and reads one line from reader,
// returning fallback when the user submits an empty line. Used by the
// reschedule command to offer the booking's current window as the
// default answer.
func ReadLineDefault(reader io.Reader, prompt, fallback string) (string, error) {
	if fallback != "" {
		fmt.Fprintf(os.Stderr, "%s [%s]: ", prompt, fallback)
	} else {
		fmt.Fprintf(os.Stderr, "%s: ", prompt)
	}

	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	if line == "" {
		return fallback, nil
	}
	return line, nil
}

func readLine(reader io.Reader) (string, error) {
	scanner := bufio.NewScanner(reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(scanner.Text()), nil
}
