package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"folio/internal/errors"

	"golang.org/x/term"
)

const passwordEnv = "FOLIO_ADMIN_PASSWORD"

// Test seams for the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// resolvePassword takes the flag value, then the environment, then prompts
// twice on an interactive terminal.
func resolvePassword(w io.Writer, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if fromEnv := os.Getenv(passwordEnv); fromEnv != "" {
		return fromEnv, nil
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		return "", errors.Errorf("no password given: use --password or %s", passwordEnv)
	}

	first, err := promptPassword(w, fd, "Password: ")
	if err != nil {
		return "", err
	}
	second, err := promptPassword(w, fd, "Confirm password: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passwords do not match")
	}
	if first == "" {
		return "", errors.New("password must not be empty")
	}

	return first, nil
}

func promptPassword(w io.Writer, fd int, prompt string) (string, error) {
	if _, err := fmt.Fprint(w, prompt); err != nil {
		return "", errors.WithStack(err)
	}
	secret, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", errors.Wrap(err, "failed to read password")
	}

	return strings.TrimRight(string(secret), "\r\n"), nil
}
