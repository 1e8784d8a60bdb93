// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// passphraseEnv lets scripts supply the passphrase without a terminal.
const passphraseEnv = "VAULTCTL_PASSPHRASE"

// TerminalPassphrase reads the passphrase from VAULTCTL_PASSPHRASE or, when
// unset, from the controlling terminal without echo.
func TerminalPassphrase(prompt string, confirm bool) (string, error) {
	if passphrase, ok := os.LookupEnv(passphraseEnv); ok {
		if passphrase == "" {
			return "", ErrEmptyPassphrase
		}
		return passphrase, nil
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoTerminal
	}

	passphrase, err := readHidden(fd, prompt)
	if err != nil {
		return "", err
	}
	if passphrase == "" {
		return "", ErrEmptyPassphrase
	}

	if confirm {
		again, err := readHidden(fd, "Repeat passphrase: ")
		if err != nil {
			return "", err
		}
		if again != passphrase {
			return "", ErrPassphraseMismatch
		}
	}

	return passphrase, nil
}

func readHidden(fd int, prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read passphrase: %w", err)
	}
	return string(raw), nil
}
