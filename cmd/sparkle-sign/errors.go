package main

import (
	"errors"

	"github.com/d2verb/sparklesign/internal/signer"
	"github.com/d2verb/sparklesign/internal/ui"
)

// Exit codes for CLI commands. Every failure uses exitError so scripts that
// call sign_update can switch to sparkle-sign unchanged.
const (
	exitSuccess = 0
	exitError   = 1
)

// ExitError represents an error that should cause the process to exit with a specific code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

func errKeyRequired() *ExitError {
	return &ExitError{
		Code:    exitError,
		Message: "Private key path required with -f flag",
	}
}

// encryptedKeyHint is shown when the key needs a passphrase.
const encryptedKeyHint = "Hint: export an unencrypted copy, e.g. openssl pkey -in key.pem -out plain.pem"

// mapSignerError prints a hint for signer errors the user can fix and returns
// err unchanged.
func mapSignerError(err error) error {
	if signer.IsEncrypted(err) {
		ui.PrintWarning(encryptedKeyHint)
	}
	return err
}

// exitCode returns the process exit code for err.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return exitError
}
