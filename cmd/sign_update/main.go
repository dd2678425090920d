// Command sign_update prints a Sparkle Ed25519 signature for a file.
// Usage: sign_update <file> -f <private_key>
// Output: sparkle:edSignature="<base64>"
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/d2verb/sparklesign/internal/signer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {
	a, err := parseArgs(argv)
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stdout, usageLine)
		return 1
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	sig, err := signer.Sign(a.File, a.Key)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintln(stdout, signer.FormatSparkle(sig))
	return 0
}
