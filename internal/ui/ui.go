// Package ui provides formatted output utilities for the CLI.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Color functions for consistent styling.
var (
	Green  = color.New(color.FgGreen).SprintFunc()
	Yellow = color.New(color.FgYellow).SprintFunc()
	Blue   = color.New(color.FgBlue).SprintFunc()
	Cyan   = color.New(color.FgCyan).SprintFunc()
	Dim    = color.New(color.Faint).SprintFunc() // Dimmed text (more readable than gray)
	Bold   = color.New(color.Bold).SprintFunc()
)

// Output is the destination for status messages.
// Defaults to os.Stderr so stdout carries only machine-readable lines.
var Output io.Writer = os.Stderr

// PrintSuccess prints a success message with green checkmark.
func PrintSuccess(message string) {
	fmt.Fprintf(Output, "%s %s\n", Green("✓"), message)
}

// PrintWarning prints a warning message with yellow exclamation.
func PrintWarning(message string) {
	fmt.Fprintf(Output, "%s %s\n", Yellow("⚠"), message)
}

// PrintInfo prints an info message with blue dot.
func PrintInfo(message string) {
	fmt.Fprintf(Output, "%s %s\n", Blue("•"), message)
}

// SignedDetails describes a completed signing for display.
type SignedDetails struct {
	File        string
	Size        string
	Fingerprint string
}

// PrintSigned prints a summary of a signing operation.
func PrintSigned(d SignedDetails) {
	PrintSuccess(fmt.Sprintf("Signed %s %s", Cyan(d.File), Dim("("+d.Size+")")))
	fmt.Fprintf(Output, "  %s %s\n", Bold("Key:"), Dim(d.Fingerprint))
}

// KeyDetails contains public key information for display.
type KeyDetails struct {
	Path        string
	PublicKey   string
	Fingerprint string
}

// PrintKeyDetails prints key details in a formatted style.
func PrintKeyDetails(w io.Writer, k KeyDetails) {
	fmt.Fprintf(w, "%s %s\n", Bold("Key:"), Blue(k.Path))
	fmt.Fprintf(w, "%s %s\n", Bold("SUPublicEDKey:"), Green(k.PublicKey))
	fmt.Fprintf(w, "%s %s\n", Bold("Fingerprint:"), Dim(k.Fingerprint))
}
