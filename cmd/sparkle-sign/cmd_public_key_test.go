package main

import (
	"crypto/ed25519"
	"encoding/base64"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPublicKeyCmd_Bare(t *testing.T) {
	// Arrange
	out := captureStdout(t)
	keyPath, priv := writeEd25519Key(t, t.TempDir())

	// Act
	err := (&PublicKeyCmd{Key: keyPath, Bare: true}).Run(newTestSettings(t))

	// Assert
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := base64.StdEncoding.EncodeToString(priv.Public().(ed25519.PublicKey)) + "\n"
	if out.String() != want {
		t.Errorf("stdout = %q, want %q", out.String(), want)
	}
}

func TestPublicKeyCmd_Details(t *testing.T) {
	// Arrange
	color.NoColor = true
	defer func() { color.NoColor = false }()
	out := captureStdout(t)
	keyPath, priv := writeEd25519Key(t, t.TempDir())

	// Act
	err := (&PublicKeyCmd{Key: keyPath}).Run(newTestSettings(t))

	// Assert
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	output := out.String()
	pub := base64.StdEncoding.EncodeToString(priv.Public().(ed25519.PublicKey))
	if !strings.Contains(output, "SUPublicEDKey: "+pub) {
		t.Errorf("output missing public key: %q", output)
	}
	if !strings.Contains(output, "Key: "+keyPath) {
		t.Errorf("output missing key path: %q", output)
	}
}

func TestPublicKeyCmd_MissingKey(t *testing.T) {
	captureStdout(t)

	err := (&PublicKeyCmd{Key: filepath.Join(t.TempDir(), "missing.pem")}).Run(newTestSettings(t))

	if err == nil {
		t.Fatal("expected error for missing key")
	}
}
