// Package signer produces Ed25519 signatures for Sparkle update archives.
package signer

import (
	"crypto"
	"crypto/ed25519"
	"encoding/base64"
	"fmt"
	"os"
)

// Sign loads the Ed25519 key at keyPath, signs the full contents of filePath
// and returns the signature as standard padded base64.
func Sign(filePath, keyPath string) (string, error) {
	key, err := LoadPrivateKey(keyPath)
	if err != nil {
		return "", err
	}

	data, err := ReadFile(filePath)
	if err != nil {
		return "", err
	}

	return SignBytes(key, data)
}

// ReadFile reads the whole file to sign.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileReadError{Path: path, Err: pathCause(err)}
	}
	return data, nil
}

// SignBytes signs data with pure Ed25519 (no pre-hash) and encodes the result.
func SignBytes(key ed25519.PrivateKey, data []byte) (string, error) {
	if len(key) != ed25519.PrivateKeySize {
		return "", &SigningError{Err: fmt.Errorf("bad private key length %d", len(key))}
	}

	sig, err := key.Sign(nil, data, crypto.Hash(0))
	if err != nil {
		return "", &SigningError{Err: err}
	}
	return base64.StdEncoding.EncodeToString(sig), nil
}

// FormatSparkle returns the appcast attribute for an encoded signature.
func FormatSparkle(encoded string) string {
	return fmt.Sprintf("sparkle:edSignature=%q", encoded)
}

// FormatSparkleWithLength also includes the enclosure length attribute.
func FormatSparkleWithLength(encoded string, length int64) string {
	return fmt.Sprintf("sparkle:edSignature=%q length=\"%d\"", encoded, length)
}
