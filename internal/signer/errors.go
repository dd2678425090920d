package signer

import (
	"errors"
	"fmt"
	"io/fs"
)

// Kind classifies signer failures.
type Kind int

const (
	KindNone Kind = iota
	KindKeyLoad
	KindKeyType
	KindFileRead
	KindSigning
	KindUnknown
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindKeyLoad:
		return "key_load"
	case KindKeyType:
		return "key_type"
	case KindFileRead:
		return "file_read"
	case KindSigning:
		return "signing"
	default:
		return "unknown"
	}
}

// KeyLoadError indicates the private key file could not be read or decoded.
type KeyLoadError struct {
	Path string // empty when parsing in-memory data
	Err  error
}

func (e *KeyLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load private key: %v", e.Err)
	}
	return fmt.Sprintf("load private key %s: %v", e.Path, e.Err)
}

func (e *KeyLoadError) Unwrap() error {
	return e.Err
}

// KeyTypeError indicates the key decoded fine but is not an Ed25519 key.
type KeyTypeError struct {
	Path      string
	Algorithm string
}

func (e *KeyTypeError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("key is not an Ed25519 private key (got %s)", e.Algorithm)
	}
	return fmt.Sprintf("key %s is not an Ed25519 private key (got %s)", e.Path, e.Algorithm)
}

// FileReadError indicates the file to sign could not be read.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("read file %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// SigningError indicates the signing primitive itself failed.
type SigningError struct {
	Err error
}

func (e *SigningError) Error() string {
	return fmt.Sprintf("sign: %v", e.Err)
}

func (e *SigningError) Unwrap() error {
	return e.Err
}

// errEncrypted is wrapped by KeyLoadError when the key needs a passphrase.
var errEncrypted = errors.New("key is encrypted; only unencrypted keys are supported")

// IsEncrypted reports whether err was caused by a passphrase-protected key.
func IsEncrypted(err error) bool {
	return errors.Is(err, errEncrypted)
}

// pathCause strips the *fs.PathError wrapper so messages that already name
// the path do not repeat it.
func pathCause(err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		return pe.Err
	}
	return err
}

// KindOf returns the Kind of err, looking through wrapping.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	var (
		keyLoad  *KeyLoadError
		keyType  *KeyTypeError
		fileRead *FileReadError
		signing  *SigningError
	)
	switch {
	case errors.As(err, &keyLoad):
		return KindKeyLoad
	case errors.As(err, &keyType):
		return KindKeyType
	case errors.As(err, &fileRead):
		return KindFileRead
	case errors.As(err, &signing):
		return KindSigning
	default:
		return KindUnknown
	}
}
