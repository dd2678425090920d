package signer

import (
	"crypto/ecdh"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	encoding_asn1 "encoding/asn1"
	"encoding/base64"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	"golang.org/x/crypto/cryptobyte/asn1"
	"golang.org/x/crypto/ssh"
)

// PEM block types understood by ParsePrivateKey.
const (
	blockPKCS8          = "PRIVATE KEY"
	blockPKCS8Encrypted = "ENCRYPTED PRIVATE KEY"
	blockPKCS1          = "RSA PRIVATE KEY"
	blockSEC1           = "EC PRIVATE KEY"
	blockDSA            = "DSA PRIVATE KEY"
	blockOpenSSH        = "OPENSSH PRIVATE KEY"
)

// LoadPrivateKey reads an unencrypted PEM private key from path and returns it
// if it is an Ed25519 key.
func LoadPrivateKey(path string) (ed25519.PrivateKey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &KeyLoadError{Path: path, Err: pathCause(err)}
	}

	key, err := ParsePrivateKey(data)
	if err != nil {
		var keyLoad *KeyLoadError
		if errors.As(err, &keyLoad) {
			keyLoad.Path = path
		}
		var keyType *KeyTypeError
		if errors.As(err, &keyType) {
			keyType.Path = path
		}
		return nil, err
	}
	return key, nil
}

// ParsePrivateKey extracts an Ed25519 private key from PEM data.
// Supports PKCS#8, the raw 32-byte seed layout and OpenSSH keys. Keys of any
// other algorithm are rejected with a KeyTypeError. Blocks that carry no
// private key, such as the EC PARAMETERS block openssl writes ahead of an EC
// key, are skipped.
func ParsePrivateKey(pemData []byte) (ed25519.PrivateKey, error) {
	var skipped string
	rest := pemData
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if !isKeyBlock(block.Type) {
			if skipped == "" {
				skipped = block.Type
			}
			continue
		}
		return parseKeyBlock(block)
	}

	if skipped != "" {
		return nil, &KeyLoadError{Err: fmt.Errorf("unsupported PEM block type %q", skipped)}
	}
	return nil, &KeyLoadError{Err: errors.New("no PEM data found")}
}

func isKeyBlock(blockType string) bool {
	switch blockType {
	case blockPKCS8, blockPKCS8Encrypted, blockPKCS1, blockSEC1, blockDSA, blockOpenSSH:
		return true
	}
	return false
}

func parseKeyBlock(block *pem.Block) (ed25519.PrivateKey, error) {
	if block.Type == blockPKCS8Encrypted || strings.Contains(block.Headers["Proc-Type"], "ENCRYPTED") {
		return nil, &KeyLoadError{Err: errEncrypted}
	}

	switch block.Type {
	case blockPKCS8:
		return parsePKCS8(block.Bytes)
	case blockPKCS1:
		if _, err := x509.ParsePKCS1PrivateKey(block.Bytes); err != nil {
			return nil, &KeyLoadError{Err: fmt.Errorf("parse PKCS#1 key: %w", err)}
		}
		return nil, &KeyTypeError{Algorithm: "RSA"}
	case blockSEC1:
		if _, err := x509.ParseECPrivateKey(block.Bytes); err != nil {
			return nil, &KeyLoadError{Err: fmt.Errorf("parse EC key: %w", err)}
		}
		return nil, &KeyTypeError{Algorithm: "ECDSA"}
	case blockDSA:
		return nil, &KeyTypeError{Algorithm: "DSA"}
	default:
		return parseOpenSSH(pem.EncodeToMemory(block))
	}
}

func parsePKCS8(der []byte) (ed25519.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err == nil {
		return asEd25519(key)
	}

	// Fall back to raw 32-byte seed
	if len(der) == ed25519.SeedSize {
		return ed25519.NewKeyFromSeed(der), nil
	}

	// A well-formed PKCS#8 structure for an algorithm x509 does not know.
	if oid, ok := pkcs8Algorithm(der); ok && !oid.Equal(oidEd25519) {
		return nil, &KeyTypeError{Algorithm: algorithmName(oid)}
	}

	return nil, &KeyLoadError{Err: fmt.Errorf("unsupported key format (PKCS#8 parse failed: %v, raw seed requires %d bytes, got %d)", err, ed25519.SeedSize, len(der))}
}

func parseOpenSSH(data []byte) (ed25519.PrivateKey, error) {
	key, err := ssh.ParseRawPrivateKey(data)
	if err != nil {
		var missing *ssh.PassphraseMissingError
		if errors.As(err, &missing) {
			return nil, &KeyLoadError{Err: errEncrypted}
		}
		return nil, &KeyLoadError{Err: fmt.Errorf("parse OpenSSH key: %w", err)}
	}

	// x/crypto/ssh hands Ed25519 keys back by pointer.
	if k, ok := key.(*ed25519.PrivateKey); ok {
		return *k, nil
	}
	return asEd25519(key)
}

var oidEd25519 = encoding_asn1.ObjectIdentifier{1, 3, 101, 112}

// Private key algorithms x509.ParsePKCS8PrivateKey may not understand.
var pkcs8Algorithms = map[string]string{
	"1.2.840.113549.1.1.1":  "RSA",
	"1.2.840.113549.1.1.10": "RSASSA-PSS",
	"1.2.840.10045.2.1":     "ECDSA",
	"1.2.840.10040.4.1":     "DSA",
	"1.3.101.110":           "X25519",
	"1.3.101.111":           "X448",
	"1.3.101.113":           "Ed448",
}

// pkcs8Algorithm reads the AlgorithmIdentifier OID of a PrivateKeyInfo:
//
//	SEQUENCE { version INTEGER, algorithm SEQUENCE { OID, params ANY OPTIONAL }, ... }
func pkcs8Algorithm(der []byte) (encoding_asn1.ObjectIdentifier, bool) {
	input := cryptobyte.String(der)
	var (
		info, algID cryptobyte.String
		version     int64
		oid         encoding_asn1.ObjectIdentifier
	)
	if !input.ReadASN1(&info, asn1.SEQUENCE) ||
		!info.ReadASN1Integer(&version) ||
		!info.ReadASN1(&algID, asn1.SEQUENCE) ||
		!algID.ReadASN1ObjectIdentifier(&oid) {
		return nil, false
	}
	return oid, true
}

func algorithmName(oid encoding_asn1.ObjectIdentifier) string {
	if name, ok := pkcs8Algorithms[oid.String()]; ok {
		return name
	}
	return "OID " + oid.String()
}

// asEd25519 is the algorithm gate: a closed switch over the key types the
// standard parsers can return.
func asEd25519(key any) (ed25519.PrivateKey, error) {
	switch k := key.(type) {
	case ed25519.PrivateKey:
		return k, nil
	case *rsa.PrivateKey:
		return nil, &KeyTypeError{Algorithm: "RSA"}
	case *ecdsa.PrivateKey:
		return nil, &KeyTypeError{Algorithm: "ECDSA " + k.Curve.Params().Name}
	case *ecdh.PrivateKey:
		return nil, &KeyTypeError{Algorithm: "ECDH"}
	default:
		return nil, &KeyTypeError{Algorithm: fmt.Sprintf("%T", key)}
	}
}

// KeyInfo describes the public half of a signing key.
type KeyInfo struct {
	PublicKey   string // standard base64, the SUPublicEDKey value
	Fingerprint string // hex SHA-256 of the raw public key
}

// Describe returns the public key information for key.
func Describe(key ed25519.PrivateKey) KeyInfo {
	pub := key.Public().(ed25519.PublicKey)
	sum := sha256.Sum256(pub)
	return KeyInfo{
		PublicKey:   base64.StdEncoding.EncodeToString(pub),
		Fingerprint: hex.EncodeToString(sum[:]),
	}
}
