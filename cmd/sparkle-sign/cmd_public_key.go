package main

import (
	"fmt"

	"github.com/d2verb/sparklesign/internal/signer"
	"github.com/d2verb/sparklesign/internal/ui"
)

type PublicKeyCmd struct {
	Key  string `short:"f" help:"PEM-encoded Ed25519 private key (default: key_path from config)" predictor:"pem" placeholder:"PATH"`
	Bare bool   `help:"Print only the base64 public key"`
}

func (c *PublicKeyCmd) Run(s *settings) error {
	keyPath, err := resolveKeyPath(c.Key, s)
	if err != nil {
		return err
	}

	key, err := signer.LoadPrivateKey(keyPath)
	if err != nil {
		return mapSignerError(err)
	}

	info := signer.Describe(key)
	if c.Bare {
		fmt.Fprintln(stdout, info.PublicKey)
		return nil
	}

	ui.PrintKeyDetails(stdout, ui.KeyDetails{
		Path:        keyPath,
		PublicKey:   info.PublicKey,
		Fingerprint: info.Fingerprint,
	})
	return nil
}
