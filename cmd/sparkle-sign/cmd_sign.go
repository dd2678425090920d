package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/d2verb/sparklesign/internal/logging"
	"github.com/d2verb/sparklesign/internal/signer"
	"github.com/d2verb/sparklesign/internal/ui"
)

type SignCmd struct {
	File    string `arg:"" help:"File to sign" predictor:"file"`
	Key     string `short:"f" help:"PEM-encoded Ed25519 private key (default: key_path from config)" predictor:"pem" placeholder:"PATH"`
	Length  bool   `help:"Also print the enclosure length attribute"`
	Verbose bool   `short:"v" help:"Print a summary to stderr"`
}

func (c *SignCmd) Run(s *settings) error {
	keyPath, err := resolveKeyPath(c.Key, s)
	if err != nil {
		return err
	}

	key, err := signer.LoadPrivateKey(keyPath)
	if err != nil {
		return c.fail(s, err)
	}

	data, err := signer.ReadFile(c.File)
	if err != nil {
		return c.fail(s, err)
	}

	sig, err := signer.SignBytes(key, data)
	if err != nil {
		return c.fail(s, err)
	}

	info := signer.Describe(key)
	sum := sha256.Sum256(data)
	logging.LogSign(s.logger, logging.SignEvent{
		File:        c.File,
		Size:        int64(len(data)),
		SHA256:      hex.EncodeToString(sum[:]),
		Fingerprint: info.Fingerprint,
	})

	if c.Length {
		fmt.Fprintln(stdout, signer.FormatSparkleWithLength(sig, int64(len(data))))
	} else {
		fmt.Fprintln(stdout, signer.FormatSparkle(sig))
	}

	if c.Verbose {
		ui.PrintSigned(ui.SignedDetails{
			File:        c.File,
			Size:        formatSize(int64(len(data))),
			Fingerprint: info.Fingerprint,
		})
	}
	return nil
}

func (c *SignCmd) fail(s *settings, err error) error {
	logging.LogSign(s.logger, logging.SignEvent{
		File:    c.File,
		ErrKind: signer.KindOf(err).String(),
		Err:     err,
	})
	return mapSignerError(err)
}
