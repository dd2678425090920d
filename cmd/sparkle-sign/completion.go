package main

import (
	"github.com/posener/complete"
	"github.com/willabides/kongplete"
)

// completionOptions registers the predictors referenced by `predictor:` tags.
func completionOptions() []kongplete.Option {
	return []kongplete.Option{
		kongplete.WithPredictor("pem", newKeyPredictor()),
		kongplete.WithPredictor("file", complete.PredictFiles("*")),
	}
}

// newKeyPredictor completes private key files. OpenSSH keys usually have no
// extension, so the common id_ed25519 name is offered as well.
func newKeyPredictor() complete.Predictor {
	return complete.PredictOr(
		complete.PredictFiles("*.pem"),
		complete.PredictFiles("*.key"),
		complete.PredictFiles("id_ed25519"),
	)
}
