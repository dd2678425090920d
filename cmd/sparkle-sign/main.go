package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/willabides/kongplete"

	"github.com/d2verb/sparklesign/internal/ui"
)

type CLI struct {
	Config string `help:"Config file (default: ~/.sparkle-sign/config.yaml)" type:"path" placeholder:"PATH"`

	Sign      SignCmd      `cmd:"" help:"Sign a file and print its sparkle:edSignature"`
	PublicKey PublicKeyCmd `cmd:"" name:"public-key" help:"Print the SUPublicEDKey for a private key"`
	Logs      LogsCmd      `cmd:"" help:"Show the signing audit log"`
	Version   VersionCmd   `cmd:"" help:"Show version"`

	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI. Command output goes to out; errors, usage and status
// lines go to errOut.
func run(args []string, out, errOut io.Writer) int {
	stdout = out
	ui.Output = errOut

	cli := CLI{}
	parser := kong.Must(&cli,
		kong.Name("sparkle-sign"),
		kong.Description("Ed25519 signatures for Sparkle updates"),
		kong.Writers(out, errOut),
		kong.UsageOnError(),
	)

	kongplete.Complete(parser, completionOptions()...)

	ctx, err := parser.Parse(args)
	if err != nil {
		parser.Errorf("%s", err)
		return exitError
	}

	s, err := loadSettings(cli.Config)
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitError
	}
	defer s.Close()

	if err := ctx.Run(s); err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return exitCode(err)
	}
	return exitSuccess
}
