package main

import "errors"

const usageLine = "Usage: sign_update <file> -f <private_key>"

var (
	// errUsage means the file argument or the whole flag pair is absent.
	errUsage = errors.New(usageLine)
	// errKeyFlag means no -f value was found.
	errKeyFlag = errors.New("Private key path required with -f flag")
)

type args struct {
	File string
	Key  string
}

// parseArgs scans the arguments after the program name. The first argument
// is the file to sign; the first "-f" after it that has a following value
// names the key. Anything else is ignored.
func parseArgs(argv []string) (args, error) {
	if len(argv) < 2 || argv[0] == "-f" {
		return args{}, errUsage
	}

	a := args{File: argv[0]}
	for i := 1; i < len(argv)-1; i++ {
		if argv[i] == "-f" {
			a.Key = argv[i+1]
			break
		}
	}
	if a.Key == "" {
		return args{}, errKeyFlag
	}
	return a, nil
}
