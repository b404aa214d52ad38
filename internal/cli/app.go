// Package cli implements the uuidb64 command line tool: generating
// identifiers and converting them between the canonical base64 text form and
// the conventional hyphenated hex form.
package cli

import (
	"io"
	"log"
	"os"

	"github.com/maruel/subcommands"
)

// Version is reported as the service version of exported spans.
var Version = "v0.1.0"

// Exit codes.
const (
	ExitOK           = 0
	ExitInvalidInput = 1
	ExitUsage        = 2
	ExitOutput       = 3
)

type application struct {
	subcommands.DefaultApplication
	config *Config
	out    io.Writer
	err    io.Writer
	logger *log.Logger
}

// GetOut implements subcommands.Application.
func (a *application) GetOut() io.Writer { return a.out }

// GetErr implements subcommands.Application.
func (a *application) GetErr() io.Writer { return a.err }

// New returns the command line application writing to out and errOut.
func New(cfg *Config, out, errOut io.Writer) subcommands.Application {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &application{
		DefaultApplication: subcommands.DefaultApplication{
			Name:  "uuidb64",
			Title: "Generates and converts UUIDs in their compact URL-safe base64 form.",
			// Keep in alphabetical order of their name.
			Commands: []*subcommands.Command{
				cmdDecode,
				cmdEncode,
				subcommands.CmdHelp,
				cmdInspect,
				cmdNew,
			},
		},
		config: cfg,
		out:    out,
		err:    errOut,
		logger: log.New(errOut, "uuidb64: ", 0),
	}
}

// Main loads the configuration from the environment and runs the tool with
// the process arguments.
func Main() int {
	cfg, err := LoadConfig()
	if err != nil {
		log.New(os.Stderr, "uuidb64: ", 0).Printf("invalid configuration: %v", err)
		return ExitUsage
	}
	return subcommands.Run(New(cfg, os.Stdout, os.Stderr), os.Args[1:])
}
