package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	rest "github.com/mutablelogic/go-triton/pkg/rest"
	version "github.com/mutablelogic/go-triton/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	Endpoint string        `name:"endpoint" env:"TRITON_URL" default:"http://localhost:8000" help:"Inference server endpoint"`
	Timeout  time.Duration `name:"timeout" help:"Request timeout"`

	// Context
	ctx context.Context
}

type CLI struct {
	Globals

	// Commands
	Live    LiveCmd    `cmd:"" help:"Check the server is live"`
	Infer   InferCmd   `cmd:"" help:"Run inference against a model"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("Inference server command line interface"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// Client returns a REST client for the configured endpoint
func (globals *Globals) Client() (*rest.Client, error) {
	opts := []rest.ClientOpt{
		rest.OptUserAgent(execName() + "/" + version.Version()),
	}
	if globals.Timeout > 0 {
		opts = append(opts, rest.OptTimeout(globals.Timeout))
	}
	return rest.New(globals.Endpoint, opts...)
}

func execName() string {
	name, err := os.Executable()
	if err != nil {
		return "triton"
	}
	return filepath.Base(name)
}
