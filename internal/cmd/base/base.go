package base

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/config"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/globalsearch"
)

// Command holds what every subcommand shares.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is the filesystem config and flag files are read from.
	Fs afero.Fs
}

// NewCommand returns a Command reading from the OS filesystem.
func NewCommand(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}
}

// LoadConfig reads the configuration file and applies its log level.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config flag is required")
	}

	cfg, err := config.Load(c.Fs, path)
	if err != nil {
		return nil, err
	}
	c.Log.SetLevel(cfg.Level())

	return cfg, nil
}

// NewClient builds a GlobalSearch client from the server block of cfg.
func (c *Command) NewClient(cfg *config.Config) (*globalsearch.Client, error) {
	clientCfg, err := cfg.ClientConfig()
	if err != nil {
		return nil, err
	}
	return globalsearch.NewClient(clientCfg, globalsearch.WithLogger(c.Log))
}

// Context returns a context that is canceled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// FlagSet wraps flag.FlagSet to render flag help in the command help text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet returns a FlagSet that reports parse errors to the caller
// instead of printing them.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	f.SetOutput(io.Discard)
	return &FlagSet{FlagSet: f}
}

// Help returns the flag usage, suitable for appending to Command.Help.
func (f *FlagSet) Help() string {
	var out bytes.Buffer
	f.VisitAll(func(fl *flag.Flag) {
		fmt.Fprintf(&out, "\n\n  -%s", fl.Name)
		if name, _ := flag.UnquoteUsage(fl); name != "" {
			fmt.Fprintf(&out, "=<%s>", name)
		}
		if fl.DefValue != "" && fl.DefValue != "false" && fl.DefValue != "0" {
			fmt.Fprintf(&out, " (default: %s)", fl.DefValue)
		}
		_, usage := flag.UnquoteUsage(fl)
		fmt.Fprintf(&out, "\n      %s", strings.ReplaceAll(usage, "\n", "\n      "))
	})
	if out.Len() == 0 {
		return ""
	}
	return "\n\nOptions:" + out.String()
}
