package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/commands/decode"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/commands/encode"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/commands/fields"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/commands/flags"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/commands/security"
)

// initCommands returns the command factories keyed by command path.
func initCommands(log hclog.Logger, ui cli.Ui) map[string]cli.CommandFactory {
	b := base.NewCommand(log, ui)

	return map[string]cli.CommandFactory{
		"decode": func() (cli.Command, error) {
			return &decode.Command{Command: b}, nil
		},
		"encode": func() (cli.Command, error) {
			return &encode.Command{Command: b}, nil
		},
		"flags": func() (cli.Command, error) {
			return &flags.Command{Command: b}, nil
		},
		"fields": func() (cli.Command, error) {
			return &fields.Command{Command: b}, nil
		},
		"security": func() (cli.Command, error) {
			return &security.Command{Command: b}, nil
		},
		"security get": func() (cli.Command, error) {
			return &security.GetCommand{Command: b}, nil
		},
		"security set": func() (cli.Command, error) {
			return &security.SetCommand{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &versionCommand{Command: b}, nil
		},
	}
}
