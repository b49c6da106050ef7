package security

import (
	"github.com/mitchellh/cli"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Read or change archive and inbox security"
}

func (c *Command) Help() string {
	return `Usage: gsperm security <subcommand> [options] [args]

  This command groups subcommands for reading and assigning archive and
  inbox permissions on a GlobalSearch server.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
