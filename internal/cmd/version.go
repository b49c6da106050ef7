package cmd

import (
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/version"
)

type versionCommand struct {
	*base.Command
}

func (c *versionCommand) Synopsis() string {
	return "Print the version"
}

func (c *versionCommand) Help() string {
	return "Usage: gsperm version"
}

func (c *versionCommand) Run(args []string) int {
	c.UI.Output(version.String())
	return 0
}
