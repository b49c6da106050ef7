package encode

import (
	"flag"
	"fmt"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagKind   string
	flagFormat string
	flagAll    bool
	flagFile   string
}

func (c *Command) Synopsis() string {
	return "Encode flag names into a level"
}

func (c *Command) Help() string {
	return `Usage: gsperm encode [options] [FLAG ...]

  Builds a level from flag names. Names are matched without regard to case
  or separators, so "full-api-access" and "FullAPIAccess" are the same flag.
  Run "gsperm flags -kind=KIND" to list the names of a kind.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("encode", flag.ContinueOnError))

	f.StringVar(
		&c.flagKind, "kind", base.KindArchive,
		"Level kind: archive, inbox or field.",
	)
	f.StringVar(
		&c.flagFormat, "format", base.FormatText,
		"Output format: text, json or yaml.",
	)
	f.BoolVar(
		&c.flagAll, "all", false,
		"Start from every flag enabled.",
	)
	f.StringVar(
		&c.flagFile, "file", "",
		"YAML file of flag assignments, applied before FLAG arguments.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if err := base.ValidateFormat(c.flagFormat); err != nil {
		ui.Error(err.Error())
		return 1
	}

	kind, err := base.LookupKind(c.flagKind)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	all := c.flagAll
	var values map[string]bool
	if c.flagFile != "" {
		ff, err := c.ReadFlagFile(c.flagFile)
		if err != nil {
			ui.Error(err.Error())
			return 1
		}
		all = all || ff.All
		values = ff.Flags
	}

	result, err := kind.Assign(all, values, flags.Args())
	if err != nil {
		ui.Error(fmt.Sprintf("error encoding flags: %v", err))
		return 1
	}

	if err := base.Render(ui, c.flagFormat, result, result.String); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
