package decode

import (
	"flag"
	"fmt"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagKind   string
	flagFormat string
}

func (c *Command) Synopsis() string {
	return "Decode a permission or property level"
}

func (c *Command) Help() string {
	return `Usage: gsperm decode [options] LEVEL

  Decodes a level into the flags it enables. LEVEL may be decimal or use a
  0b, 0o or 0x prefix. Bits outside the named flags are ignored and the
  normalized level is reported alongside the input.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("decode", flag.ContinueOnError))

	f.StringVar(
		&c.flagKind, "kind", base.KindArchive,
		"Level kind: archive, inbox or field.",
	)
	f.StringVar(
		&c.flagFormat, "format", base.FormatText,
		"Output format: text, json or yaml.",
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

	if flags.NArg() != 1 {
		ui.Error("decode requires exactly one LEVEL argument")
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

	result, err := kind.Parse(flags.Arg(0))
	if err != nil {
		ui.Error(fmt.Sprintf("error decoding level: %v", err))
		return 1
	}

	if err := base.Render(ui, c.flagFormat, result, result.String); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}
