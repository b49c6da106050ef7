package flags

import (
	"bytes"
	"flag"
	"fmt"
	"text/tabwriter"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagKind   string
	flagFormat string
}

func (c *Command) Synopsis() string {
	return "List the bit layout of a level kind"
}

func (c *Command) Help() string {
	return `Usage: gsperm flags [options]

  Lists every named flag of a kind with its bit position and value. Bit 0 is
  the most significant bit.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("flags", flag.ContinueOnError))

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

	if err := base.ValidateFormat(c.flagFormat); err != nil {
		ui.Error(err.Error())
		return 1
	}

	kind, err := base.LookupKind(c.flagKind)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	table := kind.Table()
	if err := base.Render(ui, c.flagFormat, table, func() string {
		return formatTable(table)
	}); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func formatTable(t *base.Table) string {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "BIT\tVALUE\tFLAG")
	for _, row := range t.Flags {
		fmt.Fprintf(tw, "%d\t%d\t%s\n", row.Bit, row.Value, row.Flag)
	}
	tw.Flush()

	fmt.Fprintf(&buf, "\n%s: %d bits, all flags = %d", t.Kind, t.Width, t.Mask)
	if len(t.Reserved) > 0 {
		fmt.Fprintf(&buf, ", reserved bits %v", t.Reserved)
	}
	return buf.String()
}
