package fields

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
)

type Command struct {
	*base.Command

	flagConfig string
	flagDB     int
	flagFormat string
}

type field struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Type       string   `json:"type" yaml:"type"`
	Prop       uint64   `json:"prop" yaml:"prop"`
	Properties []string `json:"properties" yaml:"properties"`
}

func (c *Command) Synopsis() string {
	return "List database fields and their properties"
}

func (c *Command) Help() string {
	return `Usage: gsperm fields [options]

  Lists the fields of a database with their decoded property flags.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("fields", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to gsperm config file.",
	)
	f.IntVar(
		&c.flagDB, "db", 0, "(Required) Database ID.",
	)
	f.StringVar(
		&c.flagFormat, "format", "",
		"Output format: text, json or yaml. Defaults to the config file setting.",
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

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	format := c.flagFormat
	if format == "" {
		format = cfg.Output
	}

	client, err := c.NewClient(cfg)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	fields, err := client.Fields(ctx, c.flagDB)
	if err != nil {
		ui.Error(err.Error())
		return 1
	}

	out := make([]field, len(fields))
	for i := range fields {
		r := base.NewResult(&fields[i].Properties)
		out[i] = field{
			ID:         fields[i].ID,
			Name:       fields[i].Name,
			Type:       fields[i].Type,
			Prop:       r.Level,
			Properties: r.Enabled,
		}
	}

	if err := base.Render(ui, format, out, func() string {
		return formatFields(out)
	}); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func formatFields(fields []field) string {
	if len(fields) == 0 {
		return "No fields found."
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tPROP\tPROPERTIES")
	for _, f := range fields {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", f.ID, f.Name, f.Type, f.Prop, strings.Join(f.Properties, ", "))
	}
	tw.Flush()
	return strings.TrimRight(buf.String(), "\n")
}
