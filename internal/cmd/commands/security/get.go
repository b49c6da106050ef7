package security

import (
	"bytes"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/globalsearch"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/permissions"
)

type GetCommand struct {
	*base.Command

	flagConfig  string
	flagKind    string
	flagDB      int
	flagArchive int
	flagInbox   int
	flagGrants  bool
	flagFormat  string
}

// grant is the rendered form of a security entry.
type grant struct {
	Name    string   `json:"name" yaml:"name"`
	Group   bool     `json:"group" yaml:"group"`
	Level   uint64   `json:"level" yaml:"level"`
	Enabled []string `json:"enabled" yaml:"enabled"`
}

func (c *GetCommand) Synopsis() string {
	return "Show permissions on an archive or inbox"
}

func (c *GetCommand) Help() string {
	return `Usage: gsperm security get [options]

  Shows the configured user's permissions on an archive or inbox. With
  -grants, lists every user and group with access instead.

  Examples:

    gsperm security get -config=gs.hcl -kind=archive -db=1 -archive=2
    gsperm security get -config=gs.hcl -kind=inbox -inbox=3 -grants` +
		c.Flags().Help()
}

func (c *GetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("security get", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to gsperm config file.",
	)
	f.StringVar(
		&c.flagKind, "kind", base.KindArchive, "Target kind: archive or inbox.",
	)
	f.IntVar(
		&c.flagDB, "db", 0, "Database ID of the archive.",
	)
	f.IntVar(
		&c.flagArchive, "archive", 0, "Archive ID.",
	)
	f.IntVar(
		&c.flagInbox, "inbox", 0, "Inbox ID.",
	)
	f.BoolVar(
		&c.flagGrants, "grants", false, "List every user and group with access.",
	)
	f.StringVar(
		&c.flagFormat, "format", "",
		"Output format: text, json or yaml. Defaults to the config file setting.",
	)

	return f
}

func (c *GetCommand) Run(args []string) int {
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

	var (
		out  interface{}
		text func() string
	)

	switch strings.ToLower(c.flagKind) {
	case base.KindArchive:
		if c.flagGrants {
			grants, err := client.ArchiveSecurity(ctx, c.flagDB, c.flagArchive)
			if err != nil {
				ui.Error(err.Error())
				return 1
			}
			out = archiveGrants(grants)
		} else {
			perms, err := client.ArchivePermissions(ctx, c.flagDB, c.flagArchive)
			if err != nil {
				ui.Error(err.Error())
				return 1
			}
			out = base.NewResult(perms)
		}

	case base.KindInbox:
		if c.flagGrants {
			grants, err := client.InboxSecurity(ctx, c.flagInbox)
			if err != nil {
				ui.Error(err.Error())
				return 1
			}
			out = inboxGrants(grants)
		} else {
			perms, err := client.InboxPermissions(ctx, c.flagInbox)
			if err != nil {
				ui.Error(err.Error())
				return 1
			}
			out = base.NewResult(perms)
		}

	default:
		ui.Error(fmt.Sprintf("unsupported kind %q for security (want archive or inbox)", c.flagKind))
		return 1
	}

	switch v := out.(type) {
	case *base.Result:
		text = v.String
	case []grant:
		text = func() string { return formatGrants(v) }
	}

	if err := base.Render(ui, format, out, text); err != nil {
		ui.Error(err.Error())
		return 1
	}
	return 0
}

func archiveGrants(in []globalsearch.ArchiveGrant) []grant {
	out := make([]grant, len(in))
	for i := range in {
		out[i] = newGrant(in[i].Name, in[i].Group, &in[i].Level)
	}
	return out
}

func inboxGrants(in []globalsearch.InboxGrant) []grant {
	out := make([]grant, len(in))
	for i := range in {
		out[i] = newGrant(in[i].Name, in[i].Group, &in[i].Level)
	}
	return out
}

func newGrant[F ~string](name string, group bool, level *permissions.Set[F]) grant {
	r := base.NewResult(level)
	return grant{
		Name:    name,
		Group:   group,
		Level:   r.Level,
		Enabled: r.Enabled,
	}
}

func formatGrants(grants []grant) string {
	if len(grants) == 0 {
		return "No users or groups have access."
	}

	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tTYPE\tLEVEL\tFLAGS")
	for _, g := range grants {
		typ := "user"
		if g.Group {
			typ = "group"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", g.Name, typ, g.Level, strings.Join(g.Enabled, ", "))
	}
	tw.Flush()
	return strings.TrimRight(buf.String(), "\n")
}
