package security

import (
	"flag"
	"fmt"
	"strings"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/globalsearch"
	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/permissions"
)

type SetCommand struct {
	*base.Command

	flagConfig   string
	flagKind     string
	flagDB       int
	flagArchives []int
	flagInboxes  []int
	flagUsers    []string
	flagAll      bool
	flagFile     string
	flagDryRun   bool
}

func (c *SetCommand) Synopsis() string {
	return "Assign permissions on archives or inboxes"
}

func (c *SetCommand) Help() string {
	return `Usage: gsperm security set [options] [FLAG ...]

  Assigns a permission level to users or groups. The level is built from
  -all, -file and the FLAG arguments, in that order, and replaces any level
  the principals held before.

  Examples:

    gsperm security set -config=gs.hcl -db=1 -archive=2 -user=jdoe view add
    gsperm security set -config=gs.hcl -kind=inbox -inbox=3,4 -user=Clerks -all` +
		c.Flags().Help()
}

func (c *SetCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("security set", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "(Required) Path to gsperm config file.",
	)
	f.StringVar(
		&c.flagKind, "kind", base.KindArchive, "Target kind: archive or inbox.",
	)
	f.IntVar(
		&c.flagDB, "db", 0, "Database ID of the archives.",
	)
	f.IntSliceVar(
		&c.flagArchives, "archive", "Archive ID. May be repeated or comma-separated.",
	)
	f.IntSliceVar(
		&c.flagInboxes, "inbox", "Inbox ID. May be repeated or comma-separated.",
	)
	f.StringSliceVar(
		&c.flagUsers, "user", "(Required) User or group name. May be repeated.",
	)
	f.BoolVar(
		&c.flagAll, "all", false, "Enable every flag.",
	)
	f.StringVar(
		&c.flagFile, "file", "", "YAML file of flag assignments.",
	)
	f.BoolVar(
		&c.flagDryRun, "dry-run", false,
		"Print the level that would be assigned without changing anything.",
	)

	return f
}

func (c *SetCommand) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
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

	update := &globalsearch.SecurityUpdate{Users: c.flagUsers}
	var result *base.Result

	switch strings.ToLower(c.flagKind) {
	case base.KindArchive:
		level := permissions.Archive.New()
		if err := base.ApplyFlags(level, all, values, flags.Args()); err != nil {
			ui.Error(fmt.Sprintf("error building level: %v", err))
			return 1
		}
		update.Database = c.flagDB
		update.Archives = c.flagArchives
		update.ArchiveLevel = level
		result = base.NewResult(level)

	case base.KindInbox:
		level := permissions.Inbox.New()
		if err := base.ApplyFlags(level, all, values, flags.Args()); err != nil {
			ui.Error(fmt.Sprintf("error building level: %v", err))
			return 1
		}
		update.Inboxes = c.flagInboxes
		update.InboxLevel = level
		result = base.NewResult(level)

	default:
		ui.Error(fmt.Sprintf("unsupported kind %q for security (want archive or inbox)", c.flagKind))
		return 1
	}

	if err := update.Validate(); err != nil {
		ui.Error(fmt.Sprintf("invalid security update: %v", err))
		return 1
	}

	if c.flagDryRun {
		ui.Warn("DRY RUN mode enabled - no changes will be made")
		ui.Output(result.String())
		return 0
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}
	client, err := c.NewClient(cfg)
	if err != nil {
		ui.Error(fmt.Sprintf("error creating client: %v", err))
		return 1
	}

	ctx, cancel := c.Context()
	defer cancel()

	if err := client.UpdateSecurity(ctx, update); err != nil {
		ui.Error(err.Error())
		return 1
	}

	ui.Info(fmt.Sprintf("Assigned %s level %d to %s",
		result.Kind, result.Encoded, strings.Join(c.flagUsers, ", ")))
	return 0
}
