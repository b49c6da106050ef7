package base

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/pkg/permissions"
)

// Kind names accepted by the -kind flag.
const (
	KindArchive = "archive"
	KindInbox   = "inbox"
	KindField   = "field"
)

// Kind is a permission codec with its flag type erased, for commands that
// work on any of them.
type Kind interface {
	Name() string

	// Parse decodes a level written by the user.
	Parse(level string) (*Result, error)

	// Assign builds a level from scratch. all selects every flag first, then
	// values and enable are applied in that order.
	Assign(all bool, values map[string]bool, enable []string) (*Result, error)

	Table() *Table
}

// Result describes one decoded or encoded level.
type Result struct {
	Kind string `json:"kind" yaml:"kind"`

	// Level is the level as supplied. Encoded is the level rebuilt from the
	// flags, so it differs from Level when reserved bits were set.
	Level   uint64 `json:"level" yaml:"level"`
	Encoded uint64 `json:"encoded" yaml:"encoded"`

	Bits    string   `json:"bits" yaml:"bits"`
	Enabled []string `json:"enabled" yaml:"enabled"`
}

// String renders the result for text output.
func (r *Result) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Kind:    %s\n", r.Kind)
	fmt.Fprintf(&sb, "Level:   %d\n", r.Level)
	if r.Encoded != r.Level {
		fmt.Fprintf(&sb, "Encoded: %d\n", r.Encoded)
	}
	fmt.Fprintf(&sb, "Bits:    %s\n", r.Bits)
	if len(r.Enabled) == 0 {
		sb.WriteString("Enabled: (none)")
	} else {
		sb.WriteString("Enabled: " + strings.Join(r.Enabled, ", "))
	}
	return sb.String()
}

// Table describes the bit layout of a codec.
type Table struct {
	Kind     string     `json:"kind" yaml:"kind"`
	Width    int        `json:"width" yaml:"width"`
	Mask     uint64     `json:"mask" yaml:"mask"`
	Flags    []TableRow `json:"flags" yaml:"flags"`
	Reserved []int      `json:"reserved" yaml:"reserved"`
}

// TableRow is one named bit.
type TableRow struct {
	Bit   int    `json:"bit" yaml:"bit"`
	Value uint64 `json:"value" yaml:"value"`
	Flag  string `json:"flag" yaml:"flag"`
}

// LookupKind returns the codec for a -kind value.
func LookupKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case KindArchive:
		return kind[permissions.ArchiveFlag]{permissions.Archive}, nil
	case KindInbox:
		return kind[permissions.InboxFlag]{permissions.Inbox}, nil
	case KindField:
		return kind[permissions.FieldProperty]{permissions.Field}, nil
	}
	return nil, fmt.Errorf("unknown kind %q (want archive, inbox or field)", name)
}

// NewResult describes a set. The set itself is not modified.
func NewResult[F ~string](s *permissions.Set[F]) *Result {
	codec := s.Codec()
	enabled := s.Enabled()

	r := &Result{
		Kind:    codec.Name(),
		Level:   s.Level(),
		Encoded: s.Clone().Encode(),
		Bits:    s.Bits(),
		Enabled: make([]string, len(enabled)),
	}
	for i, f := range enabled {
		r.Enabled[i] = string(f)
	}
	return r
}

// ApplyFlags updates s from the three flag sources used on the command line.
// Unknown names from every source are reported together and leave s
// unchanged.
func ApplyFlags[F ~string](s *permissions.Set[F], all bool, values map[string]bool, enable []string) error {
	next := s.Clone()
	if all {
		next.SelectAll()
	}

	var result *multierror.Error

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := next.SetByName(name, values[name]); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := next.EnableNames(enable...); err != nil {
		result = multierror.Append(result, err)
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	*s = *next
	return nil
}

type kind[F ~string] struct {
	codec *permissions.Codec[F]
}

func (k kind[F]) Name() string {
	return k.codec.Name()
}

func (k kind[F]) Parse(level string) (*Result, error) {
	s, err := k.codec.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return NewResult(s), nil
}

func (k kind[F]) Assign(all bool, values map[string]bool, enable []string) (*Result, error) {
	s := k.codec.New()
	if err := ApplyFlags(s, all, values, enable); err != nil {
		return nil, err
	}
	return NewResult(s), nil
}

func (k kind[F]) Table() *Table {
	t := &Table{
		Kind:     k.codec.Name(),
		Width:    k.codec.Width(),
		Mask:     k.codec.Mask(),
		Reserved: k.codec.Reserved(),
	}
	for _, p := range k.codec.Positions() {
		value, _ := k.codec.Encode(map[F]bool{p.Flag: true})
		t.Flags = append(t.Flags, TableRow{
			Bit:   p.Bit,
			Value: value,
			Flag:  string(p.Flag),
		})
	}
	return t
}
