package encode

import (
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chrisstoll1/Square9APIHelperLibrary-sub000/internal/cmd/base"
)

func newCommand() (*Command, *cli.MockUi) {
	ui := cli.NewMockUi()
	return &Command{Command: &base.Command{
		Log: hclog.NewNullLogger(),
		UI:  ui,
		Fs:  afero.NewMemMapFs(),
	}}, ui
}

func runJSON(t *testing.T, c *Command, ui *cli.MockUi, args ...string) base.Result {
	t.Helper()

	code := c.Run(append([]string{"-format=json"}, args...))
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	var result base.Result
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &result))
	return result
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		level uint64
	}{
		{name: "nothing", args: []string{}, level: 0},
		{name: "archive view add", args: []string{"-kind=archive", "View", "add"}, level: 3},
		{name: "separator styles", args: []string{"full-api-access", "delete_batches", "MoveDoc"}, level: 0b11100000000000000000},
		{name: "inbox all", args: []string{"-kind=inbox", "-all"}, level: 198719},
		{name: "field all", args: []string{"-kind=field", "-all"}, level: 4094},
		{name: "field required", args: []string{"-kind=field", "required"}, level: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newCommand()
			result := runJSON(t, c, ui, tt.args...)
			assert.Equal(t, tt.level, result.Level)
			assert.Equal(t, tt.level, result.Encoded)
		})
	}
}

func TestEncode_File(t *testing.T) {
	c, ui := newCommand()
	require.NoError(t, afero.WriteFile(c.Fs, "flags.yaml", []byte(`
all: true
flags:
  FullAPIAccess: false
  delete-batches: "0"
`), 0o600))

	result := runJSON(t, c, ui, "-file=flags.yaml")
	assert.Equal(t, uint64(1<<18-1), result.Level)
	assert.NotContains(t, result.Enabled, "FullAPIAccess")
	assert.NotContains(t, result.Enabled, "DeleteBatches")
}

func TestEncode_FileThenArgs(t *testing.T) {
	c, ui := newCommand()
	require.NoError(t, afero.WriteFile(c.Fs, "flags.yaml", []byte("flags:\n  view: 1\n"), 0o600))

	result := runJSON(t, c, ui, "-kind=inbox", "-file=flags.yaml", "add")
	assert.Equal(t, uint64(3), result.Level)
	assert.Equal(t, []string{"Add", "View"}, result.Enabled)
}

func TestEncode_Text(t *testing.T) {
	c, ui := newCommand()

	require.Equal(t, 0, c.Run([]string{"-kind=inbox", "view"}))
	assert.Equal(t,
		"Kind:    inbox\nLevel:   1\nBits:    000000000000000001\nEnabled: View\n",
		ui.OutputWriter.String())
}

func TestEncode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr []string
	}{
		{name: "unknown flags", args: []string{"view", "bogus", "nope"}, wantErr: []string{`"bogus"`, `"nope"`}},
		{name: "wrong kind", args: []string{"-kind=inbox", "ExportDocs"}, wantErr: []string{"not in the inbox table"}},
		{name: "unknown kind", args: []string{"-kind=folder"}, wantErr: []string{"unknown kind"}},
		{name: "missing file", args: []string{"-file=missing.yaml"}, wantErr: []string{"error reading flag file"}},
		{name: "bad format", args: []string{"-format=csv"}, wantErr: []string{"unsupported output format"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ui := newCommand()
			assert.Equal(t, 1, c.Run(tt.args))
			for _, want := range tt.wantErr {
				assert.Contains(t, ui.ErrorWriter.String(), want)
			}
		})
	}
}
