package base

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidateFormat returns an error for unsupported output formats. The empty
// string is accepted and means text.
func ValidateFormat(format string) error {
	switch format {
	case "", FormatText, FormatJSON, FormatYAML:
		return nil
	}
	return fmt.Errorf("unsupported output format %q (want text, json or yaml)", format)
}

// Render writes v to the UI in the given format. text renders the
// human-readable form.
func Render(ui cli.Ui, format string, v interface{}, text func() string) error {
	switch format {
	case FormatJSON:
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		ui.Output(string(b))
	case FormatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding YAML: %w", err)
		}
		ui.Output(strings.TrimRight(string(b), "\n"))
	case "", FormatText:
		ui.Output(text())
	default:
		return ValidateFormat(format)
	}
	return nil
}
