package base

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// FlagFile is a YAML file of flag assignments, e.g.
//
//	all: false
//	flags:
//	  View: true
//	  add: 1
//	  full-api-access: "false"
//
// Values are weakly typed, so booleans, 0/1 and their string forms all work.
type FlagFile struct {
	All   bool            `mapstructure:"all"`
	Flags map[string]bool `mapstructure:"flags"`
}

// ReadFlagFile reads a flag file from the command filesystem.
func (c *Command) ReadFlagFile(path string) (*FlagFile, error) {
	src, err := afero.ReadFile(c.Fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading flag file: %w", err)
	}
	return ParseFlagFile(src)
}

// ParseFlagFile decodes flag file contents.
func ParseFlagFile(src []byte) (*FlagFile, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(src, &raw); err != nil {
		return nil, fmt.Errorf("error parsing flag file: %w", err)
	}

	var ff FlagFile
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &ff,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("error decoding flag file: %w", err)
	}

	return &ff, nil
}
