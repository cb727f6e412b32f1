package config

import (
	"fmt"

	yaml "gopkg.in/yaml.v3"
)

// OutputFmt is the specification of requested build output rendering.
type OutputFmt int

const (
	OutputFmtText OutputFmt = iota // plain selector strings, one per line
	OutputFmtJSON                  // name to selector map, JSON
	OutputFmtYAML                  // name to selector map, YAML
)

// String returns the name used in configuration and on the command line.
func (o OutputFmt) String() string {
	switch o {
	case OutputFmtText:
		return "text"
	case OutputFmtJSON:
		return "json"
	case OutputFmtYAML:
		return "yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// Ext returns file extension for the format.
func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtText:
		return ".txt"
	case OutputFmtJSON:
		return ".json"
	case OutputFmtYAML:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// ParseOutputFmt converts format name to OutputFmt value.
func ParseOutputFmt(name string) (OutputFmt, error) {
	switch name {
	case "text":
		return OutputFmtText, nil
	case "json":
		return OutputFmtJSON, nil
	case "yaml":
		return OutputFmtYAML, nil
	default:
		return 0, fmt.Errorf("unknown output format %q", name)
	}
}

// OutputFmtNames returns all recognized format names.
func OutputFmtNames() []string {
	return []string{"text", "json", "yaml"}
}

// UnmarshalYAML decodes OutputFmt from its configuration name.
func (o *OutputFmt) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	v, err := ParseOutputFmt(name)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// MarshalYAML encodes OutputFmt as its configuration name.
func (o OutputFmt) MarshalYAML() (any, error) {
	return o.String(), nil
}
