package texttable

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

var (
	_          pflag.Value = (*Format)(nil)
	allFormats             = []Format{FormatTable, FormatYAML}
)

func (f *Format) Set(val string) error {
	for _, format := range allFormats {
		if val == string(format) {
			*f = format
			return nil
		}
	}
	return fmt.Errorf("invalid format: %s", val)
}

func (f Format) String() string {
	return string(f)
}

func (f *Format) Type() string {
	return "format"
}

// Export writes the dictionary to w in collation order of its keys.
func Export(w io.Writer, d Dictionary, format Format) error {
	switch format {
	case FormatYAML:
		return exportYAML(w, d)
	case FormatTable:
		return exportTable(w, d)
	default:
		return fmt.Errorf("invalid format: %s", format)
	}
}

func exportYAML(w io.Writer, d Dictionary) error {
	node := yaml.Node{Kind: yaml.MappingNode}
	for _, key := range d.Keys() {
		value, _ := d.Lookup(key)
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	}

	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("yaml.Encode > %w", err)
	}
	return nil
}

func exportTable(w io.Writer, d Dictionary) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, key := range d.Keys() {
		value, _ := d.Lookup(key)
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", key, value); err != nil {
			return fmt.Errorf("write table row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush table: %w", err)
	}
	return nil
}
