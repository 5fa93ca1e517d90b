package format

import (
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter prints extensions as a YAML sequence
type YAMLFormatter struct{}

func init() {
	Register(&YAMLFormatter{})
}

// GetName returns "yaml"
func (f *YAMLFormatter) GetName() string {
	return "yaml"
}

// Format writes exts as a YAML document holding one sequence
func (f *YAMLFormatter) Format(w io.Writer, exts []string) error {
	if exts == nil {
		exts = []string{}
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(exts); err != nil {
		return err
	}
	return enc.Close()
}
