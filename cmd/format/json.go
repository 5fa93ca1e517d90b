package format

import (
	"encoding/json"
	"io"
)

// JSONFormatter prints extensions as a JSON array
type JSONFormatter struct{}

func init() {
	Register(&JSONFormatter{})
}

// GetName returns "json"
func (f *JSONFormatter) GetName() string {
	return "json"
}

// Format writes exts as one JSON array line; nil is written as []
func (f *JSONFormatter) Format(w io.Writer, exts []string) error {
	if exts == nil {
		exts = []string{}
	}
	return json.NewEncoder(w).Encode(exts)
}
