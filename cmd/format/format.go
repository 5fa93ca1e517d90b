package format

import "io"

// Formatter renders a list of extensions
type Formatter interface {
	// GetName returns the name used to select the formatter on the command line
	GetName() string
	// Format writes exts to w, preserving their order
	Format(w io.Writer, exts []string) error
}

// registry stores all available formatters
var registry = make(map[string]Formatter)

// Register adds a formatter to the registry
func Register(f Formatter) {
	registry[f.GetName()] = f
}

// Get returns the formatter registered under name
func Get(name string) (Formatter, bool) {
	f, exists := registry[name]
	return f, exists
}

// ListFormats returns the names of all registered formatters
func ListFormats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
