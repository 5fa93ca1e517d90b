package format

import (
	"fmt"
	"io"
)

// LinesFormatter prints one extension per line
type LinesFormatter struct{}

func init() {
	Register(&LinesFormatter{})
}

func (f *LinesFormatter) GetName() string {
	return "lines"
}

func (f *LinesFormatter) Format(w io.Writer, exts []string) error {
	for _, ext := range exts {
		if _, err := fmt.Fprintln(w, ext); err != nil {
			return err
		}
	}
	return nil
}
