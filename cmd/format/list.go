package format

import (
	"fmt"
	"io"
	"strings"
	"unicode"
)

// ListFormatter prints extensions as a bracketed, quoted list: ['.txt', '.py']
type ListFormatter struct{}

func init() {
	Register(&ListFormatter{})
}

func (f *ListFormatter) GetName() string {
	return "list"
}

func (f *ListFormatter) Format(w io.Writer, exts []string) error {
	quoted := make([]string, len(exts))
	for i, ext := range exts {
		quoted[i] = quote(ext)
	}
	_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(quoted, ", "))
	return err
}

// quote wraps s in single quotes, or double quotes when s holds a single quote and no double quote.
// Non-printable runes are escaped as \xNN, \uNNNN or \UNNNNNNNN.
func quote(s string) string {
	q := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		q = `"`
	}

	var b strings.Builder
	b.WriteString(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case string(r) == q:
			b.WriteString(`\` + q)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		case !unicode.IsPrint(r):
			switch {
			case r < 0x100:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r < 0x10000:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(q)
	return b.String()
}
