package collector

import (
	"github.com/sirupsen/logrus"
)

const (
	// DefaultExtension seeds every result.
	DefaultExtension = ".txt"
	// DefaultPattern selects contribution files inside a language folder.
	DefaultPattern = "*contribution.js"
	// DefaultRoot is where an installed monaco-editor keeps its language folders.
	DefaultRoot = "node_modules/monaco-editor/esm/vs/basic-languages"
)

// Option configures a Collector.
type Option func(c *Collector)

// WithDefault sets the extension the result is seeded with.
func WithDefault(ext string) Option {
	return func(c *Collector) {
		c.seed = ext
	}
}

// WithPattern sets the glob a file name must match to be read.
func WithPattern(pattern string) Option {
	return func(c *Collector) {
		c.pattern = pattern
	}
}

// WithKeepGoing makes Collect skip folders it cannot read instead of failing.
func WithKeepGoing(keepGoing bool) Option {
	return func(c *Collector) {
		c.keepGoing = keepGoing
	}
}

// WithLogger sets the logger used for per-folder debug and skip messages.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Collector) {
		c.log = log
	}
}
