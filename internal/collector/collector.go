// Package collector discovers the file extensions registered by a tree of
// editor language folders.
//
// The expected layout is root → language folder → files, where each language
// folder carries one or more contribution files (for monaco-editor,
// "<lang>.contribution.js") declaring its extensions as a quoted,
// comma-separated literal such as ".foo,.bar".
package collector

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/gobwas/glob"
	"github.com/sirupsen/logrus"
)

// ErrRootNotFound is returned when the scan root is missing or not a directory.
var ErrRootNotFound = errors.New("root directory not found")

// ErrNotText is returned when a contribution file is not valid UTF-8.
var ErrNotText = errors.New("not UTF-8 text")

// Folder is a scanned language folder.
type Folder struct {
	Name       string
	Files      []string
	Extensions []string
}

// Skipped is a folder dropped from the result because it could not be read.
type Skipped struct {
	Name string
	Err  error
}

// Result holds the outcome of a scan. Extensions always starts with the seed
// extension, followed by the tokens of each folder in Folders order.
type Result struct {
	Extensions []string
	Folders    []Folder
	Skipped    []Skipped
}

// Collector scans a tree of language folders for registered extensions.
type Collector struct {
	fs        billy.Filesystem
	seed      string
	pattern   string
	match     glob.Glob
	keepGoing bool
	log       logrus.FieldLogger
}

// New returns a Collector scanning the root of fs.
func New(fs billy.Filesystem, opts ...Option) (*Collector, error) {
	c := &Collector{
		fs:      fs,
		seed:    DefaultExtension,
		pattern: DefaultPattern,
		log:     logrus.StandardLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	match, err := glob.Compile(c.pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", c.pattern, err)
	}
	c.match = match

	return c, nil
}

// NewOS returns a Collector scanning the directory root on the local filesystem.
func NewOS(root string, opts ...Option) (*Collector, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrRootNotFound, root)
	}

	return New(osfs.New(root), opts...)
}

// Collect scans every language folder under the root. Unless the collector
// was built WithKeepGoing, the first read or decoding error aborts the scan
// and no result is returned. Directories inside a language folder are never
// read, even when their name matches the pattern.
func (c *Collector) Collect(ctx context.Context) (*Result, error) {
	folders, err := c.folders()
	if err != nil {
		return nil, err
	}

	res := &Result{Extensions: []string{c.seed}}

	for _, name := range folders {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		folder, err := c.scanFolder(name)
		if err != nil {
			if !c.keepGoing {
				return nil, err
			}
			c.log.WithError(err).WithField("folder", name).Warn("skipping folder")
			res.Skipped = append(res.Skipped, Skipped{Name: name, Err: err})
			continue
		}

		res.Folders = append(res.Folders, *folder)
		res.Extensions = append(res.Extensions, folder.Extensions...)
	}

	return res, nil
}

// folders lists the root entries that are not regular files.
func (c *Collector) folders() ([]string, error) {
	entries, err := c.fs.ReadDir(".")
	if err != nil {
		return nil, fmt.Errorf("listing root: %w", err)
	}

	var names []string
	for _, entry := range entries {
		mode := entry.Mode()
		if mode&os.ModeSymlink != 0 {
			target, err := c.fs.Stat(entry.Name())
			if err == nil {
				mode = target.Mode()
			}
		}
		if mode.IsRegular() {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	return names, nil
}

func (c *Collector) scanFolder(name string) (*Folder, error) {
	log := c.log.WithField("folder", name)

	entries, err := c.fs.ReadDir(name)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", name, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	folder := &Folder{Name: name}
	for _, entry := range entries {
		if entry.IsDir() || !c.match.Match(entry.Name()) {
			continue
		}

		path := c.fs.Join(name, entry.Name())
		data, err := util.ReadFile(c.fs, path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("decoding %s: %w", path, ErrNotText)
		}
		folder.Files = append(folder.Files, path)

		exts, ok := Extract(string(data))
		if !ok {
			log.WithField("file", path).Debug("no extension list")
			continue
		}
		log.WithField("file", path).Debugf("found %d extensions", len(exts))
		folder.Extensions = append(folder.Extensions, exts...)
	}

	return folder, nil
}
