package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/mrdkprj/supported/cmd/format"
	"github.com/mrdkprj/supported/internal/clip"
	"github.com/mrdkprj/supported/internal/collector"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// scanOptions holds the scan command's flags.
type scanOptions struct {
	dir       string
	pattern   string
	seed      string
	format    string
	keepGoing bool
	byFolder  bool
	copy      bool
}

var scanOpts scanOptions

// scanCmd collects the extensions of every language folder under --dir.
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Collect the extensions registered by each language folder",
	Long: `Scan lists the folders directly under --dir, reads every file in them
whose name matches --pattern, and collects the first quoted extension list
found in each file, e.g.

  extensions: [".py", ".pyw"],

The result starts with the --default extension, followed by the extensions
of each folder in the order they were found. Folder order is not significant.
Usage example:
supported scan --dir node_modules/monaco-editor/esm/vs/basic-languages --format json
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScan(cmd.Context(), cmd.OutOrStdout(), scanOpts)
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	flags := scanCmd.Flags()
	flags.StringVarP(&scanOpts.dir, "dir", "d", collector.DefaultRoot, "Directory holding the language folders")
	flags.StringVarP(&scanOpts.pattern, "pattern", "p", collector.DefaultPattern, "Glob a file name must match to be read")
	flags.StringVar(&scanOpts.seed, "default", collector.DefaultExtension, "Extension the list always starts with")
	flags.StringVarP(&scanOpts.format, "format", "f", "list", "Output format (see 'supported formats')")
	flags.BoolVarP(&scanOpts.keepGoing, "keep-going", "k", false, "Skip unreadable folders instead of failing")
	flags.BoolVar(&scanOpts.byFolder, "by-folder", false, "Print the extensions of each folder instead of one list")
	flags.BoolVarP(&scanOpts.copy, "copy", "c", false, "Also copy the output to the clipboard")
}

// runScan collects extensions and writes them to out in a single write.
// Nothing is written when the scan fails.
func runScan(ctx context.Context, out io.Writer, opts scanOptions) error {
	f, ok := format.Get(opts.format)
	if !ok {
		return fmt.Errorf("unknown format: %s", opts.format)
	}

	c, err := collector.NewOS(opts.dir,
		collector.WithDefault(opts.seed),
		collector.WithPattern(opts.pattern),
		collector.WithKeepGoing(opts.keepGoing),
		collector.WithLogger(logrus.WithField("root", opts.dir)),
	)
	if err != nil {
		return err
	}

	res, err := c.Collect(ctx)
	if err != nil {
		return err
	}
	logrus.Infof("found %d extensions in %d folders", len(res.Extensions)-1, len(res.Folders))

	var buf bytes.Buffer
	if opts.byFolder {
		err = printFolders(&buf, res)
	} else {
		err = f.Format(&buf, res.Extensions)
	}
	if err != nil {
		return err
	}

	if opts.copy {
		if err := clip.Write(buf.Bytes()); err != nil {
			logrus.WithError(err).Warn("output not copied")
		}
	}

	_, err = out.Write(buf.Bytes())
	return err
}

// printFolders prints one row per scanned folder, followed by the skipped ones.
func printFolders(w io.Writer, res *collector.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FOLDER\tFILES\tEXTENSIONS")
	for _, folder := range res.Folders {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", folder.Name, len(folder.Files), strings.Join(folder.Extensions, " "))
	}
	for _, skipped := range res.Skipped {
		fmt.Fprintf(tw, "%s\t-\tskipped: %v\n", skipped.Name, skipped.Err)
	}
	return tw.Flush()
}
