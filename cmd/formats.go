package cmd

import (
	"fmt"
	"sort"

	"github.com/mrdkprj/supported/cmd/format"
	"github.com/spf13/cobra"
)

// formatsCmd prints the output formats accepted by scan --format.
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the available output formats",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := format.ListFormats()
		sort.Strings(names)
		for _, name := range names {
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
