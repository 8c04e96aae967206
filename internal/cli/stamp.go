package cli

import (
	"context"
	"fmt"

	"github.com/kilupskalvis/gitstamp/internal/core"
	"github.com/spf13/cobra"
)

var stampCmd = &cobra.Command{
	Use:   "stamp <template_file> <output_file>",
	Short: "Substitute revision state into a template file",
	Long: `Read the template file, replace the {sha} and {is_dirty} placeholders
with the repository's head commit hash and dirty flag, and write the
result to the output file. The output file is overwritten if present.`,
	Args: cobra.ExactArgs(2),
	Run:  runStamp,
}

func runStamp(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	state, err := core.Stamp(ctx, c.Config, c.Client, args[0], args[1])
	if err != nil {
		exitError("%v", err)
	}

	suffix := ""
	if state.Dirty {
		suffix = "-dirty"
	}
	fmt.Printf("Stamped %s with %s%s\n", args[1], state.ShortSHA(), suffix)
}
