package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the revision state of the enclosing repository",
	Long: `Show the head commit and working tree cleanliness that a stamp run
would substitute into a template.`,
	Args: cobra.NoArgs,
	Run:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	c := initContext()

	sha, err := c.Client.Head(ctx)
	if err != nil {
		exitError("%v", err)
	}

	dirty, err := c.Client.IsDirty(ctx)
	if err != nil {
		exitError("%v", err)
	}

	branch, err := c.Client.Branch(ctx)
	if err != nil {
		exitError("%v", err)
	}

	if branch != "" {
		fmt.Printf("On branch %s\n", branch)
	} else {
		fmt.Printf("HEAD detached at %s\n", shortID(sha))
	}
	fmt.Printf("Commit: %s\n", sha)

	if dirty {
		color.New(color.FgRed).Println("Working tree dirty (is_dirty=true)")
	} else {
		color.New(color.FgGreen).Println("Working tree clean (is_dirty=false)")
	}
}
