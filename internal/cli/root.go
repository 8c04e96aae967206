// Package cli implements the command-line interface for gitstamp.
package cli

import (
	"fmt"
	"os"

	"github.com/kilupskalvis/gitstamp/internal/config"
	"github.com/kilupskalvis/gitstamp/internal/git"
	"github.com/spf13/cobra"
)

// cmdContext holds common resources for CLI commands
type cmdContext struct {
	Config *config.Config
	Client git.ClientInterface
}

// workDir is the -C flag: where the repository and config walks start
var workDir string

// initContext loads config and opens the git client for the working
// directory
func initContext() *cmdContext {
	dir := workDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			exitError("%v", err)
		}
		dir = cwd
	}

	cfg, err := config.Load(dir)
	if err != nil {
		exitError("%v", err)
	}

	client, err := git.NewClient(dir, git.Options{
		Binary:    cfg.GitBinary,
		Untracked: cfg.Untracked,
	})
	if err != nil {
		exitError("%v", err)
	}

	return &cmdContext{Config: cfg, Client: client}
}

var rootCmd = &cobra.Command{
	Use:   "gitstamp <template_file> <output_file>",
	Short: "Stamp git revision state into a text template",
	Long: `gitstamp reads the head commit hash and dirty flag of the enclosing
git repository and substitutes them into a text template, writing the
result to an output file. Templates reference {sha} and {is_dirty}.`,
	Args: cobra.RangeArgs(0, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			cmd.Help()
			return
		}
		if len(args) != 2 {
			exitError("expected <template_file> <output_file>, got %d argument(s)", len(args))
		}
		runStamp(cmd, args)
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&workDir, "directory", "C", "", "Run as if gitstamp was started in this directory")
	rootCmd.AddCommand(stampCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// shortID returns first 8 characters of an ID
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
