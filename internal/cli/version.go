package cli

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Set via -ldflags at release build time.
var (
	version = "dev"
	commit  = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print gitstamp version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gitstamp %s\n", buildVersion())
	},
}

// buildVersion prefers ldflags values and falls back to the vcs info
// the Go toolchain embeds in the binary.
func buildVersion() string {
	if commit != "" {
		return fmt.Sprintf("%s (%s)", version, shortID(commit))
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		var revision string
		var modified bool
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
		if revision != "" {
			if modified {
				return fmt.Sprintf("%s (%s-dirty)", version, shortID(revision))
			}
			return fmt.Sprintf("%s (%s)", version, shortID(revision))
		}
	}

	return version
}
