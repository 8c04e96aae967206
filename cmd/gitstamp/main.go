// Command gitstamp stamps git revision state into text templates.
package main

import (
	"os"

	"github.com/kilupskalvis/gitstamp/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
