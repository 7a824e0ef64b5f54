// Command ridgevault takes content-addressed, deduplicated backups of a
// directory tree and manages them through a SQL-backed store.
package main

import (
	"fmt"
	"os"

	"github.com/jsolano/ridgevault/cmd/ridgevault/commands"
)

// Build-time variables injected via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.Version = version
	commands.Commit = commit
	commands.Date = date

	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
