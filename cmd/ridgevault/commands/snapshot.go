package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var snapshotTargetDir string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Take a new snapshot of a directory",
	Long: `Walk a directory tree and record its contents as a new, immutable
snapshot. Files whose contents already exist in the database, whether from
this snapshot or an earlier one, are stored only once.

Examples:
  # Snapshot the current directory into the default database
  ridgevault snapshot --target-directory .

  # Snapshot into a specific database file
  ridgevault snapshot --target-directory /data --db-path /backups/archive.db`,
	RunE: runSnapshot,
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotTargetDir, "target-directory", "t", "", "directory to snapshot (required)")
	_ = snapshotCmd.MarkFlagRequired("target-directory")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	e, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	id, warnings, err := e.Snapshot(context.Background(), snapshotTargetDir)
	if err != nil {
		return fmt.Errorf("snapshot failed: %w", err)
	}

	for _, w := range warnings {
		PrintErr("warning: skipped %s: %v", w.RelativePath, w.Err)
	}

	p, err := printer()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("Snapshot %d created from %s", id, snapshotTargetDir)
	if len(warnings) > 0 {
		msg = fmt.Sprintf("%s (%d file(s) skipped, see warnings above)", msg, len(warnings))
	}
	p.Success(msg)
	return nil
}
