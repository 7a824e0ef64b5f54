package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	restoreSnapshotID int64
	restoreOutputDir  string
)

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore a snapshot to a directory",
	Long: `Write every file recorded by a snapshot into an output directory,
recreating the relative path layout it captured at snapshot time.

Examples:
  # Restore snapshot 3 into ./restored
  ridgevault restore --snapshot-number 3 --output-directory ./restored`,
	RunE: runRestore,
}

func init() {
	restoreCmd.Flags().Int64VarP(&restoreSnapshotID, "snapshot-number", "s", 0, "id of the snapshot to restore (required)")
	restoreCmd.Flags().StringVarP(&restoreOutputDir, "output-directory", "d", "", "directory to restore into (required)")
	_ = restoreCmd.MarkFlagRequired("snapshot-number")
	_ = restoreCmd.MarkFlagRequired("output-directory")
}

func runRestore(cmd *cobra.Command, args []string) error {
	e, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	if err := e.Restore(context.Background(), restoreSnapshotID, restoreOutputDir); err != nil {
		return fmt.Errorf("restore failed: %w", err)
	}

	fmt.Printf("Snapshot %d restored into %s\n", restoreSnapshotID, restoreOutputDir)
	return nil
}
