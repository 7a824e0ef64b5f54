package commands

import (
	"context"
	"fmt"

	"github.com/jsolano/ridgevault/internal/cli/prompt"
	"github.com/spf13/cobra"
)

var (
	pruneSnapshotID int64
	pruneForce      bool
)

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete a snapshot and reclaim its unshared content",
	Long: `Delete a snapshot and any content it referenced that no other snapshot
still references. Content shared with other snapshots is left untouched.

This is destructive: once a snapshot is pruned it cannot be restored.

Examples:
  # Prune snapshot 2, confirming interactively
  ridgevault prune --snapshot 2

  # Prune without a confirmation prompt
  ridgevault prune --snapshot 2 --force`,
	RunE: runPrune,
}

func init() {
	pruneCmd.Flags().Int64VarP(&pruneSnapshotID, "snapshot", "s", 0, "id of the snapshot to prune (required)")
	pruneCmd.Flags().BoolVarP(&pruneForce, "force", "f", false, "skip the confirmation prompt")
	_ = pruneCmd.MarkFlagRequired("snapshot")
}

func runPrune(cmd *cobra.Command, args []string) error {
	confirmed, err := prompt.ConfirmWithForce(
		fmt.Sprintf("Permanently prune snapshot %d?", pruneSnapshotID), pruneForce)
	if err != nil {
		if prompt.IsAborted(err) {
			fmt.Println("\nAborted.")
			return nil
		}
		return err
	}
	if !confirmed {
		fmt.Println("Aborted.")
		return nil
	}

	e, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	stats, err := e.Prune(context.Background(), pruneSnapshotID)
	if err != nil {
		return fmt.Errorf("prune failed: %w", err)
	}

	p, err := printer()
	if err != nil {
		return err
	}
	p.Success(fmt.Sprintf("Snapshot %d pruned: %d content blobs reclaimed, %d bytes freed",
		stats.SnapshotID, stats.OrphanContents, stats.BytesReclaimed))
	return nil
}
