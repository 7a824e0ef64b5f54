package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jsolano/ridgevault/internal/cli/output"
	"github.com/jsolano/ridgevault/internal/cli/timeutil"
	"github.com/jsolano/ridgevault/pkg/engine"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every snapshot",
	Long: `List every snapshot recorded in the database, along with the number of
files it holds and the storage it occupies.

TotalSize counts every file reference, including duplicates shared with
other snapshots. DistinctSize counts only the content uniquely owned by that
snapshot — what pruning it alone would reclaim. The store's own total is the
on-disk footprint of all distinct content across every snapshot.`,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	e, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	result, err := e.List(context.Background())
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	format, err := outputFormat()
	if err != nil {
		return err
	}

	switch format {
	case output.FormatJSON:
		return output.PrintJSON(os.Stdout, result)
	case output.FormatYAML:
		return output.PrintYAML(os.Stdout, result)
	default:
		if len(result.Snapshots) == 0 {
			fmt.Println("No snapshots found.")
			return nil
		}
		if err := output.PrintTable(os.Stdout, snapshotTable(result.Snapshots)); err != nil {
			return err
		}
		fmt.Printf("Store total (distinct content): %d\n", result.TotalSize)
		return nil
	}
}

type snapshotTableData []engine.SnapshotSummary

func snapshotTable(summaries []engine.SnapshotSummary) output.TableRenderer {
	return snapshotTableData(summaries)
}

func (d snapshotTableData) Headers() []string {
	return []string{"ID", "Taken At", "Files", "Total Size", "Distinct Size"}
}

func (d snapshotTableData) Rows() [][]string {
	rows := make([][]string, 0, len(d))
	for _, s := range d {
		rows = append(rows, []string{
			strconv.FormatInt(s.ID, 10),
			timeutil.FormatTime(s.TakenAt),
			strconv.Itoa(s.FileCount),
			strconv.FormatInt(s.TotalSize, 10),
			strconv.FormatInt(s.DistinctSize, 10),
		})
	}
	return rows
}
