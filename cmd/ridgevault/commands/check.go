package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/jsolano/ridgevault/internal/cli/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the integrity of the backup database and its stored content",
	Long: `Run the database's own integrity check, then verify that every stored
content blob still hashes to its own key and that every file reference in
every snapshot resolves to a content row that actually exists.

Exits non-zero if any problem is found.`,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	e, closeEngine, err := openEngine()
	if err != nil {
		return err
	}
	defer func() { _ = closeEngine() }()

	report, err := e.Check(context.Background())
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	p, err := printer()
	if err != nil {
		return err
	}

	switch p.Format() {
	case output.FormatJSON:
		if err := output.PrintJSON(p.Writer(), report); err != nil {
			return err
		}
	case output.FormatYAML:
		if err := output.PrintYAML(p.Writer(), report); err != nil {
			return err
		}
	default:
		p.Printf("Contents scanned: %d\n", report.ContentsScanned)
		p.Printf("Corrupt hashes:   %d\n", len(report.CorruptHashes))
		for _, h := range report.CorruptHashes {
			p.Printf("  - %s\n", h)
		}
		p.Printf("Missing hashes:   %d\n", len(report.MissingHashes))
		for _, h := range report.MissingHashes {
			p.Printf("  - %s\n", h)
		}
		if report.OK() {
			p.Success("OK")
		} else {
			p.Error("FAILED")
		}
	}

	if !report.OK() {
		os.Exit(1)
	}
	return nil
}
