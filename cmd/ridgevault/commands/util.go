package commands

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsolano/ridgevault/internal/cli/output"
	"github.com/jsolano/ridgevault/internal/logger"
	"github.com/jsolano/ridgevault/pkg/config"
	"github.com/jsolano/ridgevault/pkg/engine"
	"github.com/jsolano/ridgevault/pkg/store"
)

// openEngine loads configuration, applies the --db-path override, initializes
// the logger, opens the backup store, and returns a ready-to-use Engine. The
// returned closer must be called once the command is done with the engine.
func openEngine() (*engine.Engine, func() error, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if dbPath != "" {
		cfg.Database.Type = store.DatabaseTypeSQLite
		cfg.Database.SQLite.Path = dbPath
	}

	loggerCfg := logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	}
	if err := logger.Init(loggerCfg); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	st, err := store.Open(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Metrics are kept in-process only: there is no HTTP exposition server,
	// but registering them here exercises the same collectors a long-running
	// host process would scrape.
	e := engine.New(st,
		engine.WithMaxFileSize(cfg.Content.MaxFileSize),
		engine.WithMetrics(prometheus.NewRegistry()))
	return e, st.Close, nil
}

// outputFormat parses the --output flag into an output.Format.
func outputFormat() (output.Format, error) {
	return output.ParseFormat(outputFlag)
}

// printer builds an output.Printer honoring --output and --no-color.
func printer() (*output.Printer, error) {
	format, err := outputFormat()
	if err != nil {
		return nil, err
	}
	return output.NewPrinter(os.Stdout, format, !noColor), nil
}
