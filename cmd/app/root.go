package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/salestrack/internal/config"
	"github.com/akyairhashvil/salestrack/internal/database"
	"github.com/akyairhashvil/salestrack/internal/export"
	"github.com/akyairhashvil/salestrack/internal/tui"
	"github.com/akyairhashvil/salestrack/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// app carries the state shared by every command for one invocation.
type app struct {
	configPath string
	dbPath     string
	driver     string
	logLevel   string
	exportDir  string
	theme      string
	randSeed   uint64

	cfg    *config.Config
	logger *zap.Logger
	db     *database.Database

	isTTY func() bool
}

func newApp() *app {
	return &app{
		isTTY: func() bool { return term.IsTerminal(int(os.Stdout.Fd())) },
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   config.AppName,
		Short: "Track leads and sales from the terminal",
		Long: `salestrack records leads and closed sales in a local SQLite file.

Run without arguments to open the dashboard. When stdout is not a terminal
the pipeline summary is printed instead.`,
		Version:           tui.AppVersion,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runDashboard,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultConfigPath()+")")
	flags.StringVar(&a.dbPath, "db", "", "database file")
	flags.StringVar(&a.driver, "driver", "", "sql driver: "+config.DriverMattn+" or "+config.DriverModernc)
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&a.exportDir, "export-dir", "", "directory for exports")
	root.Flags().StringVar(&a.theme, "theme", "default", "dashboard theme: "+strings.Join(tui.ThemeOrder, ", "))

	root.AddCommand(
		a.leadCmd(),
		a.saleCmd(),
		a.statsCmd(),
		a.infoCmd(),
		a.seedCmd(),
		a.resetCmd(),
		a.exportCmd(),
		a.importCmd(),
	)
	return root
}

// setup loads config, applies flag overrides, builds the logger and opens the store.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.Database.Path = a.dbPath
	}
	if a.driver != "" {
		cfg.Database.Driver = a.driver
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.exportDir != "" {
		cfg.Export.Dir = a.exportDir
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	// The dashboard owns the terminal, so it logs to a file.
	logFile := cfg.Logging.File
	if logFile == "" && cmd == cmd.Root() && a.isTTY() {
		logFile = filepath.Join(cfg.DataDir, config.AppName+".log")
	}
	a.logger, err = util.NewLogger(cfg.Logging.Level, cfg.Logging.Format, logFile)
	if err != nil {
		return err
	}

	opts := []database.Option{
		database.WithDriver(cfg.Database.Driver),
		database.WithLogger(a.logger.Named("db")),
		database.WithQueryTimeout(cfg.Database.QueryTimeout),
		database.WithBusyTimeout(cfg.Database.BusyTimeout),
		database.WithSQLTrace(cfg.Logging.TraceSQL),
	}
	if gen := a.seedGenerator(cmd); gen != nil {
		opts = append(opts, database.WithSeedGenerator(gen))
	}
	a.db, err = database.Open(cmd.Context(), cfg.DBPath(), opts...)
	if err != nil {
		return fmt.Errorf("open %s: %w", cfg.DBPath(), err)
	}
	return nil
}

// teardown runs after Execute whether or not the command failed.
func (a *app) teardown() {
	if a.db != nil {
		util.LogError(a.logger, "close database", a.db.Close())
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *app) exporter() *export.Exporter {
	return export.New(a.cfg.ExportDir(), export.WithLogger(a.logger.Named("export")))
}

func (a *app) runDashboard(cmd *cobra.Command, args []string) error {
	if !a.isTTY() {
		return a.printStats(cmd)
	}
	model := tui.New(cmd.Context(), a.db,
		tui.WithExporter(a.exporter()),
		tui.WithLogger(a.logger.Named("tui")),
		tui.WithTheme(a.theme),
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	_, err := p.Run()
	return err
}
