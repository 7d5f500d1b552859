// Package main provides the CLI entrypoint for bikeshare.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/bikeshare/internal/browse"
	"github.com/verte-zerg/bikeshare/internal/config"
	"github.com/verte-zerg/bikeshare/internal/dataset"
	"github.com/verte-zerg/bikeshare/internal/logging"
	"github.com/verte-zerg/bikeshare/internal/model"
	"github.com/verte-zerg/bikeshare/internal/pager"
	"github.com/verte-zerg/bikeshare/internal/session"
	"github.com/verte-zerg/bikeshare/internal/stats"
)

const defaultDataDir = "."

var (
	dataDir  string
	logLevel string
	pageSize int

	filterCity  string
	filterMonth string
	filterDay   string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bikeshare",
		Short:         "Explore US bikeshare trip data",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSessionCmd,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir, "directory holding the city CSV files")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logging.DefaultLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&pageSize, "page-size", pager.DefaultPageSize, "rows per raw data page")

	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newBrowseCmd())
	rootCmd.AddCommand(newCitiesCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

type environment struct {
	catalog *config.Catalog
	logger  *slog.Logger
	file    config.FileConfig
}

func loadEnvironment(cmd *cobra.Command) (environment, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return environment{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "data-dir", &dataDir, fileCfg.Data.Dir)
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Session.LogLevel)

	logger, err := logging.New(os.Stderr, logLevel)
	if err != nil {
		return environment{}, err
	}
	catalog, err := config.NewCatalog(dataDir, fileCfg.Cities)
	if err != nil {
		return environment{}, fmt.Errorf("invalid city config: %w", err)
	}
	return environment{catalog: catalog, logger: logger, file: fileCfg}, nil
}

func runSessionCmd(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	applyIntConfig(cmd, "page-size", &pageSize, env.file.Session.PageSize)
	if pageSize <= 0 {
		return fmt.Errorf("--page-size must be > 0")
	}

	s := session.New(session.Options{
		Catalog:  env.catalog,
		Logger:   env.logger,
		In:       cmd.InOrStdin(),
		Out:      cmd.OutOrStdout(),
		PageSize: pageSize,
	})
	if err := s.Run(cmd.Context()); err != nil {
		return fmt.Errorf("session failed: %w", err)
	}
	return nil
}

func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterCity, "city", "", "city to analyze")
	cmd.Flags().StringVar(&filterMonth, "month", model.FilterAll, "month filter (all, january..june)")
	cmd.Flags().StringVar(&filterDay, "day", model.FilterAll, "weekday filter (all, monday..sunday)")
	_ = cmd.MarkFlagRequired("city")
}

func filterFromFlags(catalog *config.Catalog) (model.Filter, error) {
	f := model.Filter{
		City:  config.NormalizeName(filterCity),
		Month: config.NormalizeName(filterMonth),
		Day:   config.NormalizeName(filterDay),
	}
	if err := catalog.Validate(f); err != nil {
		return model.Filter{}, err
	}
	return f, nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the trip reports once for a city and filter",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	addFilterFlags(cmd)
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	f, err := filterFromFlags(env.catalog)
	if err != nil {
		return err
	}
	ds, err := dataset.Load(cmd.Context(), env.logger, env.catalog, f)
	if err != nil {
		return err
	}
	return stats.NewRunner(cmd.OutOrStdout()).Run(ds, stats.Sections()...)
}

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the filtered trips in a table view",
		Args:  cobra.NoArgs,
		RunE:  runBrowseCmd,
	}
	addFilterFlags(cmd)
	return cmd
}

func runBrowseCmd(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	f, err := filterFromFlags(env.catalog)
	if err != nil {
		return err
	}
	ds, err := dataset.Load(cmd.Context(), env.logger, env.catalog, f)
	if err != nil {
		return err
	}
	m := browse.NewModel(browse.Title(f.City, f.Month, f.Day), ds)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}

func newCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cities",
		Short: "List configured cities and their data files",
		Args:  cobra.NoArgs,
		RunE:  runCitiesCmd,
	}
}

func runCitiesCmd(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd)
	if err != nil {
		return err
	}
	rows := make([][]string, 0)
	for _, city := range env.catalog.Cities() {
		path := env.catalog.Path(city)
		status := "ok"
		if _, err := os.Stat(path); err != nil {
			status = "missing"
		}
		rows = append(rows, []string{
			config.Title(city.Name),
			path,
			yesNo(city.Schema.Gender),
			yesNo(city.Schema.BirthYear),
			status,
		})
	}
	lines := stats.FormatTable([]string{"City", "File", "Gender", "Birth Year", "Status"}, rows, nil)
	for _, line := range lines {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# bikeshare configuration
# Uncomment a value to enable it. CLI flags override config values.

[data]
# dir = %q                # Directory holding the city CSV files

[session]
# page-size = %d           # Rows per raw data page
# log-level = %q        # debug, info, warn, error

# Override a built-in city or add a new one.
# [cities.washington]
# file = "washington.csv"
# gender = false
# birth-year = false
`,
		defaultDataDir,
		pager.DefaultPageSize,
		logging.DefaultLevel,
	)
}
