package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-layout/pkg/config"
	"github.com/goliatone/go-bootstrap-layout/pkg/media"
	"github.com/goliatone/go-bootstrap-layout/pkg/orchestrator"
)

type app struct {
	configDir string
	logLevel  string
	mediaFile string
	themeFile string
	variant   string

	logger  *slog.Logger
	store   config.Store
	catalog *media.Catalog
}

func defaultConfigDir() string {
	if dir := os.Getenv("BOOTSTRAP_LAYOUT_CONFIG_DIR"); dir != "" {
		return dir
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "bootstrap-layout")
	}
	return ".bootstrap-layout"
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "bootstrap-layout",
		Short:         "Decorate layout sections with Bootstrap grid options",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configDir, "config-dir", defaultConfigDir(), "directory holding stored settings")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.StringVar(&a.mediaFile, "media", "", "YAML media catalog used to resolve background media")
	flags.StringVar(&a.themeFile, "theme", "", "YAML go-theme manifest used for asset URLs and tokens")
	flags.StringVar(&a.variant, "variant", "", "theme variant")

	rootCmd.AddCommand(a.renderCmd())
	rootCmd.AddCommand(a.formCmd())
	rootCmd.AddCommand(a.configureCmd())
	rootCmd.AddCommand(a.schemaCmd())
	rootCmd.AddCommand(a.settingsCmd())
	rootCmd.AddCommand(a.presetsCmd())
	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	level, err := parseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.store = config.NewFileStore(a.configDir)

	if a.mediaFile != "" {
		a.catalog, err = media.LoadCatalogFile(a.mediaFile)
		if err != nil {
			return err
		}
		a.logger.Debug("media catalog loaded", "path", a.mediaFile, "items", len(a.catalog.List()))
	}
	return nil
}

func (a *app) orchestrator(extra ...orchestrator.Option) (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithSettingsStore(a.store),
		orchestrator.WithLogger(a.logger),
	}
	if a.catalog != nil {
		options = append(options, orchestrator.WithMediaResolver(a.catalog))
	}
	if a.themeFile != "" {
		manifest, err := loadManifest(a.themeFile)
		if err != nil {
			return nil, err
		}
		options = append(options,
			orchestrator.WithThemeSelector(orchestrator.NewStaticSelector(manifest)),
			orchestrator.WithDefaultTheme(manifest.Name, a.variant),
		)
	}
	return orchestrator.New(append(options, extra...)...), nil
}

func parseLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", raw, err)
	}
	return level, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
