package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/monta/config"
	"github.com/s0up4200/monta/filter"
	"github.com/s0up4200/monta/monta"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  = zerolog.Nop()
	client  *monta.Client
	filters = filter.NewManager()
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "monta",
	Short: "A command line client for the Monta fulfilment API",
	Long: `monta talks to the Monta warehouse API: products and stock, orders,
inbound forecasts, returns, suppliers, order events and reports.

Any operation in the endpoint catalog can be run with "monta call".`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
}

// initializeApp loads the configuration and creates the Monta client
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	var err error
	client, err = monta.NewClient(monta.Config{
		BaseURL:  cfg.Monta.URL,
		Username: cfg.Monta.Username,
		Password: cfg.Monta.Password,
	}, logger,
		monta.WithTimeout(cfg.Monta.Timeout),
		monta.WithConcurrency(cfg.Monta.Concurrency),
		monta.WithUserAgent(userAgent()),
	)
	if err != nil {
		return fmt.Errorf("failed to create Monta client: %w", err)
	}

	logger.Debug().Str("url", client.BaseURL()).Msg("Monta client ready")
	return nil
}

// loadConfig reads the configuration, sets up logging and registers the
// named catalog filters
func loadConfig() error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if err := filters.RegisterFilters(cfg.Filters); err != nil {
		return fmt.Errorf("invalid filters in config: %w", err)
	}
	return nil
}

func userAgent() string {
	if cfg != nil && cfg.Monta.UserAgent != "" {
		return cfg.Monta.UserAgent
	}
	return "monta-cli/" + strings.TrimPrefix(version, "v")
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format, colour only on a terminal
	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
