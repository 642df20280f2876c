// Command uongozi is the terminal front end for the leader rating
// platform: registration, login, the home dashboard, review submission
// and the admin dashboard.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/uongozi/uongozi/infrastructure/api"
	"github.com/uongozi/uongozi/infrastructure/regions"
	"github.com/uongozi/uongozi/internal/application"
)

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "uongozi",
	Short: "Rate the performance of your elected leaders",
	Long: `Uongozi is the client for the civic leader rating platform.

Citizens register with their county, constituency and ward, see the
leaders accountable to them at every level of government, and rate
leaders against their manifesto commitments on a 1-4 scale. One review
per leader every three months.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, homeCmd, rateCmd, adminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// runtime bundles everything a command needs.
type runtime struct {
	app    *application.App
	store  *application.Store
	logger *zap.Logger
}

// newRuntime loads configuration, restores any persisted session and
// wires the backend client with its middleware chain.
func newRuntime() (*runtime, error) {
	cfg, err := application.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}

	store := application.NewStore()
	if session, ok := loadSession(); ok {
		store.SetSession(session)
	}

	client, err := api.NewClient(api.ClientConfig{
		BaseURL:    cfg.Backend.BaseURL,
		Token:      store.Token,
		Timeout:    cfg.Backend.Timeout(),
		Middleware: buildMiddleware(cfg),
	})
	if err != nil {
		return nil, err
	}

	directory, err := regions.Load("")
	if err != nil {
		return nil, err
	}

	app := application.NewApp(client, client, client, directory, store, nil, logger)
	return &runtime{app: app, store: store, logger: logger}, nil
}

func newLogger(level string) (*zap.Logger, error) {
	if verbose {
		level = "debug"
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		parsed = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
