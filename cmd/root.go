package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/kilianp07/roomutil/app"
	"github.com/kilianp07/roomutil/config"
	"github.com/kilianp07/roomutil/infra/logger"
	// Registers the metrics sink types.
	_ "github.com/kilianp07/roomutil/infra/metrics"
)

var (
	cfgPath string
	envPath string
)

var rootCmd = &cobra.Command{
	Use:               "roomutil",
	Short:             "Classroom utilization dashboard",
	PersistentPreRunE: loadEnv,
	RunE:              run,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "config.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&envPath, "env-file", ".env", "dotenv file loaded before the configuration")
}

// Execute runs the CLI.
func Execute() error { return rootCmd.Execute() }

// loadEnv reads the dotenv file when present. Variables already set in the
// environment win.
func loadEnv(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	return nil
}

func newService() (*app.Service, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return app.New(cfg)
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := newService()
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	return svc.Run(ctx)
}
