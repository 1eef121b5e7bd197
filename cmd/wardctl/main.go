// Command wardctl runs the ward registry server and its offline tooling.
//
// Usage:
//
//	wardctl serve --config ward.yml
//	wardctl report --seed seed.yml --status active --from 2026-01-01
//	wardctl export merit --seed seed.yml --format xlsx --out merit.xlsx
//	wardctl polygon check < boundary.txt
//
// Environment variables prefixed WARD_ override the config file; see
// internal/platform/config.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"wardregistry/internal/app"
	"wardregistry/internal/platform/config"
	"wardregistry/internal/platform/logger"
)

var rootCmd = &cobra.Command{
	Use:           "wardctl",
	Short:         "Ward civil-records registry",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", os.Getenv("WARD_CONFIG"), "Path to the YAML config file")
	rootCmd.PersistentFlags().String("seed", "", "Seed file applied at startup (overrides registry.seed_path)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}

// loadConfig reads --config and applies --seed.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if seedPath, _ := cmd.Flags().GetString("seed"); seedPath != "" {
		cfg.Registry.SeedPath = seedPath
	}
	return cfg, nil
}

// openRegistry builds a registry for one-shot commands. Logs go to errOut so
// command output stays machine readable.
func openRegistry(ctx context.Context, cfg config.Config, errOut io.Writer) (*app.App, error) {
	return app.New(ctx, cfg, logger.NewWithWriter(errOut, cfg.Log.Level, cfg.Log.Format))
}
