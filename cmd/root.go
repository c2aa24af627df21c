// Package cmd wires the gestureview CLI: configuration loading, logger
// bootstrap and the replay tooling built on the viewport engine.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xkilldash9x/gestureview/internal/config"
	"github.com/xkilldash9x/gestureview/internal/observability"
)

var (
	cfgFile string
	cfg     config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "gestureview",
	Short:   "Replay and inspect pan/zoom gesture streams against the gestureview engine.",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			// Fall back to a usable logger so the failure is visible.
			observability.InitializeLogger(config.Default().Logger)
			return err
		}
		observability.InitializeLogger(cfg.Logger)
		observability.GetLogger().Debug("configuration loaded", zap.String("configFile", cfgFile))
		return nil
	},
}

// ExecuteContext runs the root command under the given context and exits
// non-zero on failure.
func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if logger := observability.GetLogger(); logger != nil {
			logger.Error("command failed", zap.Error(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./gestureview.yaml)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}
