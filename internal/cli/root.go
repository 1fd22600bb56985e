package cli

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log     = zap.NewNop()
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "frameextract",
	Short: "Extract still images from video files",
	Long: `frameextract pulls still images out of video files using one of three
strategies: a frame every N seconds, a fixed count of evenly spaced frames,
or a single frame at an explicit timestamp. It can also report video
metadata (resolution, frame rate, frame count, duration).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = newLogger(verbose)
	},
}

// Execute runs the CLI with a signal-cancellable context.
func Execute(ctx context.Context) error {
	defer func() { _ = log.Sync() }()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

func newLogger(verbose bool) *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
