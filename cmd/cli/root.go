package cli

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shoal-project/shoal/cmd/cli/explain"
	versioncmd "github.com/shoal-project/shoal/cmd/cli/version"
	"github.com/shoal-project/shoal/cmd/util/flags"
	"github.com/shoal-project/shoal/pkg/logger"
	"github.com/shoal-project/shoal/pkg/telemetry"
	"github.com/shoal-project/shoal/pkg/version"
)

var logMode = logger.LogModeDefault

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func init() { //nolint:gochecknoinits
	if logType, set := os.LookupEnv("LOG_TYPE"); set {
		if parsed, err := logger.ParseLogMode(strings.ToLower(logType)); err == nil {
			logMode = parsed
		}
	}
}

func NewRootCmd() *cobra.Command {
	RootCmd := &cobra.Command{
		Use:     "shoal",
		Short:   "Node assignment for streaming datafeeds",
		Version: version.Get().String(),
		Long: `shoal decides which cluster node a streaming datafeed should run on,
given the state of its indexes and of the analysis job it feeds.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.ConfigureLogging(logMode)
			telemetry.SetupFromEnvs()
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if err := telemetry.Cleanup(); err != nil {
				log.Ctx(cmd.Context()).Err(err).Msg("failed to shut down telemetry")
			}
		},
	}

	RootCmd.AddCommand(explain.NewCmd())
	RootCmd.AddCommand(versioncmd.NewCmd())

	RootCmd.PersistentFlags().Var(
		flags.LoggingFlag(&logMode), "log-mode",
		`Log format: 'default','json','combined'`,
	)
	return RootCmd
}

func Execute() {
	// Env configuration carries the SHOAL prefix, e.g. SHOAL_STATE_FILE.
	viper.SetEnvPrefix("SHOAL")
	if err := viper.BindEnv("STATE_FILE"); err != nil {
		log.Fatal().Err(err).Msg("STATE_FILE was set, but could not bind.")
	}
	viper.AutomaticEnv()

	rootCmd := NewRootCmd()

	// Ensure commands are able to stop cleanly if someone presses ctrl+c
	ctx, cancel := signal.NotifyContext(context.Background(), shutdownSignals...)
	defer cancel()
	rootCmd.SetContext(ctx)

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
