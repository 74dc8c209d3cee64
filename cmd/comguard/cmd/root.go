package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/oshokin/com-runtime/internal/logger"
	"github.com/oshokin/com-runtime/internal/service/probe"
	"github.com/oshokin/com-runtime/internal/version"
)

var (
	// configPath stores the path to the configuration YAML file.
	configPath string
	// logLevel overrides the configured log level.
	logLevel string
	// apartment overrides the configured COM apartment.
	apartment string
	// ole forces OLE initialization on top of COM.
	ole bool
	// allowFalse accepts S_FALSE in the check command.
	allowFalse bool

	// rootCmd is the base command; it only groups subcommands.
	rootCmd = &cobra.Command{
		Use:           "comguard",
		Short:         "Initialize and inspect the COM runtime on one thread.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if logLevel == "" {
				return nil
			}

			level, ok := logger.ParseLogLevel(logLevel)
			if !ok {
				return fmt.Errorf("unknown log level %q", logLevel)
			}

			logger.SetLevel(level)

			return nil
		},
	}

	// probeCmd initializes and releases the runtime.
	probeCmd = &cobra.Command{
		Use:   "probe",
		Short: "Initialize COM (and optionally OLE) on this thread, then release it.",
		Long: `Initializes the COM runtime for the current thread with the configured apartment,
optionally initializes OLE on top of it, and releases both in reverse order.

Exits with a non-zero status and logs the HRESULT when initialization fails.
S_FALSE from OleInitialize is accepted and still balanced by OleUninitialize.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
			defer stop()

			return probe.Run(ctx, &probe.Options{
				ConfigPath: configPath,
				Apartment:  apartment,
				LogLevel:   logLevel,
				OLE:        ole,
			})
		},
	}

	// checkCmd classifies a status code.
	checkCmd = &cobra.Command{
		Use:   "check <code>",
		Short: "Classify an HRESULT as success or failure.",
		Long: `Parses a status code (decimal or 0x-prefixed hex) and checks it.
Only S_OK passes unless --allow-false is given, in which case S_FALSE passes too.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return probe.RunCheck(cmd.Context(), &probe.CheckOptions{
				Code:       args[0],
				AllowFalse: allowFalse,
			})
		},
	}
)

// Execute runs the comguard CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Logger().Error(err)
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to configuration file (defaults are used when empty)")
	rootCmd.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "", "log level: debug, info, warn, error")

	probeCmd.Flags().StringVarP(&apartment, "apartment", "a", "", "COM apartment: sta or mta")
	probeCmd.Flags().BoolVar(&ole, "ole", false, "initialize OLE on top of COM")

	checkCmd.Flags().BoolVar(&allowFalse, "allow-false", false, "accept S_FALSE as success")

	rootCmd.AddCommand(probeCmd, checkCmd, version.NewCommand())
}
