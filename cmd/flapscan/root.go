package main

import (
	"fmt"
	"os"

	"flapscan/internal/app"
	"flapscan/internal/shared/configs"
	"flapscan/internal/shared/svcerrors"

	"github.com/spf13/cobra"
)

var (
	version = "dev"

	configPath      string
	inputPath       string
	maxDuration     int
	minDailyCount   int
	workers         int
	outputPath      string
	logLevel        string
	debugListenAddr string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flapscan",
	Short: "flapscan - RADIUS session log analyzer for Wi-Fi band-flapping",
	Long: `flapscan scans a RADIUS authentication event log and reports users whose
devices open abnormally many short-lived sessions in a single day, the
classic symptom of Wi-Fi band-flapping. It streams the log file without
locking it, so the authentication server may keep appending while the
scan runs.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		overrides := configs.Overrides{
			InputPath:       inputPath,
			Workers:         workers,
			OutputPath:      outputPath,
			LogLevel:        logLevel,
			DebugListenAddr: debugListenAddr,
		}
		if cmd.Flags().Changed("sessionTime") {
			overrides.MaxDuration = &maxDuration
		}
		if cmd.Flags().Changed("sessionCount") {
			overrides.MinDailyCount = &minDailyCount
		}

		cfg, err := configs.LoadConfig(configPath, overrides)
		if err != nil {
			return err
		}

		application, err := app.New(cfg)
		if err != nil {
			return err
		}

		report, err := application.Run(cmd.Context())
		if err != nil {
			return err
		}

		if cfg.Report.OutputPath == "" {
			fmt.Fprintln(cmd.OutOrStdout(), report)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", "Path to the RADIUS event log file (required)")
	rootCmd.Flags().IntVarP(&maxDuration, "sessionTime", "t", 0, "Max session duration in seconds; longer sessions are ignored")
	rootCmd.Flags().IntVarP(&minDailyCount, "sessionCount", "c", 0, "Min sessions per user per day to qualify as a burst")
	rootCmd.Flags().IntVar(&workers, "workers", 0, "Extraction worker count (default: number of CPUs)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write the report to this file instead of stdout")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to an optional YAML configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level on stderr (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&debugListenAddr, "debug-addr", "", "Serve /metrics and /healthz on this address during the scan")
}

// Execute runs the root command and maps failures to process exit codes.
// Errors that are not already a ServiceError are normalized to SYS_9001.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		svcErr, ok := svcerrors.AsServiceError(err)
		if !ok {
			svcErr = svcerrors.NewInternalErrorUndefined(err)
		}
		os.Exit(svcErr.ExitCode)
	}
}
