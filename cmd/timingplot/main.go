// Package main provides the CLI entry point for timingplot-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/ukaji3/timingplot-go/pkg/timingplot"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/layout"
	"github.com/ukaji3/timingplot-go/pkg/timingplot/output"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLayout   = "TIMINGPLOT_LAYOUT"
	envLogLevel = "TIMINGPLOT_LOG_LEVEL"
)

var (
	layoutPath string
	reportPath string
	pretty     bool
	verbose    bool

	logger *zap.Logger
)

func main() {
	// A missing .env file is fine; the environment is used as is.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(os.Stdout, rootCmd, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "timingplot <workbook.xlsx> [ClearOnly]",
		Short: "Transpose a clock timing table and plot it as a timing diagram",
		Long: `timingplot reads the "Timing Patterns" sheet of a workbook, writes the
transposed table to "Transpose Timing Patterns", draws a timing diagram on
"Transpose Timing Plot" and encodes every row as hex. The workbook is saved
in place.

Pass ClearOnly (any case) as the second argument to only clear the outputs.`,
		Args:          validateArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(verbose, os.Getenv(envLogLevel))
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.Flags().StringVar(&layoutPath, "layout", os.Getenv(envLayout), "YAML file overriding the workbook layout")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write a JSON run report to this file")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return rootCmd
}

func validateArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return timingplot.ErrMissingArgument
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts at most 2 arg(s), received %d", len(args))
	}
	if len(args) == 2 {
		if _, err := timingplot.ParseMode(args[1]); err != nil {
			return err
		}
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	var modeArg string
	if len(args) > 1 {
		modeArg = args[1]
	}
	mode, err := timingplot.ParseMode(modeArg)
	if err != nil {
		return err
	}

	opts := timingplot.Options{
		Mode:   mode,
		Logger: logger,
	}
	if layoutPath != "" {
		l, err := layout.Load(layoutPath)
		if err != nil {
			return err
		}
		opts.Layout = &l
	}

	logger.Info("Working file", zap.String("path", inputPath), zap.String("mode", string(mode)))

	report, procErr := timingplot.Process(inputPath, opts)

	// The report reflects partial progress, so it is written on failure too.
	if reportPath != "" && report != nil {
		if err := output.WriteFile(reportPath, report, pretty); err != nil {
			return errors.Join(procErr, fmt.Errorf("failed to write report: %w", err))
		}
	}
	return procErr
}

func newLogger(verbose bool, level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	switch {
	case verbose:
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case level != "":
		lvl, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, err
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}
	return config.Build()
}

// printError writes the diagnostic to w, followed by usage for argument errors.
func printError(w io.Writer, cmd *cobra.Command, err error) {
	fmt.Fprintf(w, "\nERROR: %v\n", err)
	if errors.Is(err, timingplot.ErrMissingArgument) || errors.Is(err, timingplot.ErrInvalidClearFlag) {
		fmt.Fprintln(w)
		fmt.Fprint(w, cmd.UsageString())
	}
}
