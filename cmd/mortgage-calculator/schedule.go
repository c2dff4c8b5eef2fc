package main

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/internal/config"
	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/internal/mortgage"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/iwvelando/mortgage-calculator/pkg/output"
	"github.com/iwvelando/mortgage-calculator/pkg/validation"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type scheduleOptions struct {
	configPath   string
	outputFormat string
	logLevel     string
	yearly       bool
}

func newScheduleCmd() *cobra.Command {
	opts := &scheduleOptions{}
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule of the configured mortgage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, opts)
		},
	}
	opts.bind(cmd)
	return cmd
}

func runSchedule(cmd *cobra.Command, opts *scheduleOptions) error {
	conf, err := config.LoadConfiguration(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration at %s: %w", opts.configPath, err)
	}

	logger, err := logging.New(conf.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI override takes precedence over config
	outputFormat := conf.Output.Format
	if opts.outputFormat != "" {
		outputFormat = opts.outputFormat
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Error(err.Error(), zap.String("op", "main.runSchedule"))
		return err
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main.runSchedule"),
		)
	}

	result, err := mortgage.NewCalculator(logger).Calculate(conf.Mortgage)
	if err != nil {
		logger.Error("failed to compute amortization schedule",
			zap.String("op", "main.runSchedule"),
			zap.Error(err),
		)
		return err
	}

	return output.Write(cmd.OutOrStdout(), outputFormat, result, output.Options{Yearly: opts.yearly})
}
