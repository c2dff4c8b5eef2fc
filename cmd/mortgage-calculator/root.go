package main

import (
	"fmt"

	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	opts := &scheduleOptions{}

	rootCmd := &cobra.Command{
		Use:   "mortgage-calculator",
		Short: "Compute mortgage amortization schedules",
		Long: `mortgage-calculator computes the month-by-month amortization schedule of a
fixed-rate (frm) or adjustable-rate (arm) mortgage.

Without a subcommand it behaves like "schedule".`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchedule(cmd, opts)
		},
	}
	opts.bind(rootCmd)

	rootCmd.AddCommand(newScheduleCmd(), newServeCmd(), newVersionCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mortgage-calculator %s\n", version)
		},
	}
}

func (o *scheduleOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.configPath, "config", constants.DefaultConfigFile, "path to configuration file")
	cmd.Flags().StringVar(&o.outputFormat, "output-format", "", "type of output override: pretty, csv, json")
	cmd.Flags().StringVar(&o.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	cmd.Flags().BoolVar(&o.yearly, "yearly", false, "print the lowest remaining balance of each year instead of every month")
}
