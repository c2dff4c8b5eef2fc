package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iwvelando/mortgage-calculator/internal/logging"
	"github.com/iwvelando/mortgage-calculator/internal/server"
	"github.com/iwvelando/mortgage-calculator/pkg/constants"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type serveOptions struct {
	serverConfigPath string
	address          string
	maxUploadSize    string
	logLevel         string
}

func newServeCmd() *cobra.Command {
	opts := &serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the schedule API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.serverConfigPath, "server-config", constants.DefaultServerConfigFile, "path to server configuration file")
	cmd.Flags().StringVar(&opts.address, "address", "", "listen address override, e.g. :8080")
	cmd.Flags().StringVar(&opts.maxUploadSize, "max-upload-size", "", "request size limit override, e.g. 256K")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	return cmd
}

// loadServerConfig reads the server configuration and applies CLI overrides.
func loadServerConfig(opts *serveOptions) (*server.Config, error) {
	cfg, err := server.LoadConfig(opts.serverConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load server configuration at %s: %w", opts.serverConfigPath, err)
	}
	if opts.address != "" {
		if err := cfg.SetAddress(opts.address); err != nil {
			return nil, err
		}
	}
	if opts.maxUploadSize != "" {
		if err := cfg.SetUploadSize(opts.maxUploadSize); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runServe(ctx context.Context, opts *serveOptions) error {
	cfg, err := loadServerConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, opts.logLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Serve(ctx, logger, cfg, version); err != nil {
		logger.Error("HTTP server failed",
			zap.String("op", "main.runServe"),
			zap.Error(err),
		)
		return err
	}
	return nil
}
