package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"

	"github.com/ladiops/ladisales-mcp/internal/config"
	"github.com/ladiops/ladisales-mcp/internal/ladisales"
	"github.com/ladiops/ladisales-mcp/internal/logging"
	"github.com/ladiops/ladisales-mcp/internal/server/listener"
	"github.com/ladiops/ladisales-mcp/internal/server/tools"
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the MCP gateway",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file, layered under environment variables",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load(cmd.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if err := cfg.Validate(); err != nil {
				return cli.Exit(fmt.Sprintf("invalid configuration:\n%v", err), 1)
			}
			return run(ctx, cfg)
		},
	}
}

// run wires the gateway together and blocks until shutdown.
func run(ctx context.Context, cfg *config.Config) error {
	logging.Setup(cfg.LogLevel, cfg.LogFormat)
	logger := slog.Default()

	client, err := ladisales.New(cfg.APIBaseURL, cfg.APIKey,
		ladisales.WithLocationBaseURL(cfg.LocationBaseURL),
		ladisales.WithTimeout(time.Duration(cfg.UpstreamTimeout)),
		ladisales.WithRetryMax(cfg.RetryMax),
		ladisales.WithMaxPages(cfg.MaxPages),
		ladisales.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("creating upstream client: %w", err)
	}

	registry, err := tools.New(client, logger, Version)
	if err != nil {
		return fmt.Errorf("building tool registry: %w", err)
	}

	mcpListener, err := listener.New(cfg.Listen, registry, listener.Timeouts{
		Read:  time.Duration(cfg.ReadTimeout),
		Write: time.Duration(cfg.WriteTimeout),
		Idle:  time.Duration(cfg.IdleTimeout),
		Drain: time.Duration(cfg.DrainTimeout),
	}, logger)
	if err != nil {
		return fmt.Errorf("creating listener: %w", err)
	}

	super, err := supervisor.New(
		supervisor.WithContext(ctx),
		supervisor.WithLogHandler(logger.Handler()),
		supervisor.WithRunnables(mcpListener),
	)
	if err != nil {
		return fmt.Errorf("creating supervisor: %w", err)
	}

	logger.Info("Starting gateway",
		"listen", cfg.Listen,
		"upstream", cfg.APIBaseURL,
		"tools", len(registry.Names()))

	if err := super.Run(); err != nil {
		return fmt.Errorf("running gateway: %w", err)
	}

	logger.Info("Gateway shutdown complete")
	return nil
}
