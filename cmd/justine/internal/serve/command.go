package serve

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"

	"github.com/RogueDynamite/Justine/cmd/justine/internal"
	"github.com/RogueDynamite/Justine/internal/command"
	"github.com/RogueDynamite/Justine/internal/config"
	"github.com/RogueDynamite/Justine/internal/discord"
	"github.com/RogueDynamite/Justine/internal/logger"
	"github.com/RogueDynamite/Justine/internal/version"
)

func NewServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"s"},
		Short:   "Serve the interactions endpoint",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.ListenAddr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address, overrides LISTEN_ADDR")

	return cmd
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.ValidateServe(); err != nil {
		return err
	}

	closer, err := internal.SetupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	log := logger.Component("serve")
	log.Info().Str("version", version.String()).Msgf("starting %s", version.AppName)

	reg, err := command.NewRegistry(command.Options{
		MeterProvider:  otel.GetMeterProvider(),
		TracerProvider: otel.GetTracerProvider(),
	})
	if err != nil {
		return fmt.Errorf("building command registry: %w", err)
	}

	dispatcher := discord.NewDispatcher(cfg.PublicKey, reg)
	srv := discord.NewServer(cfg.ListenAddr, cfg.InteractionsPath, dispatcher, logger.Component("http"))
	return srv.Run(ctx)
}
