// Package command assembles the compiled-in command set served by the
// interactions endpoint and uploaded by the register bootstrap.
package command

import (
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/RogueDynamite/Justine/internal/command/core"
	"github.com/RogueDynamite/Justine/internal/command/random"
	"github.com/RogueDynamite/Justine/internal/middleware"
	"github.com/RogueDynamite/Justine/pkg/cmd"
)

// Options selects the instrumentation wrapped around every command. Nil
// providers leave the corresponding middleware out.
type Options struct {
	MeterProvider  metric.MeterProvider
	TracerProvider trace.TracerProvider
}

// NewRegistry builds the registry of every command this service offers.
func NewRegistry(opts Options) (*cmd.Registry, error) {
	metrics, err := middleware.WithMetrics(opts.MeterProvider)
	if err != nil {
		return nil, err
	}
	chain := []cmd.Middleware{
		middleware.WithCommandLogger(),
		metrics,
		middleware.WithTracing(opts.TracerProvider),
	}

	var reg *cmd.Registry
	help := &core.HelpCommand{Commands: func() core.Lister { return reg }}

	reg, err = cmd.NewRegistry(
		cmd.Apply(&random.RandomCommand{}, chain...),
		cmd.Apply(help, chain...),
	)
	if err != nil {
		return nil, err
	}
	return reg, nil
}
