package middleware

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/RogueDynamite/Justine/pkg/cmd"
)

const (
	instrumentationName = "github.com/RogueDynamite/Justine/internal/middleware"
	metricKeyPrefix     = "interactions."
)

// Status values attached to command metrics and spans.
const (
	StatusSuccess       = "success"
	StatusArgumentError = "argument_error"
	StatusServerError   = "server_error"
	StatusError         = "error"
)

// WithMetrics counts executions and records their duration in milliseconds,
// labelled by command name and outcome. A nil provider disables it.
func WithMetrics(provider metric.MeterProvider) (cmd.Middleware, error) {
	if provider == nil {
		return noop, nil
	}

	meter := provider.Meter(instrumentationName)
	counter, err := meter.Int64Counter(
		metricKeyPrefix+"command.count",
		metric.WithDescription("Number of executed commands"),
		metric.WithUnit("{commands}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create command.count counter: %w", err)
	}
	duration, err := meter.Float64Histogram(
		metricKeyPrefix+"command.duration",
		metric.WithDescription("Command execution time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create command.duration histogram: %w", err)
	}

	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (*discordgo.InteractionResponse, error) {
			start := time.Now()
			resp, err := c.Run(ctx, inv)
			elapsed := float64(time.Since(start).Microseconds()) / 1000

			attrs := metric.WithAttributes(
				attribute.String("command.name", c.Name()),
				attribute.String("status", Status(err)),
			)
			counter.Add(ctx, 1, attrs)
			duration.Record(ctx, elapsed, attrs)
			return resp, err
		})
	}, nil
}

// Status classifies a command result.
func Status(err error) string {
	if err == nil {
		return StatusSuccess
	}
	var srvErr *cmd.ServerError
	if errors.As(err, &srvErr) {
		return StatusServerError
	}
	var argErr *cmd.ArgumentError
	if errors.As(err, &argErr) {
		return StatusArgumentError
	}
	return StatusError
}

func noop(c cmd.Command) cmd.Command { return c }
