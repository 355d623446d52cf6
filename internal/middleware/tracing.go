package middleware

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/RogueDynamite/Justine/internal/version"
	"github.com/RogueDynamite/Justine/pkg/cmd"
)

// WithTracing runs each command inside a server span named after it. A nil
// provider disables it.
func WithTracing(tp trace.TracerProvider) cmd.Middleware {
	if tp == nil {
		return noop
	}
	tracer := tp.Tracer(instrumentationName, trace.WithInstrumentationVersion(version.Version))

	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (resp *discordgo.InteractionResponse, err error) {
			ctx, span := tracer.Start(ctx, "/"+c.Name(),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("command.name", c.Name()),
					attribute.String("request.id", requestID(inv)),
				),
			)
			defer func() {
				span.SetAttributes(attribute.String("status", Status(err)))
				if err != nil {
					span.RecordError(err)
					span.SetStatus(codes.Error, err.Error())
				}
				span.End()
			}()

			return c.Run(ctx, inv)
		})
	}
}

func requestID(inv *cmd.Invocation) string {
	if inv == nil {
		return ""
	}
	return inv.RequestID
}
