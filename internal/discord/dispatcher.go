package discord

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RogueDynamite/Justine/internal/logger"
	"github.com/RogueDynamite/Justine/pkg/cmd"
)

const (
	maxBodySize = 1 << 20

	// RequestIDHeader echoes the id the dispatcher assigned to a delivery.
	RequestIDHeader = "X-Request-Id"

	serverErrorMessage = "Error: the server encountered an error."
)

// Dispatcher is the interactions endpoint. It authenticates each delivery,
// answers pings, routes application commands through the registry and turns
// command failures into hidden replies.
type Dispatcher struct {
	publicKey string
	registry  *cmd.Registry
	log       zerolog.Logger
}

// DispatcherOption configures a Dispatcher.
type DispatcherOption func(*Dispatcher)

// WithLogger replaces the dispatcher's logger.
func WithLogger(l zerolog.Logger) DispatcherOption {
	return func(d *Dispatcher) { d.log = l }
}

// NewDispatcher returns a dispatcher verifying deliveries against publicKey
// (hex) and routing to reg.
func NewDispatcher(publicKey string, reg *cmd.Registry, opts ...DispatcherOption) *Dispatcher {
	d := &Dispatcher{
		publicKey: publicKey,
		registry:  reg,
		log:       logger.Component("dispatcher"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func (d *Dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set(RequestIDHeader, requestID)
	log := d.log.With().Str("request_id", requestID).Logger()

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize+1))
	if err != nil || len(body) == 0 || len(body) > maxBodySize {
		log.Debug().Int("bytes", len(body)).Msg("rejecting request without usable body")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if !Verify(body, r.Header.Get(TimestampHeader), r.Header.Get(SignatureHeader), d.publicKey) {
		log.Debug().Msg("rejecting request with invalid signature")
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var interaction discordgo.Interaction
	if err := json.Unmarshal(body, &interaction); err != nil {
		log.Debug().Err(err).Msg("rejecting malformed interaction")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if interaction.Type == discordgo.InteractionPing {
		d.writeJSON(w, log, Pong())
		return
	}

	inv := &cmd.Invocation{Interaction: &interaction, RequestID: requestID}
	name := inv.CommandName()
	command, ok := d.registry.Lookup(name)
	if interaction.Type != discordgo.InteractionApplicationCommand || !ok {
		log.Warn().
			Uint8("type", uint8(interaction.Type)).
			Str("command", name).
			Msg("no command registered for interaction")
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log = log.With().Str("command", name).Logger()
	ctx := log.WithContext(r.Context())

	resp, err := invoke(ctx, command, inv)
	if err != nil {
		resp = d.errorResponse(log, err)
	}
	d.writeJSON(w, log, resp)
}

// invoke runs the command, converting panics and empty results into
// server errors.
func invoke(ctx context.Context, c cmd.Command, inv *cmd.Invocation) (resp *discordgo.InteractionResponse, err error) {
	defer func() {
		if p := recover(); p != nil {
			resp, err = nil, cmd.Internal(fmt.Errorf("panic in /%s: %v", c.Name(), p))
		}
	}()

	resp, err = c.Run(ctx, inv)
	if err == nil && resp == nil {
		err = cmd.Internal(fmt.Errorf("/%s returned no response", c.Name()))
	}
	return resp, err
}

// errorResponse maps a command failure to the hidden reply shown to the
// invoker. Internal details only reach the log.
func (d *Dispatcher) errorResponse(log zerolog.Logger, err error) *discordgo.InteractionResponse {
	var srvErr *cmd.ServerError
	var argErr *cmd.ArgumentError
	switch {
	case errors.As(err, &srvErr):
		log.Error().Err(srvErr).Msg("command failed")
		return RespondEphemeral(serverErrorMessage)
	case errors.As(err, &argErr):
		return RespondEphemeral("Invalid arguments: " + argErr.Msg)
	default:
		log.Debug().Err(err).Msg("command returned an error")
		return RespondEphemeral("Error: " + err.Error())
	}
}

func (d *Dispatcher) writeJSON(w http.ResponseWriter, log zerolog.Logger, resp *discordgo.InteractionResponse) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode interaction response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Warn().Err(err).Msg("failed to write interaction response")
	}
}
