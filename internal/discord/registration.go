package discord

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// CommandClient is the slice of the Discord REST client used for
// registration. *discordgo.Session satisfies it.
type CommandClient interface {
	ApplicationCommands(appID, guildID string, options ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error)
	ApplicationCommandCreate(appID, guildID string, cmd *discordgo.ApplicationCommand, options ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error)
}

// NewSession returns a REST-only Discord session authenticated as the bot.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	return s, nil
}

// Registrar uploads command definitions for one application, scoped to a
// guild when GuildID is set.
type Registrar struct {
	Client  CommandClient
	AppID   string
	GuildID string

	// Limiter paces outbound calls. Nil means unpaced.
	Limiter *rate.Limiter
	// Force uploads every definition even when the registered copy matches.
	Force bool
	Log   zerolog.Logger
}

// RegisterResult counts what a registration run did.
type RegisterResult struct {
	Registered int
	Unchanged  int
	Failed     int
}

// Register creates or overwrites every definition that differs from what
// Discord already has. Each upload is attempted once; failures are logged and
// collected and the remaining definitions are still attempted.
func (r *Registrar) Register(ctx context.Context, defs []*discordgo.ApplicationCommand) (RegisterResult, error) {
	var (
		res  RegisterResult
		errs []error
	)

	remote := map[string]string{}
	if !r.Force {
		existing, err := r.existing(ctx)
		if err != nil {
			// Without the remote list every definition is uploaded.
			r.Log.Warn().Err(err).Msg("could not list registered commands")
			existing = nil
		}
		for _, c := range existing {
			remote[c.Name] = DefinitionHash(c)
		}
	}

	for i, def := range defs {
		l := r.Log.With().Str("command", def.Name).Str("guild", r.GuildID).Logger()
		hash := DefinitionHash(def)
		if remote[def.Name] == hash {
			res.Unchanged++
			l.Debug().Str("hash", hash).Msg("command unchanged")
			continue
		}

		var created *discordgo.ApplicationCommand
		err := r.call(ctx, func() error {
			var err error
			created, err = r.Client.ApplicationCommandCreate(r.AppID, r.GuildID, def, discordgo.WithContext(ctx))
			return err
		})
		if err != nil {
			res.Failed++
			l.Error().Err(err).Msg("failed to register command")
			errs = append(errs, fmt.Errorf("register /%s: %w", def.Name, err))
			if ctx.Err() != nil {
				res.Failed += len(defs) - i - 1
				break
			}
			continue
		}

		res.Registered++
		id := ""
		if created != nil {
			id = created.ID
		}
		l.Info().Str("id", id).Str("hash", hash).Msg("registered command")
	}
	return res, errors.Join(errs...)
}

func (r *Registrar) existing(ctx context.Context) ([]*discordgo.ApplicationCommand, error) {
	var cmds []*discordgo.ApplicationCommand
	err := r.call(ctx, func() error {
		var err error
		cmds, err = r.Client.ApplicationCommands(r.AppID, r.GuildID, discordgo.WithContext(ctx))
		return err
	})
	return cmds, err
}

// call waits for the limiter, then runs fn.
func (r *Registrar) call(ctx context.Context, fn func() error) error {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return fn()
}
