package middleware

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/RogueDynamite/Justine/pkg/cmd"
)

// WithCommandLogger logs every execution with the invoking user, the guild
// and how it ended. It logs through the request logger carried by ctx.
func WithCommandLogger() cmd.Middleware {
	return func(c cmd.Command) cmd.Command {
		return cmd.Wrap(c, func(ctx context.Context, inv *cmd.Invocation) (*discordgo.InteractionResponse, error) {
			start := time.Now()
			resp, err := c.Run(ctx, inv)

			log := zerolog.Ctx(ctx)
			user := resolveUser(inv)
			status := Status(err)
			var ev *zerolog.Event
			switch status {
			case StatusSuccess:
				ev = log.Info()
			case StatusArgumentError:
				ev = log.Info().Str("reason", err.Error())
			case StatusServerError:
				ev = log.Error().Err(err)
			default:
				ev = log.Warn().Err(err)
			}
			ev.Str("command", c.Name()).
				Str("status", status).
				Str("user_id", user.ID).
				Str("user", user.Username).
				Str("guild_id", guildID(inv)).
				Dur("took", time.Since(start)).
				Msg("command executed")

			return resp, err
		})
	}
}

// resolveUser returns the invoking user: the member's user inside a guild,
// the interaction user in DMs.
func resolveUser(inv *cmd.Invocation) *discordgo.User {
	if inv != nil && inv.Interaction != nil {
		i := inv.Interaction
		if i.Member != nil && i.Member.User != nil {
			return i.Member.User
		}
		if i.User != nil {
			return i.User
		}
	}
	return &discordgo.User{ID: "unknown", Username: "Unknown"}
}

func guildID(inv *cmd.Invocation) string {
	if inv == nil || inv.Interaction == nil {
		return ""
	}
	return inv.Interaction.GuildID
}
