package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/RogueDynamite/Justine/internal/discord"
	"github.com/RogueDynamite/Justine/internal/version"
	"github.com/RogueDynamite/Justine/pkg/cmd"
)

var errNoCommands = errors.New("help has no command list")

// Lister is the part of the registry help reads from.
type Lister interface {
	All() []cmd.Command
}

type HelpCommand struct {
	// Commands is resolved on every run so help can list itself.
	Commands func() Lister
}

func (c *HelpCommand) Name() string        { return "help" }
func (c *HelpCommand) Description() string { return "Get a list of available commands" }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(_ context.Context, _ *cmd.Invocation) (*discordgo.InteractionResponse, error) {
	if c.Commands == nil {
		return nil, cmd.Internal(errNoCommands)
	}
	lister := c.Commands()
	if lister == nil {
		return nil, cmd.Internal(errNoCommands)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s %s**\n", version.AppName, version.String())
	for _, command := range lister.All() {
		fmt.Fprintf(&sb, "`/%s` - %s\n", command.Name(), command.Description())
	}
	return discord.RespondEphemeral(strings.TrimRight(sb.String(), "\n")), nil
}
