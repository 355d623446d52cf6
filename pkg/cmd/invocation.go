// Package cmd provides the command core shared by the interactions webhook and
// the registration tooling: a command is something with a name, a description
// and Run(ctx, invocation). How it is exposed (HTTP webhook, bootstrap
// registration) is defined by adapters that wrap this.
package cmd

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Invocation carries one inbound application-command interaction to a command.
// It is scoped to a single request and never mutated by commands.
type Invocation struct {
	Interaction *discordgo.Interaction
	RequestID   string
}

// CommandName returns the invoked command name, or "" when the interaction is
// not an application command.
func (inv *Invocation) CommandName() string {
	data, ok := inv.commandData()
	if !ok {
		return ""
	}
	return data.Name
}

// RawOptions returns the parameter list exactly as Discord sent it. A nil
// slice means the payload carried no "options" field at all.
func (inv *Invocation) RawOptions() []*discordgo.ApplicationCommandInteractionDataOption {
	data, ok := inv.commandData()
	if !ok {
		return nil
	}
	return data.Options
}

// Options decodes the invocation's parameters into a name-keyed lookup.
func (inv *Invocation) Options() (Options, error) {
	return DecodeOptions(inv.RawOptions())
}

func (inv *Invocation) commandData() (discordgo.ApplicationCommandInteractionData, bool) {
	if inv == nil || inv.Interaction == nil {
		return discordgo.ApplicationCommandInteractionData{}, false
	}
	data, ok := inv.Interaction.Data.(discordgo.ApplicationCommandInteractionData)
	return data, ok
}

// Command is the universal contract: identity plus execution. Remote
// registration metadata stays in SlashProvider.
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, inv *Invocation) (*discordgo.InteractionResponse, error)
}

// SlashProvider is implemented by commands that can be registered with Discord
// as chat-input application commands.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}
