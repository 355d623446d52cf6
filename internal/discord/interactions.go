package discord

import "github.com/bwmarrin/discordgo"

// Pong acknowledges Discord's ping handshake.
func Pong() *discordgo.InteractionResponse {
	return &discordgo.InteractionResponse{Type: discordgo.InteractionResponsePong}
}

// Respond builds a public message reply to an interaction.
func Respond(content string) *discordgo.InteractionResponse {
	return Message(content, false)
}

// RespondEphemeral builds a reply only the invoking user can see.
func RespondEphemeral(content string) *discordgo.InteractionResponse {
	return Message(content, true)
}

// Message builds a message reply, hidden from everyone but the invoker when
// hidden is set.
func Message(content string, hidden bool) *discordgo.InteractionResponse {
	data := &discordgo.InteractionResponseData{Content: content}
	if hidden {
		data.Flags = discordgo.MessageFlagsEphemeral
	}
	return &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: data,
	}
}

// IsEphemeral reports whether resp is flagged as visible to the invoker only.
func IsEphemeral(resp *discordgo.InteractionResponse) bool {
	return resp != nil && resp.Data != nil && resp.Data.Flags&discordgo.MessageFlagsEphemeral != 0
}
