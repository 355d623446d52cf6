package discord

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// commandShape is the part of a command definition that Discord shows to
// users. IDs, versions and other server-assigned fields are left out.
type commandShape struct {
	Name        string                           `json:"name"`
	Description string                           `json:"description"`
	Type        discordgo.ApplicationCommandType `json:"type"`
	Options     []optionShape                    `json:"options,omitempty"`
}

type optionShape struct {
	Name         string                                 `json:"name"`
	Description  string                                 `json:"description"`
	Type         discordgo.ApplicationCommandOptionType `json:"type"`
	Required     bool                                   `json:"required,omitempty"`
	Autocomplete bool                                   `json:"autocomplete,omitempty"`
	MinValue     *float64                               `json:"min_value,omitempty"`
	MaxValue     float64                                `json:"max_value,omitempty"`
	Choices      []choiceShape                          `json:"choices,omitempty"`
	Options      []optionShape                          `json:"options,omitempty"`
}

type choiceShape struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// DefinitionHash fingerprints a command definition so that a local
// definition and its registered copy hash the same.
func DefinitionHash(def *discordgo.ApplicationCommand) string {
	data, _ := json.Marshal(commandShape{
		Name:        def.Name,
		Description: def.Description,
		Type:        commandType(def.Type),
		Options:     optionShapes(def.Options),
	})
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// commandType treats an unset type as chat input, which is what Discord
// assigns.
func commandType(t discordgo.ApplicationCommandType) discordgo.ApplicationCommandType {
	if t == 0 {
		return discordgo.ChatApplicationCommand
	}
	return t
}

// optionRequired drops the required flag from subcommands and groups.
// Discord ignores it there and never echoes it back.
func optionRequired(o *discordgo.ApplicationCommandOption) bool {
	switch o.Type {
	case discordgo.ApplicationCommandOptionSubCommand, discordgo.ApplicationCommandOptionSubCommandGroup:
		return false
	}
	return o.Required
}

// optionShapes orders options by name. Choices keep their order since
// Discord displays them as given.
func optionShapes(opts []*discordgo.ApplicationCommandOption) []optionShape {
	var shapes []optionShape
	for _, o := range opts {
		if o == nil {
			continue
		}
		s := optionShape{
			Name:         o.Name,
			Description:  o.Description,
			Type:         o.Type,
			Required:     optionRequired(o),
			Autocomplete: o.Autocomplete,
			MinValue:     o.MinValue,
			MaxValue:     o.MaxValue,
			Options:      optionShapes(o.Options),
		}
		for _, c := range o.Choices {
			if c != nil {
				s.Choices = append(s.Choices, choiceShape{Name: c.Name, Value: c.Value})
			}
		}
		shapes = append(shapes, s)
	}
	sort.Slice(shapes, func(i, j int) bool { return shapes[i].Name < shapes[j].Name })
	return shapes
}
