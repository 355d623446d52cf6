package random

import (
	"context"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/RogueDynamite/Justine/internal/discord"
	"github.com/RogueDynamite/Justine/internal/numgen"
	"github.com/RogueDynamite/Justine/pkg/cmd"
)

const (
	defaultMin   = 0
	defaultSides = 6
	maxRolls     = 100
)

// GeneratorFunc builds the generator a roll draws from, covering [min,max).
type GeneratorFunc func(min, max int64) (numgen.Generator, error)

func uniform(min, max int64) (numgen.Generator, error) {
	return numgen.NewUniform(min, max)
}

type RandomCommand struct {
	// NewGenerator overrides the uniform generator. Nil means numgen.NewUniform.
	NewGenerator GeneratorFunc
}

func (c *RandomCommand) Name() string { return "random" }
func (c *RandomCommand) Description() string {
	return "Gives random numbers in the specified range."
}

func (c *RandomCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "min",
				Description: "The minimum value (inclusive), 0 by default.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "max",
				Description: "The maximum value (exclusive), min + 6 by default.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "rolls",
				Description: "How many numbers to generate, 1 by default.",
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "hidden",
				Description: "Only show the result to you.",
			},
		},
	}
}

func (c *RandomCommand) Run(_ context.Context, inv *cmd.Invocation) (*discordgo.InteractionResponse, error) {
	opts, err := inv.Options()
	if err != nil {
		return nil, err
	}

	min, err := opts.Int("min", defaultMin)
	if err != nil {
		return nil, err
	}
	max, err := opts.Int("max", min+defaultSides)
	if err != nil {
		return nil, err
	}
	rolls, err := opts.Int("rolls", 1)
	if err != nil {
		return nil, err
	}
	hidden, err := opts.Bool("hidden", false)
	if err != nil {
		return nil, err
	}

	if rolls < 1 || rolls > maxRolls {
		return nil, cmd.Argumentf("rolls must be between 1 and %d", maxRolls)
	}

	newGenerator := c.NewGenerator
	if newGenerator == nil {
		newGenerator = uniform
	}
	gen, err := newGenerator(min, max)
	if err != nil {
		return nil, err
	}

	values, err := numgen.Generate(int(rolls), gen)
	if err != nil {
		return nil, err
	}

	return discord.Message(formatRolls(values), hidden), nil
}

func formatRolls(values []int64) string {
	if len(values) == 1 {
		return "You rolled a " + strconv.FormatInt(values[0], 10) + "."
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "Here are your numbers!\n" + strings.Join(parts, ",")
}
