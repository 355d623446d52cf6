package register

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bwmarrin/discordgo"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/RogueDynamite/Justine/cmd/justine/internal"
	"github.com/RogueDynamite/Justine/internal/command"
	"github.com/RogueDynamite/Justine/internal/config"
	"github.com/RogueDynamite/Justine/internal/discord"
	"github.com/RogueDynamite/Justine/internal/logger"
)

func NewRegisterCommand() *cobra.Command {
	var (
		guild  string
		global bool
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:     "register",
		Aliases: []string{"r"},
		Short:   "Register slash commands with Discord",
		Long: `Uploads the definition of every built-in command. Commands are scoped to
DISCORD_GUILD_ID when it is set, which makes them available immediately;
use --global to register them for every guild instead. Definitions that
already match the registered copy are skipped unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := command.NewRegistry(command.Options{})
			if err != nil {
				return err
			}
			defs := reg.Definitions()

			if dryRun {
				return printDefinitions(cmd.OutOrStdout(), defs)
			}

			cfg, err := internal.LoadConfig()
			if err != nil {
				return err
			}
			switch {
			case global:
				cfg.GuildID = ""
			case guild != "":
				cfg.GuildID = guild
			}
			return run(cmd.Context(), cfg, defs, force, nil)
		},
	}

	cmd.Flags().StringVarP(&guild, "guild", "g", "", "Register in this guild, overrides DISCORD_GUILD_ID")
	cmd.Flags().BoolVar(&global, "global", false, "Register globally even if DISCORD_GUILD_ID is set")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the definitions instead of uploading them")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Upload definitions even when unchanged")
	cmd.MarkFlagsMutuallyExclusive("guild", "global")

	return cmd
}

// run uploads defs. A nil client means a live session built from cfg.
func run(ctx context.Context, cfg *config.Config, defs []*discordgo.ApplicationCommand, force bool, client discord.CommandClient) error {
	if err := cfg.ValidateRegister(); err != nil {
		return err
	}

	closer, err := internal.SetupLogging(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	if client == nil {
		session, err := discord.NewSession(cfg.Token)
		if err != nil {
			return err
		}
		client = session
	}

	log := logger.Component("register")
	r := &discord.Registrar{
		Client:  client,
		AppID:   cfg.ApplicationID,
		GuildID: cfg.GuildID,
		Limiter: rate.NewLimiter(rate.Limit(cfg.RegisterRate), 1),
		Force:   force,
		Log:     log,
	}
	res, err := r.Register(ctx, defs)
	log.Info().
		Int("registered", res.Registered).
		Int("unchanged", res.Unchanged).
		Int("failed", res.Failed).
		Msg("registration finished")
	if err != nil {
		return fmt.Errorf("%d of %d commands failed to register: %w", res.Failed, len(defs), err)
	}
	return nil
}

func printDefinitions(w io.Writer, defs []*discordgo.ApplicationCommand) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(defs)
}
