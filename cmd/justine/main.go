package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RogueDynamite/Justine/cmd/justine/internal"
	"github.com/RogueDynamite/Justine/cmd/justine/internal/readme"
	"github.com/RogueDynamite/Justine/cmd/justine/internal/register"
	"github.com/RogueDynamite/Justine/cmd/justine/internal/serve"
	"github.com/RogueDynamite/Justine/cmd/justine/internal/version"
)

func NewJustineCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "justine",
		Short:         "Discord slash-command webhook",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&internal.EnvFile, "env-file", "", "Load environment variables from this file (default ./.env)")

	cmd.AddCommand(
		serve.NewServeCommand(),
		register.NewRegisterCommand(),
		readme.NewReadmeCommand(),
		version.NewVersionCommand(),
	)
	return cmd
}

func main() {
	if err := NewJustineCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
