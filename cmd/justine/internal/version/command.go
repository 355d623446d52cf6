package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/RogueDynamite/Justine/internal/version"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Aliases: []string{"v"},
		Short:   "Show version information",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", version.AppName, version.String())
			if version.BuildTime != "" {
				fmt.Fprintf(out, "  Build: %s\n", version.BuildTime)
			}
			fmt.Fprintf(out, "  Go: %s\n", runtime.Version())
		},
	}
}
