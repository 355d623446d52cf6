package readme

import (
	"github.com/spf13/cobra"

	"github.com/RogueDynamite/Justine/internal/command"
	"github.com/RogueDynamite/Justine/internal/docs"
	"github.com/RogueDynamite/Justine/internal/version"
)

func NewReadmeCommand() *cobra.Command {
	var (
		tmplPath string
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "readme",
		Short: "Regenerate README.md from the built-in commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := command.NewRegistry(command.Options{})
			if err != nil {
				return err
			}
			if outPath == "-" {
				return docs.Render(cmd.OutOrStdout(), docs.DefaultTemplate, version.AppName, reg)
			}
			if err := docs.WriteReadme(tmplPath, outPath, version.AppName, reg); err != nil {
				return err
			}
			cmd.Printf("%s updated\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&tmplPath, "template", "t", "", "Template file (built-in template when empty)")
	cmd.Flags().StringVarP(&outPath, "output", "o", "README.md", "Output file, - for stdout")

	return cmd
}
