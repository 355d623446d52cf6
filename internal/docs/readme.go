// Package docs renders the command reference shipped in README.md.
package docs

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/bwmarrin/discordgo"

	"github.com/RogueDynamite/Justine/pkg/cmd"
)

// DefaultTemplate is used when no README template file is given.
const DefaultTemplate = `# {{.AppName}}

Discord interactions webhook answering slash commands.

## Commands

{{.Commands}}`

var optionTypes = map[discordgo.ApplicationCommandOptionType]string{
	discordgo.ApplicationCommandOptionString:  "text",
	discordgo.ApplicationCommandOptionInteger: "integer",
	discordgo.ApplicationCommandOptionBoolean: "true/false",
	discordgo.ApplicationCommandOptionNumber:  "number",
}

// CommandList renders every registered command, sorted by name, as a
// markdown list with its options nested underneath.
func CommandList(reg *cmd.Registry) string {
	var buf bytes.Buffer
	for _, def := range reg.Definitions() {
		fmt.Fprintf(&buf, "- **/%s** - %s\n", def.Name, def.Description)
		for _, opt := range def.Options {
			kind, ok := optionTypes[opt.Type]
			if !ok {
				kind = "value"
			}
			required := ""
			if opt.Required {
				required = ", required"
			}
			fmt.Fprintf(&buf, "  - `%s` (%s%s): %s\n", opt.Name, kind, required, opt.Description)
		}
	}
	return buf.String()
}

// Render executes tmpl with the application name and the command list.
func Render(w io.Writer, tmpl, appName string, reg *cmd.Registry) error {
	t, err := template.New("readme").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("parse readme template: %w", err)
	}
	data := struct {
		AppName  string
		Commands string
	}{
		AppName:  appName,
		Commands: strings.TrimRight(CommandList(reg), "\n") + "\n",
	}
	return t.Execute(w, data)
}

// WriteReadme renders the template at tmplPath (DefaultTemplate when empty)
// into outPath.
func WriteReadme(tmplPath, outPath, appName string, reg *cmd.Registry) error {
	tmpl := DefaultTemplate
	if tmplPath != "" {
		raw, err := os.ReadFile(tmplPath)
		if err != nil {
			return err
		}
		tmpl = string(raw)
	}

	var buf bytes.Buffer
	if err := Render(&buf, tmpl, appName, reg); err != nil {
		return err
	}
	return os.WriteFile(outPath, buf.Bytes(), 0o644)
}
