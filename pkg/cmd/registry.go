package cmd

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"
)

// Registry stores commands by name. It is built once and never mutated, so it
// is safe for concurrent lookups. It does not perform dispatch; adapters look
// up commands and invoke them with their own context.
type Registry struct {
	commands map[string]Command
}

// NewRegistry returns a registry holding cmds. Empty or duplicate names are
// rejected because the name is the routing key.
func NewRegistry(cmds ...Command) (*Registry, error) {
	r := &Registry{commands: make(map[string]Command, len(cmds))}
	for _, c := range cmds {
		if c == nil {
			return nil, fmt.Errorf("nil command")
		}
		name := c.Name()
		if name == "" {
			return nil, fmt.Errorf("command with empty name")
		}
		if _, exists := r.commands[name]; exists {
			return nil, fmt.Errorf("duplicate command %q", name)
		}
		r.commands[name] = c
	}
	return r, nil
}

// Lookup returns the command with the given name.
func (r *Registry) Lookup(name string) (Command, bool) {
	if r == nil {
		return nil, false
	}
	c, ok := r.commands[name]
	return c, ok
}

// All returns all registered commands, sorted by name.
func (r *Registry) All() []Command {
	if r == nil {
		return nil
	}
	list := make([]Command, 0, len(r.commands))
	for _, c := range r.commands {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Len reports how many commands are registered.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

// Definitions returns the application-command descriptors of every command
// that provides one, sorted by name.
func (r *Registry) Definitions() []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand
	for _, c := range r.All() {
		sp, ok := Root(c).(SlashProvider)
		if !ok {
			continue
		}
		if def := sp.SlashDefinition(); def != nil {
			defs = append(defs, def)
		}
	}
	return defs
}
