package cmd

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// Middleware decorates a command. The result is still a Command, so chains
// compose.
type Middleware func(Command) Command

// Apply wraps c in mws. The last middleware ends up outermost and sees the
// invocation first.
func Apply(c Command, mws ...Middleware) Command {
	for _, mw := range mws {
		c = mw(c)
	}
	return c
}

// RunFunc matches Command.Run.
type RunFunc func(ctx context.Context, inv *Invocation) (*discordgo.InteractionResponse, error)

// Unwrappable commands hide another command, typically a middleware layer.
type Unwrappable interface {
	Command
	Unwrap() Command
}

// Wrapped keeps the identity of Inner and replaces how it runs.
type Wrapped struct {
	Inner   Command
	RunFunc RunFunc
}

func (w *Wrapped) Name() string        { return w.Inner.Name() }
func (w *Wrapped) Description() string { return w.Inner.Description() }
func (w *Wrapped) Unwrap() Command     { return w.Inner }

// Run calls RunFunc, or Inner.Run when no RunFunc is set.
func (w *Wrapped) Run(ctx context.Context, inv *Invocation) (*discordgo.InteractionResponse, error) {
	if w.RunFunc == nil {
		return w.Inner.Run(ctx, inv)
	}
	return w.RunFunc(ctx, inv)
}

// Wrap is the building block for middleware: it returns a command named
// like c that runs run.
func Wrap(c Command, run RunFunc) Command {
	return &Wrapped{Inner: c, RunFunc: run}
}

// Root strips every Unwrappable layer and returns the innermost command,
// where provider interfaces such as SlashProvider are implemented.
func Root(c Command) Command {
	for {
		u, ok := c.(Unwrappable)
		if !ok {
			return c
		}
		c = u.Unwrap()
	}
}
