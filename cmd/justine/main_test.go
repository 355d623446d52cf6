package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewJustineCommand(t *testing.T) {
	cmd := NewJustineCommand()

	assert.Equal(t, "justine", cmd.Use)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("env-file"))

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"serve", "register", "readme", "version"})
}
