package register

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RogueDynamite/Justine/internal/config"
)

type recordingClient struct {
	remote []*discordgo.ApplicationCommand
	guilds []string
	err    error
}

func (c *recordingClient) ApplicationCommands(string, string, ...discordgo.RequestOption) ([]*discordgo.ApplicationCommand, error) {
	return c.remote, nil
}

func (c *recordingClient) ApplicationCommandCreate(_, guildID string, cmd *discordgo.ApplicationCommand, _ ...discordgo.RequestOption) (*discordgo.ApplicationCommand, error) {
	c.guilds = append(c.guilds, guildID+"/"+cmd.Name)
	return cmd, c.err
}

func testConfig(t *testing.T, extra map[string]string) *config.Config {
	t.Helper()
	environ := map[string]string{
		"DISCORD_TOKEN":          "token",
		"DISCORD_APPLICATION_ID": "app",
		"REGISTER_RATE":          "1000",
	}
	for k, v := range extra {
		environ[k] = v
	}
	cfg, err := config.LoadFrom(environ)
	require.NoError(t, err)
	return cfg
}

func definitions() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{{Name: "help"}, {Name: "random"}}
}

func TestNewRegisterCommand(t *testing.T) {
	cmd := NewRegisterCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "register", cmd.Use)
	assert.True(t, cmd.HasAlias("r"))
	for _, name := range []string{"guild", "global", "dry-run", "force"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestDryRunPrintsDefinitions(t *testing.T) {
	cmd := NewRegisterCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--dry-run"})

	require.NoError(t, cmd.Execute())

	var defs []discordgo.ApplicationCommand
	require.NoError(t, json.Unmarshal(out.Bytes(), &defs))
	require.Len(t, defs, 2)
	assert.Equal(t, "help", defs[0].Name)
	assert.Equal(t, "random", defs[1].Name)
}

func TestRun(t *testing.T) {
	client := &recordingClient{}
	cfg := testConfig(t, map[string]string{"DISCORD_GUILD_ID": "g1"})

	require.NoError(t, run(context.Background(), cfg, definitions(), false, client))
	assert.Equal(t, []string{"g1/help", "g1/random"}, client.guilds)
}

func TestRunSkipsUnchangedUnlessForced(t *testing.T) {
	client := &recordingClient{remote: definitions()}
	cfg := testConfig(t, nil)

	require.NoError(t, run(context.Background(), cfg, definitions(), false, client))
	assert.Empty(t, client.guilds)

	require.NoError(t, run(context.Background(), cfg, definitions(), true, client))
	assert.Equal(t, []string{"/help", "/random"}, client.guilds)
}

func TestRunReportsFailures(t *testing.T) {
	client := &recordingClient{err: &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized"}}}
	cfg := testConfig(t, nil)

	err := run(context.Background(), cfg, definitions(), false, client)
	assert.ErrorContains(t, err, "2 of 2 commands failed to register")
}

func TestRunRequiresToken(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.ErrorContains(t, run(context.Background(), cfg, definitions(), false, &recordingClient{}), "DISCORD_TOKEN")
}
