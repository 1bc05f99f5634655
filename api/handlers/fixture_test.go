package handlers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linesmerrill/report-nui/api/handlers"
)

func TestLoadFixture(t *testing.T) {
	f, err := handlers.LoadFixture("testdata/fixture.yaml")
	require.NoError(t, err)

	assert.Equal(t, "Staging RP", f.Host.ServerName)
	assert.Equal(t, "dark", f.Host.Theme)
	assert.Equal(t, "dev", f.Host.Version)

	require.NotNil(t, f.Player)
	assert.Equal(t, 12, f.Player.FivemID)
	assert.NotNil(t, f.Player.Identifiers)
	require.Len(t, f.Player.NearbyPlayers, 1)
	require.NotNil(t, f.Player.NearbyPlayers[0].Distance)
	assert.Equal(t, 3.5, *f.Player.NearbyPlayers[0].Distance)

	require.NotNil(t, f.Config)
	require.Len(t, f.Config.Categories, 2)
	assert.Equal(t, "scam", f.Config.Categories[0].ID)
	assert.Equal(t, "Random deathmatch", f.Config.Categories[1].Label)
	require.NotNil(t, f.Config.ReportFormConfig)
	assert.Equal(t, "Headline", f.Config.ReportFormConfig.TitleLabel)
	field := f.Config.ReportFormConfig.Categories[0].Fields[0]
	assert.True(t, field.Required)
	require.NotNil(t, field.Order)
	assert.Equal(t, 1, *field.Order)

	assert.Equal(t, "https://staging.example.invalid/tickets", f.TicketBaseURL)
	assert.Equal(t, handlers.DefaultFixture().ScreenshotBaseURL, f.ScreenshotBaseURL)
}

func TestLoadFixtureDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("host:\n  serverName: Bare\n"), 0o600))

	f, err := handlers.LoadFixture(path)
	require.NoError(t, err)
	assert.Equal(t, "Bare", f.Host.ServerName)
	require.NotNil(t, f.Player)
	assert.Equal(t, "Developer", f.Player.Name)
	assert.Nil(t, f.Config)
}

func TestLoadFixtureErrors(t *testing.T) {
	_, err := handlers.LoadFixture(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player: [unclosed"), 0o600))
	_, err = handlers.LoadFixture(path)
	assert.Error(t, err)
}
