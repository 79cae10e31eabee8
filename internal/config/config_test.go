package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("PLANEFENCEDIR", t.TempDir())

	c := NewAppConfig()
	require.NoError(t, c.Load())

	assert.Equal(t, "/usr/share/planefence/persist/.internal/plane-alert-db.txt", c.PlaneFile())
	assert.Empty(t, c.FeederName())
	assert.Empty(t, c.Webhooks("PA"))

	require.NoError(t, c.Set("DISCORD_MEDIA", "screenshot"))
	assert.Equal(t, "screenshot", c.Media())
}

func TestEnv(t *testing.T) {
	t.Setenv("PLANEFENCEDIR", t.TempDir())
	t.Setenv("PLANEFILE", "/tmp/db.txt")
	t.Setenv("PA_DISCORD_WEBHOOKS", "https://discord.com/api/webhooks/1, https://discord.com/api/webhooks/2,")
	t.Setenv("DISCORD_FEEDER_NAME", "My Feeder")

	c := NewAppConfig()
	require.NoError(t, c.Load())

	assert.Equal(t, "/tmp/db.txt", c.PlaneFile())
	assert.Equal(t, "My Feeder", c.FeederName())
	assert.Equal(t, []string{"https://discord.com/api/webhooks/1", "https://discord.com/api/webhooks/2"}, c.Webhooks("PA"))
	assert.Empty(t, c.Webhooks("PF"))
}

func TestFileOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PLANEFENCEDIR", dir)
	t.Setenv("DISCORD_FEEDER_NAME", "from env")

	data := "# planefence config\n" +
		"DISCORD_FEEDER_NAME=from file\n" +
		"PF_ELEVATION=200\n" +
		"PF_ALTUNIT=meter\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "planefence.config"), []byte(data), 0o644))

	c := NewAppConfig()
	require.NoError(t, c.Load())

	assert.Equal(t, "from file", c.FeederName())
	assert.Equal(t, 200, c.Elevation())
	assert.Equal(t, "meter", c.AltUnit())
}

func TestElevationNotNumeric(t *testing.T) {
	t.Setenv("PLANEFENCEDIR", t.TempDir())
	t.Setenv("PF_ELEVATION", "high")

	c := NewAppConfig()
	require.NoError(t, c.Load())

	assert.Equal(t, 0, c.Elevation())
}
