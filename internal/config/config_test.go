package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsEmptyConfig(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
	require.False(t, cfg.MQTT.Enabled)
	require.Empty(t, cfg.Rates)
}

func TestLoad_ParsesRatesAndMQTT(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
mqtt:
  enabled: true
  broker: homeserver.local:1883
  topic_prefix: timeclock
rates:
  ProjectA: 120.5
default_rate: 80
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.MQTT.Enabled)
	require.Equal(t, "homeserver.local:1883", cfg.MQTT.Broker)
	require.Equal(t, "timeclock", cfg.GetTopicPrefix())
	require.InDelta(t, 120.5, cfg.GetRate("ProjectA"), 1e-9)
	require.InDelta(t, 80, cfg.GetRate("SomethingElse"), 1e-9)
}

func TestLoad_BadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rates: [not a map"), 0600))

	_, err := Load(path)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	in := &Config{
		MQTT:        MQTTConfig{Enabled: true, Broker: "localhost:1883"},
		Rates:       map[string]float64{"ProjectA": 100},
		DefaultRate: 50,
	}
	require.NoError(t, Save(path, in))

	out, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestGetTopicPrefix_Default(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	require.Equal(t, "punchclock", cfg.GetTopicPrefix())
}
