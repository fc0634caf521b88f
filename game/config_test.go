package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigOverridesOnTopOfDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("rotation_duration: 0.25\nedge_distance: 4.0\n"))
	require.NoError(t, err)
	assert.Equal(t, 0.25, cfg.RotationDuration)
	assert.Equal(t, float32(4.0), cfg.EdgeDistance)
	// untouched keys keep their defaults
	assert.Equal(t, float32(5.0), cfg.HalfExtent)
	assert.Equal(t, float32(0.7), cfg.IntentThreshold)
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	cases := []string{
		"half_extent: -1\n",
		"rotation_duration: 0\n",
		"edge_distance: 9\n", // beyond half_extent
		"detector_max: 0\n",
		"intent_threshold: 1.5\n",
		"move_speed: -2\n",
	}
	for _, body := range cases {
		_, err := LoadConfig(strings.NewReader(body))
		assert.Error(t, err, "config %q must be rejected", body)
	}
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("half_extent: [not a number\n"))
	assert.Error(t, err)
}

func TestLoadConfigFileMissingPath(t *testing.T) {
	_, err := LoadConfigFile("./does-not-exist.yaml")
	assert.Error(t, err)
}
