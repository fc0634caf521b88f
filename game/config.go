package game

import (
	"fmt"
	"io"
	"os"

	"github.com/memmaker/cubenav/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the navigation core. Distances are in world
// units relative to the cube center, the duration in seconds.
type Config struct {
	HalfExtent       float32 `yaml:"half_extent"`
	RotationDuration float64 `yaml:"rotation_duration"`
	EdgeDistance     float32 `yaml:"edge_distance"`
	DetectorMax      float32 `yaml:"detector_max"`
	IntentThreshold  float32 `yaml:"intent_threshold"`
	MoveSpeed        float32 `yaml:"move_speed"`
}

func DefaultConfig() Config {
	return Config{
		HalfExtent:       5.0,
		RotationDuration: 1.0,
		EdgeDistance:     4.5,
		DetectorMax:      3.0,
		IntentThreshold:  0.7,
		MoveSpeed:        3.0,
	}
}

func (c Config) Validate() error {
	if c.HalfExtent <= 0 {
		return errors.New("half_extent must be positive")
	}
	if c.RotationDuration <= 0 {
		return errors.New("rotation_duration must be positive")
	}
	if c.EdgeDistance <= 0 || c.EdgeDistance >= c.HalfExtent {
		return errors.New("edge_distance must lie between zero and half_extent")
	}
	if c.DetectorMax <= 0 {
		return errors.New("detector_max must be positive")
	}
	if c.IntentThreshold <= 0 || c.IntentThreshold >= 1 {
		return errors.New("intent_threshold must lie between zero and one")
	}
	if c.MoveSpeed <= 0 {
		return errors.New("move_speed must be positive")
	}
	return nil
}

// LoadConfig reads YAML from r on top of the defaults, so a partial file
// only overrides what it names.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode navigation config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		util.LogConfigError(fmt.Sprintf("[Config] cannot open %s: %s", path, err))
		return Config{}, errors.Wrapf(err, "open navigation config %s", path)
	}
	defer file.Close()
	return LoadConfig(file)
}
