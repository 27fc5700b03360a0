// SPDX-License-Identifier: MIT

package commands

import (
	"math"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/atomistic/cluster"
	"github.com/katalvlaran/atomistic/errors"
	"github.com/katalvlaran/atomistic/kinds"
)

// EnvPrefix is the environment prefix: ATOMISTIC_THRESHOLDS_CHARGE=0.2.
const EnvPrefix = "ATOMISTIC"

// Config is the resolved kindsctl configuration.
type Config struct {
	Thresholds kinds.Thresholds `mapstructure:"thresholds"`
	Output     string           `mapstructure:"output"`
	Log        LogConfig        `mapstructure:"log"`
}

// LogConfig selects the CLI logger.
type LogConfig struct {
	JSON  bool `mapstructure:"json"`
	Debug bool `mapstructure:"debug"`
}

// newViper initializes Viper with the environment binding and defaults,
// then merges configPath when given.
func newViper(configPath string) (*viper.Viper, error) {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", configPath)
		}
	}

	return v, nil
}

// SetDefaults registers every configuration key with its default.
func SetDefaults(v *viper.Viper) {
	d := kinds.DefaultThresholds()
	v.SetDefault("thresholds.charge", d.Charge)
	v.SetDefault("thresholds.mass", d.Mass)
	v.SetDefault("thresholds.magnetization", d.Magnetization)
	v.SetDefault("thresholds.weight", d.Weight)
	v.SetDefault("output", "json")
	v.SetDefault("log.json", false)
	v.SetDefault("log.debug", false)
}

// loadConfig unmarshals v and checks the values.
func loadConfig(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	if cfg.Output != "json" && cfg.Output != "yaml" {
		return nil, errors.Usage("output", cfg.Output, "json", "yaml")
	}
	t := cfg.Thresholds
	for name, val := range map[string]float64{
		"thresholds.charge":        t.Charge,
		"thresholds.mass":          t.Mass,
		"thresholds.magnetization": t.Magnetization,
		"thresholds.weight":        t.Weight,
	} {
		if err := checkThreshold(name, val); err != nil {
			return nil, err
		}
	}

	return &cfg, nil
}

func checkThreshold(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errors.With(cluster.ErrBadThreshold, field, v, "must be finite and >= 0")
	}

	return nil
}
