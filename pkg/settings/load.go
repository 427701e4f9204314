package settings

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. SYNCQUEUE_WORKLOAD_PRODUCERS.
const EnvPrefix = "SYNCQUEUE"

var validate = validator.New()

// NewViper returns a viper instance with defaults and environment overrides wired.
// Callers may bind flags to it before calling Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logger.log_level", "info")
	v.SetDefault("logger.file_log_name", "")
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.compress", false)

	v.SetDefault("workload.producers", 1)
	v.SetDefault("workload.consumers", 2)
	v.SetDefault("workload.items", 100)
	v.SetDefault("workload.producer_delay.min", 100*time.Millisecond)
	v.SetDefault("workload.producer_delay.max", 200*time.Millisecond)
	v.SetDefault("workload.consumer_delay.min", 100*time.Millisecond)
	v.SetDefault("workload.consumer_delay.max", 400*time.Millisecond)
	v.SetDefault("workload.trace", false)

	v.SetDefault("server.mode", "release")
	v.SetDefault("server.listen", "")

	return v
}

// Load reads the config file at path (if any) into v, decodes and validates it.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	return nil
}
