package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	dwerrors "github.com/dashwire-dev/dashwire/internal/errors"
)

const (
	// ConfigFileName is the base name of the configuration file.
	ConfigFileName = "dashwire"

	// EnvPrefix is the prefix for environment variable overrides
	// (e.g. DASHWIRE_LISTEN).
	EnvPrefix = "DASHWIRE"

	// DefaultListen is the default server listen address.
	DefaultListen = "localhost:3000"
)

// Config is the server configuration, loaded from dashwire.yaml (or .json,
// .toml) and overridable through DASHWIRE_* environment variables.
type Config struct {
	// Listen is the address the server binds to.
	Listen string `mapstructure:"listen" validate:"required,hostname_port"`

	// Title is the dashboard page title.
	Title string `mapstructure:"title"`

	// Pretty enables pretty-printed HTML output.
	Pretty bool `mapstructure:"pretty"`

	// Metrics mounts /metrics and records session metrics.
	Metrics bool `mapstructure:"metrics"`

	// MaxSessions caps concurrent live sessions. 0 means unlimited.
	MaxSessions int `mapstructure:"max_sessions" validate:"gte=0"`

	// LogLevel is the zerolog level name.
	LogLevel string `mapstructure:"log_level" validate:"omitempty,oneof=trace debug info warn error"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Listen:   DefaultListen,
		Title:    "dashwire",
		Metrics:  true,
		LogLevel: "info",
	}
}

// Load reads the configuration from the given directory (or the working
// directory if empty), applies environment overrides, and validates the
// result. A missing file is not an error; defaults apply.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	if dir != "" {
		v.AddConfigPath(dir)
	} else {
		v.AddConfigPath(".")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("listen", def.Listen)
	v.SetDefault("title", def.Title)
	v.SetDefault("pretty", def.Pretty)
	v.SetDefault("metrics", def.Metrics)
	v.SetDefault("max_sessions", def.MaxSessions)
	v.SetDefault("log_level", def.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, dwerrors.New("E201").WithWrapped(err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, dwerrors.New("E201").WithWrapped(err)
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate checks the struct tags and converts failures into coded errors.
func validate(cfg Config) error {
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return dwerrors.New("E202").
			WithWrapped(err).
			WithSuggestion("check listen address, max_sessions and log_level values")
	}
	return nil
}
