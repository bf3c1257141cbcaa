package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrFailedToReadEnv     = errors.New("failed to read .env file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidPort         = errors.New("server port must be between 1 and 65535")
	ErrDataFileRequired    = errors.New("data file path is required")
	ErrInvalidActivitySize = errors.New("activity size must be positive")
	ErrInvalidMode         = errors.New("server mode must be debug, release or test")
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port int    `mapstructure:"port" yaml:"port"`
		Mode string `mapstructure:"mode" yaml:"mode"`
	} `mapstructure:"server" yaml:"server"`
	Data struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"data" yaml:"data"`
	Log struct {
		Dir    string `mapstructure:"dir" yaml:"dir"`
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`
	Redis struct {
		URL string `mapstructure:"url" yaml:"url"`
	} `mapstructure:"redis" yaml:"redis"`
	Activity struct {
		Size int `mapstructure:"size" yaml:"size"`
	} `mapstructure:"activity" yaml:"activity"`
	Elastic struct {
		URL   string `mapstructure:"url" yaml:"url"`
		Index string `mapstructure:"index" yaml:"index"`
	} `mapstructure:"elastic" yaml:"elastic"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Server.Port = DefaultPort
	cfg.Server.Mode = DefaultMode

	cfg.Data.File = DefaultDataFile

	cfg.Log.Dir = DefaultLogDir
	cfg.Log.Level = DefaultLogLevel
	cfg.Log.Format = DefaultLogFormat

	cfg.Activity.Size = DefaultActivitySize

	cfg.Elastic.Index = DefaultIndexName

	return cfg
}

// Load reads configuration from defaults, an optional YAML file, a .env file,
// BOOKS_* environment variables and finally command line flags, in increasing priority.
// An empty path looks for books.yaml in the working directory and tolerates its absence.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := newViper()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("%w: %w", ErrFailedToReadConfig, err)
		}
	}

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToParseConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper registers every key with its default so environment overrides reach Unmarshal
func newViper() *viper.Viper {
	defaults := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.mode", defaults.Server.Mode)
	v.SetDefault("data.file", defaults.Data.File)
	v.SetDefault("log.dir", defaults.Log.Dir)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("log.format", defaults.Log.Format)
	v.SetDefault("redis.url", defaults.Redis.URL)
	v.SetDefault("activity.size", defaults.Activity.Size)
	v.SetDefault("elastic.url", defaults.Elastic.URL)
	v.SetDefault("elastic.index", defaults.Elastic.Index)

	_ = v.BindEnv("redis.url", EnvPrefix+"_REDIS_URL", "REDIS_URL")
	_ = v.BindEnv("elastic.url", EnvPrefix+"_ELASTIC_URL", "ELASTIC_URL")

	return v
}

// bindFlags maps the serve command flags onto config keys, only when set explicitly
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	keys := map[string]string{
		"port":      "server.port",
		"data-file": "data.file",
		"log-dir":   "log.dir",
		"log-level": "log.level",
	}

	for name, key := range keys {
		flag := flags.Lookup(name)
		if flag == nil || !flag.Changed {
			continue
		}

		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("%w: %w", ErrFailedToParseConfig, err)
		}
	}

	return nil
}

func loadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}

	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailedToReadEnv, err)
	}

	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return ErrInvalidPort
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return ErrInvalidMode
	}

	if strings.TrimSpace(c.Data.File) == "" {
		return ErrDataFileRequired
	}

	if c.Activity.Size <= 0 {
		return ErrInvalidActivitySize
	}

	return nil
}

// Address returns the listen address for the HTTP server
func (c *Config) Address() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}
