package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/penwern/curate-museum-crosswalk/pkg/edm"
	"github.com/penwern/curate-museum-crosswalk/pkg/linkedart"
	"github.com/penwern/curate-museum-crosswalk/pkg/logger"
	"github.com/spf13/viper"
)

const (
	envPrefix = "CROSSWALK"
)

// Config holds the configuration for the crosswalk.
type Config struct {
	LinkedArt struct {
		ObjectPrefix   string `mapstructure:"object_prefix" comment:"URI prefix stripped from object ids"`
		HomepageMarker string `mapstructure:"homepage_marker" comment:"Substring identifying the public object page"`
	} `mapstructure:"linked_art"`

	EDM struct {
		SourceURLTemplate string `mapstructure:"source_url_template" validate:"omitempty,contains=%s" comment:"Fallback public page URL, %s is the record id"`
	} `mapstructure:"edm"`

	Output struct {
		Format string `mapstructure:"format" validate:"oneof=jsonl yaml parquet" comment:"Default output format"`
	} `mapstructure:"output"`

	Server struct {
		Addr         string `mapstructure:"addr" validate:"required" comment:"HTTP listen address"`
		MaxBodyBytes int64  `mapstructure:"max_body_bytes" validate:"min=1" comment:"Maximum request body size"`
	} `mapstructure:"server"`

	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error fatal panic" comment:"Log level"`
	Workers  int    `mapstructure:"workers" validate:"min=1,max=64" comment:"Concurrent file conversions"`
}

// Init initializes Viper configuration
func Init() {
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	// Set default values
	setDefaults()
}

// setDefaults sets the default values for the configuration
func setDefaults() {
	profile := linkedart.DefaultProfile()
	viper.SetDefault("linked_art.object_prefix", profile.ObjectPrefix)
	viper.SetDefault("linked_art.homepage_marker", profile.HomepageMarker)

	viper.SetDefault("edm.source_url_template", edm.DefaultSourceURLTemplate)

	viper.SetDefault("output.format", "jsonl")

	viper.SetDefault("server.addr", ":6906")
	viper.SetDefault("server.max_body_bytes", 32<<20)

	viper.SetDefault("log_level", "info")
	viper.SetDefault("workers", 4)
}

// Load loads the configuration from the environment variables and .env file
func Load() (*Config, error) {
	// Load .env if it exists
	if _, err := os.Stat(".env"); err == nil {
		logger.Info("Loading .env file")
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Unmarshal the configuration
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	// Validate the configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LinkedArtProfile returns the Linked Art profile described by the configuration.
func (c *Config) LinkedArtProfile() linkedart.Profile {
	return linkedart.Profile{
		ObjectPrefix:   c.LinkedArt.ObjectPrefix,
		HomepageMarker: c.LinkedArt.HomepageMarker,
	}
}

// validate validates the configuration
func validate(cfg *Config) error {
	validate := validator.New()
	return validate.Struct(cfg)
}
