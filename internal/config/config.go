package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Site   SiteConfig   `mapstructure:"site"`
	Output OutputConfig `mapstructure:"output"`
}

// SiteConfig holds target site and fetch behavior configuration
type SiteConfig struct {
	BaseURL              string `mapstructure:"base_url"`
	Timeout              int    `mapstructure:"timeout"`     // seconds per request
	MaxRetries           int    `mapstructure:"max_retries"` // attempts after the first failure
	RetryWait            int    `mapstructure:"retry_wait"`  // seconds between retries
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	CategoryPause        int    `mapstructure:"category_pause"` // seconds between category fetches
	ProductPause         int    `mapstructure:"product_pause"`  // seconds between product fetches
}

// OutputConfig holds export and image download configuration
type OutputConfig struct {
	File       string `mapstructure:"file"`
	TestFile   string `mapstructure:"test_file"` // used by single-category test runs
	ImageDir   string `mapstructure:"image_dir"`
	ImagePause int    `mapstructure:"image_pause"` // milliseconds between image downloads
}

// Load loads configuration from YAML file with environment variable overrides.
// A missing config.yaml is not an error; the defaults describe a full crawl.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("site.base_url", "https://igold.bg")
	viper.SetDefault("site.timeout", 10)
	viper.SetDefault("site.max_retries", 3)
	viper.SetDefault("site.retry_wait", 2)
	viper.SetDefault("site.max_requests_per_second", 2)
	viper.SetDefault("site.category_pause", 2)
	viper.SetDefault("site.product_pause", 1)

	viper.SetDefault("output.file", "igold_data.xlsx")
	viper.SetDefault("output.test_file", "igold_test_data.xlsx")
	viper.SetDefault("output.image_dir", "downloaded_images")
	viper.SetDefault("output.image_pause", 100)
}
