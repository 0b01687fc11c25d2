package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/mmcdole/marquee/internal/domain"
)

const appName = "marquee"

// Config holds all application configuration
type Config struct {
	TMDB    TMDBConfig    `mapstructure:"tmdb"`
	UI      UIConfig      `mapstructure:"ui"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TMDBConfig holds API client configuration
type TMDBConfig struct {
	APIKey       string        `mapstructure:"api_key"`
	BaseURL      string        `mapstructure:"base_url"`
	ImageBaseURL string        `mapstructure:"image_base_url"`
	Language     string        `mapstructure:"language"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Retries      int           `mapstructure:"retries"`    // 0 sends every request exactly once
	RateLimit    float64       `mapstructure:"rate_limit"` // Requests per second, 0 disables
	RateBurst    int           `mapstructure:"rate_burst"`
}

// UIConfig holds interaction timings and list sizes
type UIConfig struct {
	SearchDebounce    time.Duration `mapstructure:"search_debounce"`
	PaginationLockout time.Duration `mapstructure:"pagination_lockout"`
	MinLoading        time.Duration `mapstructure:"min_loading"`
	RequestTimeout    time.Duration `mapstructure:"request_timeout"`
	TrendingWindow    string        `mapstructure:"trending_window"` // "day" or "week"
	TrendingLimit     int           `mapstructure:"trending_limit"`
	SimilarLimit      int           `mapstructure:"similar_limit"`
	SlideInterval     time.Duration `mapstructure:"slide_interval"`
}

// CacheConfig holds genre cache configuration
type CacheConfig struct {
	Dir      string        `mapstructure:"dir"` // Empty keeps the cache in memory
	GenreTTL time.Duration `mapstructure:"genre_ttl"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		TMDB: TMDBConfig{
			BaseURL:      "https://api.themoviedb.org/3",
			ImageBaseURL: "https://image.tmdb.org/t/p",
			Language:     "en-US",
			Timeout:      15 * time.Second,
			Retries:      0,
			RateLimit:    20,
			RateBurst:    10,
		},
		UI: UIConfig{
			SearchDebounce:    200 * time.Millisecond,
			PaginationLockout: time.Second,
			MinLoading:        600 * time.Millisecond,
			RequestTimeout:    30 * time.Second,
			TrendingWindow:    "day",
			TrendingLimit:     10,
			SimilarLimit:      6,
			SlideInterval:     5 * time.Second,
		},
		Cache: CacheConfig{
			Dir:      defaultCachePath(),
			GenreTTL: 7 * 24 * time.Hour,
		},
		Logging: LoggingConfig{
			File:  defaultLogPath(),
			Level: "INFO",
		},
	}
}

// defaultLogPath returns the default log file path for the current OS
func defaultLogPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName, appName+".log")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, appName+".log")
	}
}

// DefaultConfigDir returns the default config directory for the current OS
func DefaultConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), appName)
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", appName)
	}
}

// defaultCachePath returns the default cache directory path for the current OS
func defaultCachePath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("LOCALAPPDATA"), appName, "cache")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", appName, "cache")
	}
}

// setDefaults registers every key so environment overrides apply to all of them
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("tmdb.api_key", d.TMDB.APIKey)
	v.SetDefault("tmdb.base_url", d.TMDB.BaseURL)
	v.SetDefault("tmdb.image_base_url", d.TMDB.ImageBaseURL)
	v.SetDefault("tmdb.language", d.TMDB.Language)
	v.SetDefault("tmdb.timeout", d.TMDB.Timeout)
	v.SetDefault("tmdb.retries", d.TMDB.Retries)
	v.SetDefault("tmdb.rate_limit", d.TMDB.RateLimit)
	v.SetDefault("tmdb.rate_burst", d.TMDB.RateBurst)

	v.SetDefault("ui.search_debounce", d.UI.SearchDebounce)
	v.SetDefault("ui.pagination_lockout", d.UI.PaginationLockout)
	v.SetDefault("ui.min_loading", d.UI.MinLoading)
	v.SetDefault("ui.request_timeout", d.UI.RequestTimeout)
	v.SetDefault("ui.trending_window", d.UI.TrendingWindow)
	v.SetDefault("ui.trending_limit", d.UI.TrendingLimit)
	v.SetDefault("ui.similar_limit", d.UI.SimilarLimit)
	v.SetDefault("ui.slide_interval", d.UI.SlideInterval)

	v.SetDefault("cache.dir", d.Cache.Dir)
	v.SetDefault("cache.genre_ttl", d.Cache.GenreTTL)

	v.SetDefault("logging.file", d.Logging.File)
	v.SetDefault("logging.level", d.Logging.Level)
}

// newViper returns a viper instance with defaults and environment bindings.
// Keys map to MARQUEE_<SECTION>_<KEY>; TMDB_API_KEY is also accepted for the API key.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("MARQUEE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.BindEnv("tmdb.api_key", "MARQUEE_TMDB_API_KEY", "TMDB_API_KEY")

	return v
}

// Load loads configuration from configFile, or from the standard locations when it is empty.
// A .env file in the working directory is loaded into the environment first.
func Load(configFile string) (*Config, error) {
	// Missing .env is fine
	_ = godotenv.Load()

	v := newViper()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(DefaultConfigDir())
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configFile != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks value ranges. A missing API key is not an error here; see IsConfigured.
func (c *Config) Validate() error {
	var errs []error

	if !domain.TimeWindow(c.UI.TrendingWindow).Valid() {
		errs = append(errs, fmt.Errorf("ui.trending_window must be \"day\" or \"week\", got %q", c.UI.TrendingWindow))
	}
	if c.UI.TrendingLimit < 1 {
		errs = append(errs, fmt.Errorf("ui.trending_limit must be positive"))
	}
	if c.UI.SimilarLimit < 1 {
		errs = append(errs, fmt.Errorf("ui.similar_limit must be positive"))
	}
	if c.UI.SearchDebounce <= 0 {
		errs = append(errs, fmt.Errorf("ui.search_debounce must be positive"))
	}
	if c.UI.SlideInterval <= 0 {
		errs = append(errs, fmt.Errorf("ui.slide_interval must be positive"))
	}
	if c.UI.PaginationLockout < 0 || c.UI.MinLoading < 0 {
		errs = append(errs, fmt.Errorf("ui.pagination_lockout and ui.min_loading must not be negative"))
	}
	if c.UI.RequestTimeout <= 0 || c.TMDB.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("ui.request_timeout and tmdb.timeout must be positive"))
	}
	if c.TMDB.Retries < 0 {
		errs = append(errs, fmt.Errorf("tmdb.retries must not be negative"))
	}
	if c.TMDB.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("tmdb.rate_limit must not be negative"))
	}
	if c.TMDB.BaseURL == "" {
		errs = append(errs, fmt.Errorf("tmdb.base_url is required"))
	}

	return errors.Join(errs...)
}

// IsConfigured returns true if an API key is set
func (c *Config) IsConfigured() bool {
	return strings.TrimSpace(c.TMDB.APIKey) != ""
}

// Save writes cfg to configFile, or to the default location when it is empty
func Save(cfg *Config, configFile string) error {
	if configFile == "" {
		configFile = filepath.Join(DefaultConfigDir(), "config.yaml")
	}
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	v.Set("tmdb.api_key", cfg.TMDB.APIKey)
	v.Set("tmdb.base_url", cfg.TMDB.BaseURL)
	v.Set("tmdb.image_base_url", cfg.TMDB.ImageBaseURL)
	v.Set("tmdb.language", cfg.TMDB.Language)
	v.Set("tmdb.timeout", cfg.TMDB.Timeout.String())
	v.Set("tmdb.retries", cfg.TMDB.Retries)
	v.Set("tmdb.rate_limit", cfg.TMDB.RateLimit)
	v.Set("tmdb.rate_burst", cfg.TMDB.RateBurst)

	v.Set("ui.search_debounce", cfg.UI.SearchDebounce.String())
	v.Set("ui.pagination_lockout", cfg.UI.PaginationLockout.String())
	v.Set("ui.min_loading", cfg.UI.MinLoading.String())
	v.Set("ui.request_timeout", cfg.UI.RequestTimeout.String())
	v.Set("ui.trending_window", cfg.UI.TrendingWindow)
	v.Set("ui.trending_limit", cfg.UI.TrendingLimit)
	v.Set("ui.similar_limit", cfg.UI.SimilarLimit)
	v.Set("ui.slide_interval", cfg.UI.SlideInterval.String())

	v.Set("cache.dir", cfg.Cache.Dir)
	v.Set("cache.genre_ttl", cfg.Cache.GenreTTL.String())

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)

	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
