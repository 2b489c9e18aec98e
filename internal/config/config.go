package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kkyr/fig"
)

const (
	configEnv = "OAHUSURF"
	appName   = "oahu-surf"

	DefaultReportURL = "https://www.surfnewsnetwork.com/"
	DefaultTidesURL  = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
)

// Config represents the application's configuration structure.
type Config struct {
	LogLevel slog.Level `fig:"loglevel" default:"0"`

	Log struct {
		// Log file for the terminal UI, which owns stdout/stderr
		File string `fig:"file"`
	} `fig:"log"`

	Report struct {
		URL string `fig:"url" default:"https://www.surfnewsnetwork.com/"`
		// Optional prefix; the page URL is appended query-escaped
		Proxy   string        `fig:"proxy"`
		Timeout time.Duration `fig:"timeout" default:"15s"`
	} `fig:"report"`

	Tides struct {
		URL         string        `fig:"url" default:"https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"`
		Station     string        `fig:"station" default:"1612340"`
		StationName string        `fig:"station_name" default:"Honolulu"`
		Days        int           `fig:"days" default:"7"`
		Timeout     time.Duration `fig:"timeout" default:"15s"`
	} `fig:"tides"`

	Cache struct {
		Path     string `fig:"path" default:"data/oahu-surf.db"`
		Disabled bool   `fig:"disabled"`
	} `fig:"cache"`

	Server struct {
		Addr    string        `fig:"addr" default:":8080"`
		Refresh time.Duration `fig:"refresh" default:"30m"`
	} `fig:"server"`
}

// DefaultFiles are the config file names looked up in DefaultDir, in order
var DefaultFiles = []string{"config.toml", "config.yaml", "config.yml", "config.json"}

// DefaultDir returns ~/.config/oahu-surf
func DefaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName)
}

// Load reads the config file at path when given, otherwise the first of
// DefaultFiles present in DefaultDir, otherwise only environment and defaults.
func Load(path string) (*Config, error) {
	if path != "" {
		return NewFromFile(filepath.Dir(path), filepath.Base(path))
	}
	dir := DefaultDir()
	for _, file := range DefaultFiles {
		if _, err := os.Stat(filepath.Join(dir, file)); err == nil {
			return NewFromFile(dir, file)
		}
	}
	return New()
}

func NewFromFile(path, file string) (*Config, error) {
	conf := new(Config)
	_, err := os.Stat(filepath.Join(path, file))
	if err != nil {
		return conf, fmt.Errorf("failed to read Config: %w", err)
	}
	if err = fig.Load(conf, fig.Dirs(path), fig.File(file), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func New() (*Config, error) {
	conf := new(Config)
	if err := fig.Load(conf, fig.AllowNoFile(), fig.UseEnv(configEnv)); err != nil {
		return conf, fmt.Errorf("failed to load Config: %w", err)
	}

	return conf, conf.Validate()
}

func (c *Config) Validate() error {
	if err := validURL(c.Report.URL); err != nil {
		return fmt.Errorf("invalid report url: %w", err)
	}
	if err := validURL(c.Tides.URL); err != nil {
		return fmt.Errorf("invalid tides url: %w", err)
	}
	if c.Tides.Station == "" {
		return errors.New("tides station must not be empty")
	}
	if c.Tides.Days < 1 || c.Tides.Days > 31 {
		return fmt.Errorf("invalid tide days: %d", c.Tides.Days)
	}
	if c.Report.Timeout <= 0 || c.Tides.Timeout <= 0 {
		return errors.New("fetch timeouts must be positive")
	}
	if c.Server.Refresh < time.Minute {
		return fmt.Errorf("server refresh interval too short: %s", c.Server.Refresh)
	}
	if c.Log.File == "" {
		c.Log.File = filepath.Join(stateDir(), appName+".log")
	}

	return nil
}

func validURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	return nil
}

func stateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName)
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", appName)
}
