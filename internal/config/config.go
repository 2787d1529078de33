package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sant0-9/concierge/internal/content"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Language    string `yaml:"language"`
	ContentPath string `yaml:"content_path,omitempty"`
	TopK        int    `yaml:"top_k"`
	ChunkSize   int    `yaml:"chunk_size"`

	Log    LogConfig    `yaml:"log"`
	Server ServerConfig `yaml:"server"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type ServerConfig struct {
	Addr           string   `yaml:"addr"`
	AllowedOrigins []string `yaml:"allowed_origins,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Language:  string(content.English),
		TopK:      3,
		ChunkSize: 600,
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Server: ServerConfig{
			Addr: ":8080",
			AllowedOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
			},
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "concierge"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func Exists() bool {
	path, err := ConfigPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Load reads the config file. It returns nil, nil when no file exists yet.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LoadFile reads a config file, filling unset fields from DefaultConfig
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return cfg, nil
}

// Resolve loads the config file (or defaults), applies environment overrides and validates
func Resolve() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnvOverrides lets CONCIERGE_* variables win over the file
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("CONCIERGE_LANGUAGE"); v != "" {
		c.Language = v
	}
	if v := os.Getenv("CONCIERGE_CONTENT"); v != "" {
		c.ContentPath = v
	}
	if v := os.Getenv("CONCIERGE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("CONCIERGE_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("CONCIERGE_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("CONCIERGE_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
}

func (c *Config) Validate() error {
	var problems []string
	if _, err := content.ParseLocale(c.Language); err != nil {
		problems = append(problems, err.Error())
	}
	if c.TopK < 1 || c.TopK > 10 {
		problems = append(problems, fmt.Sprintf("top_k must be between 1 and 10, got %d", c.TopK))
	}
	if c.ChunkSize < 0 {
		problems = append(problems, fmt.Sprintf("chunk_size must not be negative, got %d", c.ChunkSize))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("unknown log level %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("unknown log format %q", c.Log.Format))
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}

// Locale returns the configured default language, English if it is invalid
func (c *Config) Locale() content.Locale {
	l, err := content.ParseLocale(c.Language)
	if err != nil {
		return content.English
	}
	return l
}

// Tables loads ContentPath, or the embedded content when it is empty
func (c *Config) Tables() (*content.Tables, error) {
	if c.ContentPath == "" {
		return content.Default()
	}
	return content.Load(c.ContentPath)
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
