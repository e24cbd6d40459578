package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type ServerConfig struct {
	Port string `toml:"port"`
	// PublicURL is the address the server is reachable on. Relative profile
	// candidates are resolved against it.
	PublicURL string `toml:"public_url"`
	Mode      string `toml:"mode"`
}

type LoggingConfig struct {
	Level       string `toml:"level"`
	Development bool   `toml:"development"`
}

type UpstreamConfig struct {
	BaseURL    string            `toml:"base_url"`
	SearchPath string            `toml:"search_path"`
	GenomePath string            `toml:"genome_path"`
	UserAgent  string            `toml:"user_agent"`
	Headers    map[string]string `toml:"headers"`
	TimeoutMs  int               `toml:"timeout_ms"`
}

func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutMs) * time.Millisecond
}

type SearchConfig struct {
	Limit        int    `toml:"limit"`
	IdentityType string `toml:"identity_type"`
	Meta         bool   `toml:"meta"`
}

type CandidateConfig struct {
	Name string `toml:"name"`
	// URL may contain the {username} placeholder. A leading "/" means a path
	// on this server, {upstream} expands to the upstream base URL.
	URL string `toml:"url"`
}

type ProfileConfig struct {
	AttemptTimeoutMs int               `toml:"attempt_timeout_ms"`
	TotalTimeoutMs   int               `toml:"total_timeout_ms"`
	Candidates       []CandidateConfig `toml:"candidates"`
}

func (p ProfileConfig) AttemptTimeout() time.Duration {
	return time.Duration(p.AttemptTimeoutMs) * time.Millisecond
}

func (p ProfileConfig) TotalTimeout() time.Duration {
	return time.Duration(p.TotalTimeoutMs) * time.Millisecond
}

type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logging  LoggingConfig  `toml:"logging"`
	Upstream UpstreamConfig `toml:"upstream"`
	Search   SearchConfig   `toml:"search"`
	Profile  ProfileConfig  `toml:"profile"`
}

// Default returns a configuration that talks to the public talent API.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:      "8080",
			PublicURL: LocalURL("8080"),
			Mode:      "release",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Upstream: UpstreamConfig{
			BaseURL:    "https://torre.ai",
			SearchPath: "/api/entities/_searchStream",
			GenomePath: "/api/genome/bios/{username}",
			UserAgent:  "Torre Talent Explorer/1.0",
			Headers:    map[string]string{"Accept": "application/json"},
			TimeoutMs:  10000,
		},
		Search: SearchConfig{
			Limit:        20,
			IdentityType: "person",
			Meta:         false,
		},
		Profile: ProfileConfig{
			AttemptTimeoutMs: 5000,
			TotalTimeoutMs:   12000,
			Candidates: []CandidateConfig{
				{Name: "local-genome", URL: "/api/search/genome/{username}"},
				{Name: "upstream-genome", URL: "{upstream}/api/genome/bios/{username}"},
				{Name: "local-proxy", URL: "/api/proxy/profile/{username}"},
			},
		},
	}
}

// Load reads a TOML file on top of Default, so a partial file only
// overrides what it names.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	cfg := Default()
	// Decoding into a populated slice appends, candidates are replaced wholesale.
	cfg.Profile.Candidates = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	if len(cfg.Profile.Candidates) == 0 {
		cfg.Profile.Candidates = Default().Profile.Candidates
	}
	if cfg.Server.PublicURL == Default().Server.PublicURL {
		cfg.Server.PublicURL = LocalURL(cfg.Server.Port)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LocalURL is the loopback address of a server listening on port.
func LocalURL(port string) string {
	return "http://localhost:" + port
}

// ApplyEnv overrides config values with environment variables if present.
// A PublicURL still pointing at the previous local port follows PORT.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if c.Server.PublicURL == LocalURL(c.Server.Port) {
			c.Server.PublicURL = LocalURL(v)
		}
		c.Server.Port = v
	}
	if v := os.Getenv("PUBLIC_URL"); v != "" {
		c.Server.PublicURL = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		c.Server.Mode = v
	}
	if v := os.Getenv("TALENT_API_URL"); v != "" {
		c.Upstream.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

func (c *Config) Validate() error {
	if c.Upstream.BaseURL == "" {
		return fmt.Errorf("upstream.base_url is required")
	}
	if c.Search.Limit <= 0 {
		return fmt.Errorf("search.limit must be positive, got %d", c.Search.Limit)
	}
	for i, cand := range c.Profile.Candidates {
		if cand.URL == "" {
			return fmt.Errorf("profile.candidates[%d]: url is required", i)
		}
		if !strings.Contains(cand.URL, "{username}") {
			return fmt.Errorf("profile.candidates[%d]: url %q has no {username} placeholder", i, cand.URL)
		}
	}
	return nil
}
