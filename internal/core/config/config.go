package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

const (
	SourceNotion   = "notion"
	SourcePostgres = "postgres"

	envPrefix       = "STATS_"
	notionEnvPrefix = "NOTION_"

	maxNotionPageSize = 100
)

// Config represents the top-level application config.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Source   SourceConfig   `koanf:"source"`
	Notion   NotionConfig   `koanf:"notion"`
	Database DatabaseConfig `koanf:"database"`
	Plan     PlanConfig     `koanf:"plan"`
	Views    ViewsConfig    `koanf:"views"`
	Warmup   WarmupConfig   `koanf:"warmup"`
}

type ServerConfig struct {
	Port           int    `koanf:"port"`
	Host           string `koanf:"host"`
	Mode           string `koanf:"mode"`            // debug | release
	AllowedOrigins string `koanf:"allowed_origins"` // comma separated, "*" for any
}

// Origins splits AllowedOrigins into a list.
func (c ServerConfig) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if t := strings.TrimSpace(o); t != "" {
			out = append(out, t)
		}
	}
	return out
}

type SourceConfig struct {
	Type string `koanf:"type"` // notion | postgres
}

// NotionConfig holds the upstream database settings. Empty Token or
// DatabaseID is valid: the service then serves fallback data.
type NotionConfig struct {
	Token      string        `koanf:"token"`
	DatabaseID string        `koanf:"database_id"`
	BaseURL    string        `koanf:"base_url"`
	Version    string        `koanf:"version"`
	PageSize   int           `koanf:"page_size"`
	MaxPages   int           `koanf:"max_pages"`
	Timeout    time.Duration `koanf:"timeout"`
}

type DatabaseConfig struct {
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
}

type PlanConfig struct {
	Path string `koanf:"path"`
}

type ViewsConfig struct {
	StreamOrder []string `koanf:"stream_order"`
}

type WarmupConfig struct {
	Enabled  bool   `koanf:"enabled"`
	Schedule string `koanf:"schedule"` // standard cron spec or @every descriptor
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}

	switch c.Source.Type {
	case SourceNotion:
		if strings.TrimSpace(c.Notion.BaseURL) == "" {
			return fmt.Errorf("notion.base_url is required")
		}
		if c.Notion.PageSize <= 0 || c.Notion.PageSize > maxNotionPageSize {
			return fmt.Errorf("invalid notion.page_size %d (must be 1-%d)", c.Notion.PageSize, maxNotionPageSize)
		}
		if c.Notion.MaxPages <= 0 {
			return fmt.Errorf("notion.max_pages must be > 0")
		}
		if c.Notion.Timeout <= 0 {
			return fmt.Errorf("notion.timeout must be > 0")
		}
	case SourcePostgres:
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	default:
		return fmt.Errorf("unsupported source.type %q (must be notion or postgres)", c.Source.Type)
	}

	if strings.TrimSpace(c.Plan.Path) == "" {
		return fmt.Errorf("plan.path is required")
	}

	if c.Warmup.Enabled {
		if _, err := cron.ParseStandard(c.Warmup.Schedule); err != nil {
			return fmt.Errorf("invalid warmup.schedule %q: %w", c.Warmup.Schedule, err)
		}
	}

	return nil
}

// Load parses config from defaults, file and env, then validates it.
// Env layers: NOTION_TOKEN / NOTION_DATABASE_ID, then STATS_ with "__"
// as the nesting separator (STATS_SERVER__PORT=9090).
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":             8080,
		"server.host":             "0.0.0.0",
		"server.mode":             "release",
		"server.allowed_origins":  "*",
		"source.type":             SourceNotion,
		"notion.token":            "",
		"notion.database_id":      "",
		"notion.base_url":         "https://api.notion.com/v1",
		"notion.version":          "2022-06-28",
		"notion.page_size":        100,
		"notion.max_pages":        500,
		"notion.timeout":          "30s",
		"database.dsn":            "",
		"database.max_open_conns": 5,
		"database.max_idle_conns": 5,
		"database.auto_migrate":   true,
		"plan.path":               "./config/admission_plan.yaml",
		"views.stream_order": []string{
			"17 июля (11.00)",
			"17 июля (14.00)",
			"15 августа (11.00)",
			"15 августа (14.00)",
			"23 июля (МАГ)",
			"30 июля (МАГ)",
			"15 августа (МАГ)",
			"22 августа (МАГ)",
		},
		"warmup.enabled":  false,
		"warmup.schedule": "@every 2m",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(notionEnvPrefix, ".", func(s string) string {
		switch s {
		case "NOTION_TOKEN":
			return "notion.token"
		case "NOTION_DATABASE_ID":
			return "notion.database_id"
		}
		return "" // other NOTION_* variables are not ours
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load notion env vars: %w", err)
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
