package portfolio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/labstack/gommon/log"

	"github.com/eringen/portfolio/content"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string `koanf:"name"`         // Owner name (default "John Doe")
	URL         string `koanf:"url"`          // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"`  // Meta description; falls back to the hero subtitle
	GitHubURL   string `koanf:"github_url"`   // Contact links; empty hides the button
	LinkedInURL string `koanf:"linkedin_url"` //
	Email       string `koanf:"email"`        //

	Addr         string `koanf:"addr"`          // Listen address (default ":3000")
	DatabasePath string `koanf:"database_path"` // SQLite content store; empty serves the built-in document
	StaticDir    string `koanf:"static_dir"`    // User static assets (default "public")

	// RenderTimeout bounds how long the first render waits for content
	// before falling back to the default document (default 2s, negative
	// renders defaults immediately).
	RenderTimeout time.Duration `koanf:"render_timeout"`

	APIRateLimit   int    `koanf:"api_rate_limit"`  // Content requests per IP per minute; zero or negative disables
	AllowedOrigins string `koanf:"allowed_origins"` // Comma-separated CORS origins for /api/ (default "*")
	LogLevel       string `koanf:"log_level"`       // debug, info, warn, error (default info)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "John Doe"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.RenderTimeout == 0 {
		c.RenderTimeout = 2 * time.Second
	}
	if c.AllowedOrigins == "" {
		c.AllowedOrigins = "*"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// origins splits AllowedOrigins into a list.
func (c SiteConfig) origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// logLevel maps LogLevel onto the echo logger levels.
func (c SiteConfig) logLevel() log.Lvl {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG
	case "warn", "warning":
		return log.WARN
	case "error":
		return log.ERROR
	case "off":
		return log.OFF
	}
	return log.INFO
}

// LoadConfig reads configuration from the given YAML file, when it exists,
// then overlays PORTFOLIO_* environment variables (PORTFOLIO_GITHUB_URL ->
// github_url). Defaults are applied by New.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")
	var cfg SiteConfig

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("portfolio: reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("portfolio: accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
	}), nil); err != nil {
		return cfg, fmt.Errorf("portfolio: loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("portfolio: unmarshalling config: %w", err)
	}
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithSource replaces the content source. It takes precedence over
// DatabasePath.
func WithSource(src content.Source) Option {
	return func(a *App) {
		a.Source = src
	}
}

// WithViews replaces the page templates.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}

// WithClock overrides the time source used for the footer year.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.now = now
	}
}
