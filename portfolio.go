// Package portfolio serves a single-page developer portfolio built with Go,
// Echo, and templ: the landing page, the content document it is rendered
// from, and the supporting assets.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/renderer"
	"github.com/eringen/portfolio/views"
)

// ViewFuncs holds the templ components the App renders. DefaultViews
// returns the built-in set; sites can swap any of them.
type ViewFuncs struct {
	Home        func(cfg views.SiteConfig, snap renderer.Snapshot, year int) templ.Component
	NotFound    func(cfg views.SiteConfig) templ.Component
	ServerError func(cfg views.SiteConfig) templ.Component
}

// DefaultViews returns the components from the views package.
func DefaultViews() ViewFuncs {
	return ViewFuncs{
		Home:        views.Home,
		NotFound:    views.NotFound,
		ServerError: views.ServerError,
	}
}

// ContentPath is where the content document is served.
const ContentPath = "/api/content"

// App is the central portfolio application. It wires together the content
// source, handlers, middleware, and templates.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Source content.Source
	Views  ViewFuncs

	store        *Store
	apiLimiter   *RateLimiter
	customRoutes []func(*App)
	now          func() time.Time
	ready        bool
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Views:  DefaultViews(),
		now:    time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.Logger.SetLevel(cfg.logLevel())

	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Init opens the content source and registers middleware and routes. It is
// called by Start and may be called directly to use the App as an
// http.Handler.
func (a *App) Init() error {
	if a.ready {
		return nil
	}
	if a.Source == nil {
		if a.Config.DatabasePath != "" {
			store, err := NewStore(a.Config.DatabasePath)
			if err != nil {
				return fmt.Errorf("portfolio: init store: %w", err)
			}
			if err := store.Seed(context.Background(), content.Seed()); err != nil {
				store.Close()
				return fmt.Errorf("portfolio: seed store: %w", err)
			}
			a.store = store
			a.Source = store
		} else {
			a.Source = content.NewStatic(content.Seed())
		}
	}

	if a.Config.APIRateLimit > 0 {
		a.apiLimiter = NewRateLimiter(a.Config.APIRateLimit, time.Minute)
	}

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start initializes the app and serves until ctx is canceled, then shuts
// the server down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		a.Echo.Logger.Infof("listening on %s", a.Config.Addr)
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("portfolio: shutdown: %w", err)
	}
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/public/page.js", handleEmbedded("page.js"))
	e.GET("/public/styles.css", handleEmbedded("styles.css"))
	e.GET("/favicon.svg", handleEmbedded("favicon.svg"))
	e.Static("/public", a.Config.StaticDir)

	e.GET("/placeholder.svg", handlePlaceholder)
	e.GET("/img", a.handleImage)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/healthz", handleHealth)
	e.GET("/", a.handleHome)

	api := []echo.MiddlewareFunc{}
	if a.apiLimiter != nil {
		api = append(api, a.apiLimiter.Middleware())
	}
	methods := []string{http.MethodGet, http.MethodHead}
	e.Match(methods, ContentPath, a.handleContent, api...)
	e.Match(methods, "/content", a.handleContent, api...)
}

// siteView is the template-facing subset of the config.
func (a *App) siteView() views.SiteConfig {
	return views.SiteConfig{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		GitHubURL:   a.Config.GitHubURL,
		LinkedInURL: a.Config.LinkedInURL,
		Email:       a.Config.Email,
		ContentPath: ContentPath,
	}
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.apiLimiter != nil {
		a.apiLimiter.Stop()
	}
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
