package portfolio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/renderer"
)

// handleContent serves the content document. Source faults answer 500 with
// an empty body. A client that went away is not logged as a fault.
func (a *App) handleContent(c echo.Context) error {
	doc, err := a.Source.Content(c.Request().Context())
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.Logger().Errorf("content source: %v", err)
		}
		return c.NoContent(http.StatusInternalServerError)
	}
	return c.JSON(http.StatusOK, doc)
}

// handleHome mounts a page session on a fresh viewport, gives the content
// load up to RenderTimeout, and renders whatever the page shows by then.
func (a *App) handleHome(c echo.Context) error {
	ctx := c.Request().Context()
	page := renderer.NewPage(renderer.SourceFetcher{Source: a.Source}, renderer.WithLogger(c.Logger()))
	page.Mount(ctx, renderer.NewViewport(renderer.SectionIDs...))
	defer page.Unmount()

	if a.Config.RenderTimeout > 0 {
		waitCtx, cancel := context.WithTimeout(ctx, a.Config.RenderTimeout)
		err := page.Wait(waitCtx)
		cancel()
		if err != nil {
			c.Logger().Warnf("content not ready after %s, rendering defaults", a.Config.RenderTimeout)
		}
	}

	return Render(c, a.Views.Home(a.siteView(), page.Snapshot(), a.now().Year()))
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\nDisallow: /api/\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func isAPIPath(path string) bool {
	return strings.HasPrefix(path, "/api/") || path == "/content"
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	he, ok := err.(*echo.HTTPError)
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
	}
	if isAPIPath(c.Request().URL.Path) {
		_ = c.NoContent(code)
		return
	}
	switch {
	case code == http.StatusNotFound:
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound(a.siteView()))
	case code >= 500:
		_ = RenderStatus(c, code, a.Views.ServerError(a.siteView()))
	default:
		a.Echo.DefaultHTTPErrorHandler(err, c)
	}
}
