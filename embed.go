package portfolio

import (
	"embed"
	"mime"
	"net/http"
	"path"

	"github.com/labstack/echo/v4"
)

// EmbeddedAssets contains static assets shipped with the site:
// page.js (browser side of the page session), styles.css, favicon.svg
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

func handleEmbedded(name string) echo.HandlerFunc {
	ext := mime.TypeByExtension(path.Ext(name))
	return func(c echo.Context) error {
		b, err := EmbeddedAssets.ReadFile("embedded/" + name)
		if err != nil {
			return echo.ErrNotFound
		}
		ctype := ext
		if ctype == "" {
			ctype = http.DetectContentType(b)
		}
		return c.Blob(http.StatusOK, ctype, b)
	}
}
