package portfolio

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

const maxPlaceholderSide = 4000

// handlePlaceholder draws a neutral SVG box of the requested size, the
// stand-in image the default content points at.
func handlePlaceholder(c echo.Context) error {
	w := placeholderSide(c.QueryParam("width"), 200)
	h := placeholderSide(c.QueryParam("height"), 200)
	svg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
		`<rect width="100%%" height="100%%" fill="#e5e5e5"/>`+
		`<text x="50%%" y="50%%" fill="#a3a3a3" font-family="sans-serif" font-size="%d" text-anchor="middle" dominant-baseline="middle">%d&#215;%d</text>`+
		`</svg>`, w, h, w, h, fontSize(w, h), w, h)
	return c.Blob(http.StatusOK, "image/svg+xml", []byte(svg))
}

func placeholderSide(v string, fallback int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	if n > maxPlaceholderSide {
		return maxPlaceholderSide
	}
	return n
}

func fontSize(w, h int) int {
	s := w
	if h < s {
		s = h
	}
	if s = s / 8; s < 8 {
		s = 8
	}
	return s
}
