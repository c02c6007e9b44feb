package portfolio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	maxImageWidth = 1200
	jpegQuality   = 80
)

// handleImage serves a resized JPEG of a local image:
// /img?src=/public/shot.png&w=600. Images narrower than w are re-encoded at
// their own size.
func (a *App) handleImage(c echo.Context) error {
	src := c.QueryParam("src")
	width, err := strconv.Atoi(c.QueryParam("w"))
	if err != nil || width <= 0 || width > maxImageWidth {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("w must be between 1 and %d", maxImageWidth))
	}
	file, ok := a.localImagePath(src)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "src must be a local /public/ image")
	}

	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return echo.ErrNotFound
		}
		return err
	}
	defer f.Close()

	out, err := resizeImage(f, width)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	}
	return c.Blob(http.StatusOK, "image/jpeg", out)
}

// localImagePath maps a /public/ URL onto the static directory, refusing
// anything that would escape it.
func (a *App) localImagePath(src string) (string, bool) {
	if i := strings.IndexAny(src, "?#"); i >= 0 {
		src = src[:i]
	}
	rest, ok := strings.CutPrefix(src, "/public/")
	if !ok || rest == "" {
		return "", false
	}
	clean := path.Clean("/" + rest)
	if clean == "/" {
		return "", false
	}
	return filepath.Join(a.Config.StaticDir, filepath.FromSlash(clean)), true
}

// resizeImage decodes an image from src, scales it down to width when it is
// wider, and encodes it as JPEG.
func resizeImage(src io.Reader, width int) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w > width {
		newH := h * width / w
		if newH < 1 {
			newH = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, width, newH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)
		img = dst
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
