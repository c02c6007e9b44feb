package views

import (
	"context"
	"encoding/json"
	"io"
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// html accumulates the first write error so components read top to bottom.
type html struct {
	ctx context.Context
	w   io.Writer
	err error
}

func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized URL attribute.
func (h *html) href(name, value string) {
	h.attr(name, string(templ.URL(value)))
}

func (h *html) child(c templ.Component) {
	if h.err != nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

func component(fn func(h *html)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{ctx: ctx, w: w}
		fn(h)
		return h.err
	})
}

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	if u.Path == "" {
		u.Path = "/"
	}
	return u.String()
}

// orPlaceholder mirrors the page's fallback for empty image URLs.
func orPlaceholder(src string) string {
	if src == "" {
		return "/placeholder.svg"
	}
	return src
}

var resizable = map[string]bool{".png": true, ".jpg": true, ".jpeg": true, ".gif": true}

// srcset returns resized variants for local raster images, or "" when the
// image is remote or vector and must be used as-is.
func srcset(src string, widths ...int) string {
	if !strings.HasPrefix(src, "/") || strings.HasPrefix(src, "//") {
		return ""
	}
	p := src
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if !resizable[strings.ToLower(path.Ext(p))] {
		return ""
	}
	parts := make([]string, 0, len(widths))
	for _, w := range widths {
		ws := strconv.Itoa(w)
		parts = append(parts, "/img?src="+url.QueryEscape(src)+"&w="+ws+" "+ws+"w")
	}
	return strings.Join(parts, ", ")
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the site owner.
func PersonJsonLD(cfg SiteConfig, jobTitle string) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     cfg.Name,
		"url":      buildURL(cfg.URL),
	}
	if jobTitle != "" {
		data["jobTitle"] = jobTitle
	}
	var sameAs []string
	for _, u := range []string{cfg.GitHubURL, cfg.LinkedInURL} {
		if u != "" {
			sameAs = append(sameAs, u)
		}
	}
	if len(sameAs) > 0 {
		data["sameAs"] = sameAs
	}
	if cfg.Email != "" {
		data["email"] = "mailto:" + cfg.Email
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
