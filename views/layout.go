package views

import "github.com/a-h/templ"

// Layout wraps body in the HTML document shell.
func Layout(cfg SiteConfig, meta PageMeta, jsonLD string, body templ.Component) templ.Component {
	return component(func(h *html) {
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(meta.Title)
		h.raw(`</title>`)
		if meta.Description != "" {
			h.raw(`<meta name="description"`)
			h.attr("content", meta.Description)
			h.raw(`>`)
			h.raw(`<meta property="og:description"`)
			h.attr("content", meta.Description)
			h.raw(`>`)
		}
		h.raw(`<meta property="og:title"`)
		h.attr("content", meta.Title)
		h.raw(`><meta property="og:type"`)
		h.attr("content", meta.OGType)
		h.raw(`>`)
		if meta.URL != "" {
			h.raw(`<link rel="canonical"`)
			h.href("href", meta.URL)
			h.raw(`><meta property="og:url"`)
			h.href("content", meta.URL)
			h.raw(`>`)
		}
		if meta.Image != "" {
			h.raw(`<meta property="og:image"`)
			h.href("content", meta.Image)
			h.raw(`>`)
		}
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
		h.raw(`<link rel="stylesheet" href="/public/styles.css">`)
		if jsonLD != "" {
			h.raw(`<script type="application/ld+json">`)
			h.raw(jsonLD)
			h.raw(`</script>`)
		}
		h.raw(`</head><body class="min-h-screen bg-gradient-to-b from-background to-muted text-foreground">`)
		h.child(body)
		h.raw(`<script src="/public/page.js" defer></script></body></html>`)
	})
}

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Page not found", "The page you're looking for doesn't exist.")
}

// ServerError renders the 5xx page.
func ServerError(cfg SiteConfig) templ.Component {
	return errorPage(cfg, "Something went wrong", "Please try again later.")
}

func errorPage(cfg SiteConfig, title, message string) templ.Component {
	body := component(func(h *html) {
		h.raw(`<main class="min-h-screen flex flex-col items-center justify-center px-4 text-center">`)
		h.raw(`<h1 class="text-4xl font-bold mb-4">`)
		h.text(title)
		h.raw(`</h1><p class="text-muted-foreground mb-8">`)
		h.text(message)
		h.raw(`</p><a href="/" data-widget="button" class="underline">Back to `)
		h.text(cfg.Name)
		h.raw(`</a></main>`)
	})
	return Layout(cfg, PageMeta{Title: title + " | " + cfg.Name, OGType: "website"}, "", body)
}
