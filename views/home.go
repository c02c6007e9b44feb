package views

import (
	"strconv"

	"github.com/a-h/templ"

	"github.com/eringen/portfolio/content"
	"github.com/eringen/portfolio/renderer"
)

// Home renders the landing page for a page snapshot.
func Home(cfg SiteConfig, snap renderer.Snapshot, year int) templ.Component {
	doc := snap.Content
	meta := PageMeta{
		Title:       cfg.Name,
		Description: doc.Hero.Subtitle,
		URL:         buildURL(cfg.URL),
		OGType:      "profile",
	}
	if cfg.Description != "" {
		meta.Description = cfg.Description
	}
	body := component(func(h *html) {
		h.raw(`<div id="page"`)
		h.attr("data-content-state", snap.State.String())
		h.attr("data-content-path", cfg.ContentPath)
		h.attr("data-scroll-threshold", strconv.Itoa(renderer.ScrollTopThreshold))
		h.raw(`>`)
		h.child(Header(cfg, snap.Links, snap.DrawerOpen))
		h.raw(`<main class="pt-16">`)
		h.child(HeroSection(cfg, doc.Hero))
		h.child(ProjectsSection(doc.Projects))
		h.child(SkillsSection(doc.Skills))
		h.child(ContactSection(cfg))
		h.raw(`</main>`)
		h.child(Footer(cfg, year))
		h.child(ScrollTopButton(snap.ShowScrollTop))
		h.raw(`</div>`)
	})
	return Layout(cfg, meta, PersonJsonLD(cfg, ""), body)
}

// Header renders the fixed top bar with desktop navigation and the drawer.
func Header(cfg SiteConfig, links []renderer.NavLink, drawerOpen bool) templ.Component {
	return component(func(h *html) {
		h.raw(`<header class="fixed top-0 left-0 right-0 z-10 bg-background/80 backdrop-blur-sm border-b border-border">`)
		h.raw(`<div class="container mx-auto px-4 py-4 flex justify-between items-center">`)
		h.raw(`<button type="button" data-scroll-top class="text-xl md:text-2xl font-bold hover:text-primary transition-colors">`)
		h.text(cfg.Name)
		h.raw(`</button><nav class="hidden md:flex items-center space-x-6">`)
		for i, l := range links {
			h.raw(`<button type="button"`)
			h.attr("data-nav-target", l.Target())
			if i == len(links)-1 {
				h.raw(` data-widget="button" data-variant="outline" data-size="sm"`)
			} else {
				h.raw(` class="hover:text-primary transition-colors"`)
			}
			h.raw(`>`)
			h.text(l.Label)
			h.raw(`</button>`)
		}
		h.raw(`</nav>`)
		h.child(MobileNav(links, drawerOpen))
		h.raw(`</div></header>`)
	})
}

// MobileNav renders the drawer trigger and the slide-in panel. The panel
// closes after any link is selected.
func MobileNav(links []renderer.NavLink, open bool) templ.Component {
	return component(func(h *html) {
		state := "closed"
		if open {
			state = "open"
		}
		h.raw(`<button type="button" data-widget="button" data-variant="ghost" data-size="icon" data-drawer-trigger aria-controls="mobile-nav"`)
		h.attr("aria-expanded", strconv.FormatBool(open))
		h.raw(` class="md:hidden p-0">`)
		h.raw(`<svg class="h-6 w-6" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="M4 6h16M4 12h16M4 18h16"/></svg>`)
		h.raw(`<span class="sr-only">Open menu</span></button>`)
		h.raw(`<div id="mobile-nav" data-widget="sheet" data-side="right"`)
		h.attr("data-state", state)
		if !open {
			h.raw(` hidden`)
		}
		h.raw(` class="w-[280px] border-l-neutral-200 bg-white/95 backdrop-blur-md">`)
		h.raw(`<nav class="flex flex-col items-center justify-center h-full">`)
		for _, l := range links {
			h.raw(`<button type="button" data-drawer-link`)
			h.attr("data-nav-target", l.Target())
			h.raw(` class="relative text-xl font-medium py-4 text-neutral-600 hover:text-black transition-colors">`)
			h.text(l.Label)
			h.raw(`</button>`)
		}
		h.raw(`</nav></div>`)
	})
}

// HeroSection renders the "about" section.
func HeroSection(cfg SiteConfig, hero content.Hero) templ.Component {
	return component(func(h *html) {
		h.raw(`<section id="about" class="min-h-screen flex items-center justify-center">`)
		h.raw(`<div class="container mx-auto px-4 py-12 text-center">`)
		h.raw(`<div class="relative w-48 h-48 mx-auto mb-8"><img id="hero-avatar" class="rounded-full object-cover w-48 h-48" width="200" height="200"`)
		src := orPlaceholder(hero.AvatarURL)
		h.href("src", src)
		if set := srcset(src, 200, 400); set != "" {
			h.attr("srcset", set)
			h.raw(` sizes="200px"`)
		}
		h.attr("alt", cfg.Name)
		h.raw(`><div class="absolute inset-0 rounded-full border-4 border-primary animate-pulse"></div></div>`)
		h.raw(`<h1 id="hero-title" class="text-4xl md:text-6xl font-bold mb-4">`)
		h.text(hero.Title)
		h.raw(`</h1><p id="hero-subtitle" class="text-xl md:text-2xl mb-8 text-muted-foreground max-w-2xl mx-auto">`)
		h.text(hero.Subtitle)
		h.raw(`</p><div class="mt-16 flex justify-center">`)
		h.raw(`<button type="button" data-nav-target="projects" aria-label="Scroll to projects" class="cursor-pointer">`)
		h.raw(`<svg class="h-12 w-12 text-primary" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="m6 9 6 6 6-6"/></svg>`)
		h.raw(`</button></div></div></section>`)
	})
}

// ProjectsSection renders the project grid.
func ProjectsSection(projects []content.Project) templ.Component {
	return component(func(h *html) {
		h.raw(`<section id="projects" class="py-20 relative overflow-hidden"><div class="container mx-auto px-4 relative z-10">`)
		h.raw(`<h2 class="text-3xl md:text-5xl font-bold mb-12 text-center">Featured Projects</h2>`)
		h.raw(`<div id="project-grid" class="grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-8">`)
		for _, p := range projects {
			h.child(ProjectCard(p))
		}
		h.raw(`</div></div></section>`)
	})
}

// ProjectCard renders a single project.
func ProjectCard(p content.Project) templ.Component {
	return component(func(h *html) {
		h.raw(`<article data-widget="card" class="project-card overflow-hidden group bg-card"><div class="relative">`)
		src := orPlaceholder(p.Image)
		h.raw(`<img class="w-full object-cover h-48" width="300" height="200" loading="lazy"`)
		h.href("src", src)
		if set := srcset(src, 300, 600, 900); set != "" {
			h.attr("srcset", set)
			h.raw(` sizes="(max-width: 768px) 100vw, (max-width: 1200px) 50vw, 33vw"`)
		}
		h.attr("alt", p.Title)
		h.raw(`><div class="absolute inset-0 flex items-center justify-center opacity-0 group-hover:opacity-100 transition-opacity">`)
		h.raw(`<a data-widget="button" data-variant="secondary" class="flex items-center gap-2"`)
		h.href("href", p.Link)
		h.raw(`>View Project</a></div></div>`)
		h.raw(`<header class="p-6"><h3 class="project-title text-2xl font-semibold">`)
		h.text(p.Title)
		h.raw(`</h3><p class="project-description text-muted-foreground">`)
		h.text(p.Description)
		h.raw(`</p></header><div class="px-6 pb-6"><div class="project-tags flex flex-wrap gap-2 mb-4">`)
		for _, tag := range p.Tags {
			h.raw(`<span data-widget="badge" data-variant="secondary">`)
			h.text(tag)
			h.raw(`</span>`)
		}
		h.raw(`</div><p class="project-long text-sm text-muted-foreground mt-2 hidden group-hover:block">`)
		h.text(p.LongDescription)
		h.raw(`</p></div></article>`)
	})
}

// SkillsSection renders the skill badges.
func SkillsSection(skills []string) templ.Component {
	return component(func(h *html) {
		h.raw(`<section id="skills" class="py-20 bg-muted/50"><div class="container mx-auto px-4">`)
		h.raw(`<h2 class="text-3xl md:text-5xl font-bold mb-12 text-center">My Skills</h2>`)
		h.raw(`<div id="skill-list" class="flex flex-wrap justify-center gap-4">`)
		for _, s := range skills {
			h.raw(`<span data-widget="badge" class="skill text-lg py-2 px-4">`)
			h.text(s)
			h.raw(`</span>`)
		}
		h.raw(`</div></div></section>`)
	})
}

// ContactSection renders the contact form and social links. The form is
// presentational and has no submit handler.
func ContactSection(cfg SiteConfig) templ.Component {
	return component(func(h *html) {
		h.raw(`<section id="contact" class="py-20 bg-muted/30 relative overflow-hidden"><div class="container mx-auto px-4 text-center relative z-10">`)
		h.raw(`<h2 class="text-3xl md:text-5xl font-bold mb-8">Get in Touch</h2>`)
		h.raw(`<p class="text-xl mb-8 text-muted-foreground max-w-2xl mx-auto">I'm always open to new opportunities and collaborations. Let's create something amazing together!</p>`)
		h.raw(`<form class="max-w-md mx-auto space-y-4 mb-8">`)
		h.raw(`<input data-widget="input" type="text" name="name" placeholder="Your Name" class="bg-background">`)
		h.raw(`<input data-widget="input" type="email" name="email" placeholder="Your Email" class="bg-background">`)
		h.raw(`<textarea data-widget="textarea" name="message" placeholder="Your Message" class="bg-background"></textarea>`)
		h.raw(`<button type="submit" data-widget="button" data-size="lg" class="w-full">Send Message</button></form>`)
		h.raw(`<div class="flex justify-center space-x-6">`)
		socials := []struct{ href, label string }{
			{cfg.GitHubURL, "GitHub"},
			{cfg.LinkedInURL, "LinkedIn"},
		}
		if cfg.Email != "" {
			socials = append(socials, struct{ href, label string }{"mailto:" + cfg.Email, "Email"})
		}
		for _, s := range socials {
			if s.href == "" {
				continue
			}
			h.raw(`<a data-widget="button" data-variant="outline" data-size="icon" class="rounded-full"`)
			h.href("href", s.href)
			if s.label != "Email" {
				h.raw(` target="_blank" rel="noopener noreferrer"`)
			}
			h.raw(`><span class="sr-only">`)
			h.text(s.label)
			h.raw(`</span></a>`)
		}
		h.raw(`</div></div></section>`)
	})
}

// Footer renders the copyright line.
func Footer(cfg SiteConfig, year int) templ.Component {
	return component(func(h *html) {
		h.raw(`<footer class="bg-muted py-6"><div class="container mx-auto px-4 text-center"><p>&copy; `)
		h.text(strconv.Itoa(year))
		h.raw(` `)
		h.text(cfg.Name)
		h.raw(`. All rights reserved.</p></div></footer>`)
	})
}

// ScrollTopButton renders the scroll-to-top affordance, hidden unless show.
func ScrollTopButton(show bool) templ.Component {
	return component(func(h *html) {
		h.raw(`<button type="button" id="scroll-top" data-widget="button" data-scroll-top aria-label="Scroll to top" class="fixed bottom-4 right-4 rounded-full p-2"`)
		if !show {
			h.raw(` hidden`)
		}
		h.raw(`><svg class="h-5 w-5" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true"><path d="m5 12 7-7 7 7M12 19V5"/></svg></button>`)
	})
}
