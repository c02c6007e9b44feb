package renderer

import "strings"

// Behavior selects how a scroll is animated.
type Behavior string

const (
	Smooth  Behavior = "smooth"
	Instant Behavior = "instant"
)

// Window is the part of the browser window the page depends on.
type Window interface {
	ScrollY() float64
	ScrollTo(x, y float64, b Behavior)
	// OnScroll subscribes fn to scroll events. The returned func removes the
	// subscription and is safe to call more than once.
	OnScroll(fn func(scrollY float64)) (release func())
}

// DOM resolves anchor ids to elements.
type DOM interface {
	ElementByID(id string) (Element, bool)
}

// Element is a scroll target on the page.
type Element interface {
	ScrollIntoView(b Behavior)
}

// ScrollToSection smoothly scrolls the element with the given id into view.
// It reports whether a scroll happened; unknown ids are a no-op.
func ScrollToSection(dom DOM, id string) bool {
	if dom == nil {
		return false
	}
	el, ok := dom.ElementByID(id)
	if !ok || el == nil {
		return false
	}
	el.ScrollIntoView(Smooth)
	return true
}

// ScrollToTop smoothly scrolls the window back to the origin.
func ScrollToTop(w Window) {
	if w == nil {
		return
	}
	w.ScrollTo(0, 0, Smooth)
}

// NavLink is an entry of the site navigation.
type NavLink struct {
	Href  string
	Label string
}

// Target returns the anchor id the link points at.
func (l NavLink) Target() string {
	return strings.TrimPrefix(l.Href, "#")
}

// NavLinks is the fixed navigation shared by the desktop header and the drawer.
var NavLinks = []NavLink{
	{Href: "#about", Label: "About"},
	{Href: "#projects", Label: "Projects"},
	{Href: "#contact", Label: "Contact"},
}

// Section ids rendered by the page, in document order.
var SectionIDs = []string{"about", "projects", "skills", "contact"}
