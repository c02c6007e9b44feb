package renderer

import "sync"

// Drawer is the mobile navigation panel. It starts closed.
type Drawer struct {
	mu   sync.Mutex
	open bool
}

// Open is bound to the drawer's trigger control.
func (d *Drawer) Open() { d.SetOpen(true) }

// Close hides the drawer.
func (d *Drawer) Close() { d.SetOpen(false) }

// SetOpen is the sheet's open-change binding (overlay click, escape key).
func (d *Drawer) SetOpen(open bool) {
	d.mu.Lock()
	d.open = open
	d.mu.Unlock()
}

// IsOpen reports the current state.
func (d *Drawer) IsOpen() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.open
}

// Select navigates to link's section and closes the drawer, whether or not
// the section exists. It reports whether a scroll happened.
func (d *Drawer) Select(dom DOM, link NavLink) bool {
	scrolled := ScrollToSection(dom, link.Target())
	d.Close()
	return scrolled
}
