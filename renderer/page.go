// Package renderer models a portfolio page session: the one-shot content
// load with fallback to the default document, the scroll-to-top affordance,
// section navigation and the mobile navigation drawer.
//
// Browser facilities are reached through the Window and DOM interfaces so
// the same state machine drives server-side rendering and tests.
package renderer

import (
	"context"
	"sync"

	"github.com/labstack/gommon/log"

	"github.com/eringen/portfolio/content"
)

// State is the content-loading state of a page.
type State int

const (
	// StateDefault shows the placeholder document.
	StateDefault State = iota
	// StateLoaded shows a fetched document. It is terminal for the session.
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateLoaded:
		return "loaded"
	}
	return "unknown"
}

// Logger receives diagnostics for swallowed fetch failures.
// echo.Logger and *log.Logger from gommon both satisfy it.
type Logger interface {
	Errorf(format string, args ...interface{})
}

// Option configures a Page.
type Option func(*Page)

// WithLogger replaces the default "renderer" logger.
func WithLogger(l Logger) Option {
	return func(p *Page) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithDefault overrides the document shown before a successful load.
func WithDefault(doc content.Document) Option {
	return func(p *Page) {
		p.doc = doc.Clone()
	}
}

// Snapshot is a consistent read of the page state, suitable for rendering.
type Snapshot struct {
	State         State
	Content       content.Document
	ShowScrollTop bool
	DrawerOpen    bool
	Links         []NavLink
}

// Page holds the state of one mounted landing page.
//
// Mount and Unmount must be called from the same goroutine, the way a UI
// event loop drives component lifecycles. Scroll events and the content
// fetch may arrive from any goroutine.
type Page struct {
	fetcher Fetcher
	logger  Logger
	Drawer  Drawer

	mu            sync.Mutex
	state         State
	doc           content.Document
	initial       content.Document
	showScrollTop bool
	win           Window

	mounted bool
	cancel  context.CancelFunc
	release func()
	done    chan struct{}
}

// NewPage returns an unmounted page showing the default document.
func NewPage(f Fetcher, opts ...Option) *Page {
	p := &Page{
		fetcher: f,
		logger:  log.New("renderer"),
		doc:     content.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.initial = p.doc.Clone()
	return p
}

// Mount subscribes to win's scroll events and starts the content fetch in
// the background. Mounting an already mounted page is a no-op. win may be
// nil when there is no viewport, e.g. for a plain content probe.
func (p *Page) Mount(ctx context.Context, win Window) {
	p.mu.Lock()
	if p.mounted {
		p.mu.Unlock()
		return
	}
	mctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.mounted = true
	p.cancel = cancel
	p.done = done
	p.win = win
	p.mu.Unlock()

	if win != nil {
		release := win.OnScroll(p.handleScroll)
		y := win.ScrollY()
		p.mu.Lock()
		p.release = release
		p.showScrollTop = ShowScrollTop(y)
		p.mu.Unlock()
	}

	go func() {
		defer close(done)
		_ = p.Load(mctx)
	}()
}

// Unmount releases the scroll subscription, abandons an in-flight fetch and
// tears the page state down: the next Mount starts from the default
// document with the drawer closed. A response arriving afterwards is
// discarded.
func (p *Page) Unmount() {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		return
	}
	// cancel under the lock so Load can never apply a result after this point
	p.cancel()
	release := p.release
	p.mounted = false
	p.cancel = nil
	p.release = nil
	p.win = nil
	p.state = StateDefault
	p.doc = p.initial.Clone()
	p.showScrollTop = false
	p.mu.Unlock()

	p.Drawer.Close()
	if release != nil {
		release()
	}
}

// Wait blocks until the fetch started by the current mount finishes or ctx
// is done. It returns immediately when the page was never mounted.
func (p *Page) Wait(ctx context.Context) error {
	p.mu.Lock()
	done := p.done
	p.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Load fetches the document once and, if ctx is still live, swaps it in
// whole. Failures are logged and leave the current document untouched; the
// error is returned for callers that care.
func (p *Page) Load(ctx context.Context) error {
	doc, err := p.fetcher.Fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Errorf("error fetching content: %v", err)
		}
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return err
	}
	p.doc = doc.Clone()
	p.state = StateLoaded
	return nil
}

func (p *Page) handleScroll(scrollY float64) {
	p.mu.Lock()
	if p.mounted {
		p.showScrollTop = ShowScrollTop(scrollY)
	}
	p.mu.Unlock()
}

// ScrollToTop is the affordance's click handler.
func (p *Page) ScrollToTop() {
	p.mu.Lock()
	win := p.win
	p.mu.Unlock()
	ScrollToTop(win)
}

// State returns the content-loading state.
func (p *Page) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// ShowScrollTop reports whether the scroll-to-top affordance is visible.
func (p *Page) ShowScrollTop() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.showScrollTop
}

// Content returns a copy of the document currently displayed.
func (p *Page) Content() content.Document {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.doc.Clone()
}

// Snapshot returns the full page state.
func (p *Page) Snapshot() Snapshot {
	p.mu.Lock()
	snap := Snapshot{
		State:         p.state,
		Content:       p.doc.Clone(),
		ShowScrollTop: p.showScrollTop,
	}
	p.mu.Unlock()
	snap.DrawerOpen = p.Drawer.IsOpen()
	snap.Links = append([]NavLink(nil), NavLinks...)
	return snap
}
