package renderer

import "sync"

// Viewport is an in-memory Window and DOM. The server mounts pages on a
// fresh Viewport for the first render, where the document sits at offset 0.
type Viewport struct {
	mu        sync.Mutex
	scrollY   float64
	listeners map[int]func(float64)
	nextID    int
	sections  map[string]*Section
}

// NewViewport returns a viewport at offset 0 containing the given sections.
func NewViewport(ids ...string) *Viewport {
	v := &Viewport{
		listeners: make(map[int]func(float64)),
		sections:  make(map[string]*Section, len(ids)),
	}
	for _, id := range ids {
		v.sections[id] = &Section{ID: id}
	}
	return v
}

// ScrollY implements Window.
func (v *Viewport) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollY
}

// ScrollTo implements Window. Scrolling dispatches a scroll event.
func (v *Viewport) ScrollTo(x, y float64, b Behavior) {
	v.Scroll(y)
}

// Scroll moves the viewport to offset y and notifies listeners, the way a
// user scroll would.
func (v *Viewport) Scroll(y float64) {
	v.mu.Lock()
	v.scrollY = y
	fns := make([]func(float64), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(y)
	}
}

// OnScroll implements Window.
func (v *Viewport) OnScroll(fn func(scrollY float64)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			delete(v.listeners, id)
			v.mu.Unlock()
		})
	}
}

// Listeners returns the number of active scroll subscriptions.
func (v *Viewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}

// ElementByID implements DOM.
func (v *Viewport) ElementByID(id string) (Element, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	s, ok := v.sections[id]
	if !ok {
		return nil, false
	}
	return s, true
}

// Section is a page section that counts scroll-into-view requests.
type Section struct {
	ID string

	mu      sync.Mutex
	scrolls int
	last    Behavior
}

// ScrollIntoView implements Element.
func (s *Section) ScrollIntoView(b Behavior) {
	s.mu.Lock()
	s.scrolls++
	s.last = b
	s.mu.Unlock()
}

// Scrolls returns how many times the section was scrolled into view and the
// behavior of the last request.
func (s *Section) Scrolls() (int, Behavior) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scrolls, s.last
}
