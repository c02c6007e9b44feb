package renderer

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/eringen/portfolio/content"
)

type recordingLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.mu.Lock()
	l.msgs = append(l.msgs, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func (l *recordingLogger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.msgs)
}

func staticFetcher(doc content.Document) Fetcher {
	return FetcherFunc(func(ctx context.Context) (content.Document, error) {
		return doc.Clone(), nil
	})
}

func customDocument() content.Document {
	return content.Document{
		Hero: content.Hero{Title: "  Jane  ", Subtitle: "Builds <things>", AvatarURL: "/me.png"},
		Projects: []content.Project{
			{Title: "A", Description: "a", Image: "/a.png", Tags: []string{"go", "go"}, Link: "https://a.example", LongDescription: "long a"},
			{Title: "B", Description: "b", Image: "/b.png", Tags: []string{}, Link: "#", LongDescription: ""},
		},
		Skills: []string{"Go", "SQL", "Go"},
	}
}

func TestLoadDisplaysPayloadExactly(t *testing.T) {
	want := customDocument()
	logger := &recordingLogger{}
	p := NewPage(staticFetcher(want), WithLogger(logger))

	if p.State() != StateDefault {
		t.Fatalf("initial state = %v, want default", p.State())
	}
	if err := p.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.State() != StateLoaded {
		t.Errorf("state = %v, want loaded", p.State())
	}
	if got := p.Content(); !reflect.DeepEqual(got, want) {
		t.Errorf("Content = %+v, want %+v", got, want)
	}
	if logger.count() != 0 {
		t.Errorf("unexpected log output: %v", logger.msgs)
	}
}

func TestLoadFailureKeepsDefault(t *testing.T) {
	closed := httptest.NewServer(http.NotFoundHandler())
	closedURL := closed.URL
	closed.Close()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		url        string
		wantStatus int
	}{
		{
			name:       "server error",
			handler:    func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "not found",
			handler:    func(w http.ResponseWriter, r *http.Request) { http.NotFound(w, r) },
			wantStatus: http.StatusNotFound,
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				fmt.Fprint(w, `{"hero":`)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "network failure",
			url:  closedURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := tt.url
			if tt.handler != nil {
				srv := httptest.NewServer(tt.handler)
				defer srv.Close()
				url = srv.URL
			}
			logger := &recordingLogger{}
			p := NewPage(NewHTTPFetcher(url, nil), WithLogger(logger))

			err := p.Load(context.Background())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantStatus != 0 {
				var bad *BadResponseError
				if !errors.As(err, &bad) {
					t.Fatalf("error = %T, want *BadResponseError", err)
				}
				if bad.StatusCode != tt.wantStatus {
					t.Errorf("StatusCode = %d, want %d", bad.StatusCode, tt.wantStatus)
				}
			} else {
				var netErr *NetworkError
				if !errors.As(err, &netErr) {
					t.Fatalf("error = %T, want *NetworkError", err)
				}
			}
			if p.State() != StateDefault {
				t.Errorf("state = %v, want default", p.State())
			}
			if got := p.Content(); !reflect.DeepEqual(got, content.Default()) {
				t.Errorf("Content = %+v, want default document", got)
			}
			if logger.count() != 1 {
				t.Errorf("log count = %d, want 1", logger.count())
			}
		})
	}
}

func TestLoadTwiceIsIdempotent(t *testing.T) {
	want := content.Seed()
	p := NewPage(staticFetcher(want))

	for i := 0; i < 2; i++ {
		if err := p.Load(context.Background()); err != nil {
			t.Fatalf("Load #%d failed: %v", i+1, err)
		}
	}
	got := p.Content()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Content after second load = %+v, want %+v", got, want)
	}
	if len(got.Projects) != 3 || len(got.Skills) != 8 {
		t.Errorf("lists duplicated: %d projects, %d skills", len(got.Projects), len(got.Skills))
	}
}

func TestFailedReloadKeepsLoadedDocument(t *testing.T) {
	calls := 0
	f := FetcherFunc(func(ctx context.Context) (content.Document, error) {
		calls++
		if calls == 1 {
			return content.Seed(), nil
		}
		return content.Document{}, &BadResponseError{StatusCode: http.StatusServiceUnavailable}
	})
	p := NewPage(f, WithLogger(&recordingLogger{}))

	_ = p.Load(context.Background())
	_ = p.Load(context.Background())

	if p.State() != StateLoaded {
		t.Errorf("state = %v, want loaded", p.State())
	}
	if !reflect.DeepEqual(p.Content(), content.Seed()) {
		t.Error("failed reload within one session replaced the loaded document")
	}
}

func waitLoaded(t *testing.T, p *Page) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
}

func TestRemountStartsFromDefault(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	f := FetcherFunc(func(ctx context.Context) (content.Document, error) {
		mu.Lock()
		defer mu.Unlock()
		calls++
		if calls == 1 {
			return content.Seed(), nil
		}
		return content.Document{}, &BadResponseError{StatusCode: http.StatusServiceUnavailable}
	})
	p := NewPage(f, WithLogger(&recordingLogger{}))

	first := NewViewport(SectionIDs...)
	p.Mount(context.Background(), first)
	waitLoaded(t, p)
	first.Scroll(900)
	p.Drawer.Open()
	if p.State() != StateLoaded || !p.ShowScrollTop() {
		t.Fatalf("first session: state = %v, ShowScrollTop = %v", p.State(), p.ShowScrollTop())
	}
	p.Unmount()

	if p.State() != StateDefault {
		t.Errorf("state after unmount = %v, want default", p.State())
	}
	if p.ShowScrollTop() || p.Drawer.IsOpen() {
		t.Errorf("state survived unmount: ShowScrollTop = %v, drawer open = %v", p.ShowScrollTop(), p.Drawer.IsOpen())
	}

	second := NewViewport(SectionIDs...)
	p.Mount(context.Background(), second)
	defer p.Unmount()
	waitLoaded(t, p)

	if p.ShowScrollTop() {
		t.Errorf("fresh viewport at scrollY=%v shows the affordance", second.ScrollY())
	}
	if p.State() != StateDefault {
		t.Errorf("state after failed remount fetch = %v, want default", p.State())
	}
	if !reflect.DeepEqual(p.Content(), content.Default()) {
		t.Error("failed remount fetch did not show the default document")
	}
}

func TestRemountRestoresCustomDefault(t *testing.T) {
	custom := customDocument()
	p := NewPage(staticFetcher(content.Seed()), WithDefault(custom))

	p.Mount(context.Background(), nil)
	waitLoaded(t, p)
	p.Unmount()

	if !reflect.DeepEqual(p.Content(), custom) {
		t.Errorf("Content after unmount = %+v, want the configured default", p.Content())
	}
}

func TestMountSeedsScrollAffordance(t *testing.T) {
	vp := NewViewport()
	vp.Scroll(640)
	p := NewPage(staticFetcher(content.Seed()))

	p.Mount(context.Background(), vp)
	defer p.Unmount()

	if !p.ShowScrollTop() {
		t.Error("page mounted below the threshold hides the affordance")
	}
}

func TestMountLoadsInBackground(t *testing.T) {
	vp := NewViewport(SectionIDs...)
	p := NewPage(staticFetcher(content.Seed()))

	p.Mount(context.Background(), vp)
	defer p.Unmount()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if p.State() != StateLoaded {
		t.Errorf("state = %v, want loaded", p.State())
	}
}

func TestMountUnmountBalancesListeners(t *testing.T) {
	vp := NewViewport()
	p := NewPage(staticFetcher(content.Seed()))

	for i := 0; i < 3; i++ {
		p.Mount(context.Background(), vp)
		p.Mount(context.Background(), vp)
		if n := vp.Listeners(); n != 1 {
			t.Fatalf("cycle %d: listeners after mount = %d, want 1", i, n)
		}
		p.Unmount()
		p.Unmount()
		if n := vp.Listeners(); n != 0 {
			t.Fatalf("cycle %d: listeners after unmount = %d, want 0", i, n)
		}
	}
}

func TestUnmountDiscardsLateResult(t *testing.T) {
	release := make(chan struct{})
	f := FetcherFunc(func(ctx context.Context) (content.Document, error) {
		<-release
		return content.Seed(), nil
	})
	p := NewPage(f, WithLogger(&recordingLogger{}))
	vp := NewViewport()

	p.Mount(context.Background(), vp)
	p.Unmount()
	close(release)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := p.Wait(ctx); err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if p.State() != StateDefault {
		t.Errorf("state = %v, want default after unmount", p.State())
	}
	if !reflect.DeepEqual(p.Content(), content.Default()) {
		t.Error("late response replaced the default document")
	}
}

func TestScrollTopThreshold(t *testing.T) {
	vp := NewViewport()
	p := NewPage(staticFetcher(content.Seed()))
	p.Mount(context.Background(), vp)
	defer p.Unmount()

	steps := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{300, false},
		{301, true},
		{1200, true},
		{300, false},
		{12, false},
	}
	for _, s := range steps {
		vp.Scroll(s.y)
		if got := p.ShowScrollTop(); got != s.want {
			t.Errorf("scrollY=%v: ShowScrollTop = %v, want %v", s.y, got, s.want)
		}
	}
}

func TestScrollEventsIgnoredAfterUnmount(t *testing.T) {
	vp := NewViewport()
	p := NewPage(staticFetcher(content.Seed()))
	p.Mount(context.Background(), vp)
	p.Unmount()

	vp.Scroll(900)
	if p.ShowScrollTop() {
		t.Error("unmounted page reacted to scroll")
	}
}

func TestScrollToTop(t *testing.T) {
	vp := NewViewport()
	p := NewPage(staticFetcher(content.Seed()))
	p.Mount(context.Background(), vp)
	defer p.Unmount()

	vp.Scroll(800)
	if !p.ShowScrollTop() {
		t.Fatal("expected affordance after scrolling down")
	}
	p.ScrollToTop()
	if vp.ScrollY() != 0 {
		t.Errorf("ScrollY = %v, want 0", vp.ScrollY())
	}
	if p.ShowScrollTop() {
		t.Error("affordance still shown at the top")
	}
}

func TestSnapshot(t *testing.T) {
	p := NewPage(staticFetcher(content.Seed()))
	p.Drawer.Open()

	snap := p.Snapshot()
	if snap.State != StateDefault || !snap.DrawerOpen {
		t.Errorf("snapshot = %+v", snap)
	}
	if len(snap.Links) != len(NavLinks) {
		t.Errorf("Links = %d, want %d", len(snap.Links), len(NavLinks))
	}
	snap.Content.Skills[0] = "mutated"
	if p.Content().Skills[0] == "mutated" {
		t.Error("snapshot aliases page state")
	}
}
