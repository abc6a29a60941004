package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quitcheck/internal/router"
	"github.com/abhisek/quitcheck/internal/screen"
	"github.com/abhisek/quitcheck/internal/variant"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "home" }
func (s *stubScreen) Title() string                          { return "Home" }

func newSplash(t *testing.T) (*WelcomeScreen, *int) {
	t.Helper()
	variants, err := variant.All()
	if err != nil {
		t.Fatalf("load variants: %v", err)
	}
	calls := 0
	return New(variants, func() screen.Screen {
		calls++
		return &stubScreen{}
	}), &calls
}

func tick(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestVariantsRevealedOneByOne(t *testing.T) {
	w, _ := newSplash(t)
	titles := make([]string, len(w.variants))
	for i, v := range w.variants {
		titles[i] = v.Title
	}

	visible := func() int {
		view := w.View(100, 40)
		n := 0
		for _, title := range titles {
			if strings.Contains(view, title) {
				n++
			}
		}
		return n
	}

	if got := visible(); got != 0 {
		t.Errorf("no variant should show during the signpost, got %d", got)
	}

	tick(w, 4)
	if got := visible(); got != 1 {
		t.Errorf("after the signpost one variant should show, got %d", got)
	}

	tick(w, 3)
	if got := visible(); got != 2 {
		t.Errorf("second variant should follow one step later, got %d", got)
	}
	if strings.Contains(w.View(100, 40), Tagline) {
		t.Error("tagline waits until every variant is listed")
	}

	tick(w, 6)
	if got := visible(); got != len(titles) {
		t.Errorf("all variants should show, got %d", got)
	}
	if !strings.Contains(w.View(100, 40), Tagline) {
		t.Error("tagline should be visible once every variant is listed")
	}
	if !strings.Contains(w.View(100, 40), "20 题 · 4 维度") {
		t.Error("variant lines should carry question and section counts")
	}
}

func TestEmptyVariantListShowsBannerAfterSignpost(t *testing.T) {
	w := New(nil, func() screen.Screen { return &stubScreen{} })
	tick(w, 4)
	if !strings.Contains(w.View(100, 40), Tagline) {
		t.Error("tagline should follow the signpost when there is nothing to list")
	}
}

func TestKeypressReplacesWithHome(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
	}{
		{"mid animation", 3},
		{"after animation", 45},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, calls := newSplash(t)
			tick(w, tt.ticks)

			_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
			if cmd == nil {
				t.Fatal("keypress should trigger the transition")
			}
			msg := cmd()
			replace, ok := msg.(router.ReplaceScreenMsg)
			if !ok {
				t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
			}
			if replace.Screen == nil {
				t.Error("replacement screen should not be nil")
			}
			if *calls != 1 {
				t.Errorf("factory called %d times, want 1", *calls)
			}
		})
	}
}

func TestNoAutoTransition(t *testing.T) {
	w, calls := newSplash(t)
	tick(w, 60)

	if *calls != 0 {
		t.Errorf("factory should wait for a key, called %d times", *calls)
	}
	if w.elapsed != w.bannerAt() {
		t.Errorf("elapsed should cap at %v, got %v", w.bannerAt(), w.elapsed)
	}
}

func TestTransitionHappensOnce(t *testing.T) {
	w, calls := newSplash(t)
	w.Update(tea.KeyPressMsg{Code: 'a'})

	if _, cmd := w.Update(tea.KeyPressMsg{Code: 'b'}); cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *calls != 1 {
		t.Errorf("factory called %d times, want 1", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	if got := RenderBanner(60); !strings.Contains(got, bannerCompact) {
		t.Errorf("narrow terminals should get the compact banner, got %q", got)
	}
}
