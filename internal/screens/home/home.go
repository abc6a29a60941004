package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quitcheck/internal/router"
	"github.com/abhisek/quitcheck/internal/screen"
	"github.com/abhisek/quitcheck/internal/ui/components"
	"github.com/abhisek/quitcheck/internal/ui/layout"
	"github.com/abhisek/quitcheck/internal/variant"
)

// Factory builds the assessment screen for a variant.
type Factory func(v *variant.Variant) (screen.Screen, error)

// HomeScreen lists the available variants.
type HomeScreen struct {
	menu       components.Menu
	menuLabels []string
	variants   []*variant.Variant
	errMsg     string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen with the cursor on the variant named preferred.
func New(variants []*variant.Variant, preferred string, factory Factory) *HomeScreen {
	h := &HomeScreen{variants: variants}

	items := make([]components.MenuItem, 0, len(variants)+1)
	for _, v := range variants {
		items = append(items, components.MenuItem{
			Label:  v.Title,
			Detail: fmt.Sprintf("%s · %d 题", v.Name, v.Catalog.Len()),
			Action: func() tea.Cmd {
				s, err := factory(v)
				if err != nil {
					h.errMsg = err.Error()
					return nil
				}
				h.errMsg = ""
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: s}
				}
			},
		})
		h.menuLabels = append(h.menuLabels, v.Title)
	}
	items = append(items, components.MenuItem{Label: "退出", Action: func() tea.Cmd {
		return tea.Quit
	}})
	h.menuLabels = append(h.menuLabels, "退出")

	h.menu = components.NewMenu(items)
	for i, v := range variants {
		if v.Name == preferred {
			h.menu.Select(i)
			break
		}
	}
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderMenu(h.menuLabels, h.menu.Selected, cw, compact))

	if h.menu.Selected < len(h.variants) {
		sections = append(sections, renderTagline(h.variants[h.menu.Selected], cw))
	}
	if h.errMsg != "" {
		sections = append(sections, renderError(h.errMsg, cw))
	}

	content := strings.Join(sections, "\n\n")
	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Open"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
