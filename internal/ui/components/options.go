package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quitcheck/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D"}

// OptionList is a lettered single-choice selector. Pressing a letter or
// number picks that option directly; arrows move the cursor and Enter
// picks the highlighted one.
type OptionList struct {
	Options     []string
	Selected    int
	Recorded    int // option already chosen earlier, -1 if none
	Submitted   bool
	ChosenIndex int
}

// NewOptionList creates a selector with the cursor on recorded, or on the
// first option when nothing has been recorded.
func NewOptionList(options []string, recorded int) OptionList {
	selected := recorded
	if selected < 0 || selected >= len(options) {
		selected = 0
	}
	return OptionList{
		Options:     options,
		Selected:    selected,
		Recorded:    recorded,
		ChosenIndex: -1,
	}
}

// Init returns nil.
func (m OptionList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (m OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter", "space":
		m.choose(m.Selected)
		return m, nil
	}

	if len(key) == 1 {
		if i := strings.Index("abcd", strings.ToLower(key)); i >= 0 && i < len(m.Options) {
			m.choose(i)
		} else if key[0] >= '1' && int(key[0]-'1') < len(m.Options) {
			m.choose(int(key[0] - '1'))
		}
	}
	return m, nil
}

func (m *OptionList) choose(i int) {
	m.Selected = i
	m.Submitted = true
	m.ChosenIndex = i
}

// Take returns the chosen index and clears the submission so the next
// keypress can choose again.
func (m *OptionList) Take() (int, bool) {
	if !m.Submitted {
		return -1, false
	}
	i := m.ChosenIndex
	m.Submitted = false
	m.ChosenIndex = -1
	m.Recorded = i
	return i, true
}

// View renders the option list at the given width.
func (m OptionList) View(width int) string {
	var b strings.Builder
	for i, opt := range m.Options {
		label := optionLabels[i]
		prefix := "  "
		if i == m.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s.  %s", prefix, label, opt)

		style := theme.Unselected
		switch {
		case i == m.Recorded:
			style = theme.Recorded
		case i == m.Selected:
			style = theme.Selected
		}
		if width > 0 {
			style = style.Width(width)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
