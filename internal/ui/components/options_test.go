package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

func key(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func TestOptionListDirectKeys(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyPressMsg
		want int
	}{
		{"lower letter", key('c'), 2},
		{"upper letter", tea.KeyPressMsg{Code: 'b', Text: "B", Mod: tea.ModShift}, 1},
		{"number", key('4'), 3},
		{"first number", key('1'), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewOptionList([]string{"a", "b", "c", "d"}, -1)
			m, _ = m.Update(tt.key)
			got, ok := m.Take()
			if !ok || got != tt.want {
				t.Errorf("Take() = %d, %v; want %d, true", got, ok, tt.want)
			}
		})
	}
}

func TestOptionListIgnoresOtherKeys(t *testing.T) {
	m := NewOptionList([]string{"a", "b", "c", "d"}, -1)
	for _, r := range []rune{'e', '5', '0', 'x'} {
		m, _ = m.Update(key(r))
	}
	if _, ok := m.Take(); ok {
		t.Error("unrelated keys should not choose an option")
	}
}

func TestOptionListArrowsAndEnter(t *testing.T) {
	m := NewOptionList([]string{"a", "b", "c", "d"}, 2)
	if m.Selected != 2 {
		t.Fatalf("cursor should start on the recorded option, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 0 {
		t.Errorf("cursor should stop at the top, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	got, ok := m.Take()
	if !ok || got != 0 {
		t.Errorf("Take() = %d, %v; want 0, true", got, ok)
	}
	if m.Recorded != 0 {
		t.Errorf("taking should record the choice, got %d", m.Recorded)
	}
	if _, ok := m.Take(); ok {
		t.Error("a choice can only be taken once")
	}
}

func TestMenuSkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "a"}, {Label: "b", Disabled: true}, {Label: "c"}})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down should skip the disabled item, got %d", m.Selected)
	}
	m.Select(1)
	if m.Selected != 2 {
		t.Error("Select should ignore disabled items")
	}
}

func TestButtonPressesOnEnter(t *testing.T) {
	pressed := 0
	onPress := func() tea.Cmd {
		pressed++
		return nil
	}

	b := NewButton("start", true, onPress)
	b.Update(key('x'))
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 1 {
		t.Fatalf("pressed = %d, want 1", pressed)
	}

	b = NewButton("start", false, onPress)
	b.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if pressed != 1 {
		t.Fatal("inactive button must not fire")
	}
}
