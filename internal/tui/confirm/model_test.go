package confirm

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestAnswers(t *testing.T) {
	tests := []struct {
		key      tea.KeyMsg
		expected bool
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Y")}, true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")}, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, false},
		{tea.KeyMsg{Type: tea.KeyEsc}, false},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, false},
	}

	for _, test := range tests {
		model := NewModel("Выйти?")
		_, cmd := model.Update(test.key)
		if cmd == nil {
			t.Fatalf("Expected command for %q", test.key.String())
		}
		result, ok := cmd().(ResultMsg)
		if !ok {
			t.Fatalf("Expected ResultMsg for %q", test.key.String())
		}
		if result.Confirmed != test.expected {
			t.Errorf("Key %q: expected confirmed=%v, got %v", test.key.String(), test.expected, result.Confirmed)
		}
	}
}

func TestIgnoresOtherInput(t *testing.T) {
	model := NewModel("Выйти?")

	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")}); cmd != nil {
		t.Error("Expected no command for unrelated key")
	}
	if _, cmd := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24}); cmd != nil {
		t.Error("Expected no command for window size")
	}
}

func TestView(t *testing.T) {
	view := NewModel("Вы уверены, что хотите выйти?").View()
	if !strings.Contains(view, "Вы уверены, что хотите выйти?") {
		t.Errorf("Expected question in view, got %s", view)
	}
}
