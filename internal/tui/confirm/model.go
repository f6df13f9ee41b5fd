// Package confirm содержит диалог подтверждения для TUI
package confirm

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3).
			Margin(1, 2)

	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ResultMsg содержит ответ пользователя
type ResultMsg struct {
	Confirmed bool
}

// Model представляет диалог да/нет. По умолчанию выбран ответ "нет".
type Model struct {
	question string
}

// NewModel создает диалог с вопросом
func NewModel(question string) *Model {
	return &Model{question: question}
}

// Update обрабатывает нажатия клавиш
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "y", "Y", "д", "Д":
		return m, answer(true)
	case "n", "N", "н", "Н", "esc", "enter", "q", "ctrl+c":
		return m, answer(false)
	}
	return m, nil
}

func answer(confirmed bool) tea.Cmd {
	return func() tea.Msg {
		return ResultMsg{Confirmed: confirmed}
	}
}

// View отображает диалог
func (m *Model) View() string {
	return dialogStyle.Render(m.question + "\n\n" + hintStyle.Render("[y] да   [N] нет"))
}
