// Package picker содержит экран выбора аудио файла для TUI
package picker

import (
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-jukebox/internal/audio"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0, 0, 2)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginLeft(2)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).MarginLeft(2)
)

// FileChosenMsg отправляется, когда пользователь выбрал файл
type FileChosenMsg struct {
	Path string
}

// CancelMsg отправляется при отмене выбора
type CancelMsg struct{}

// Model представляет экран выбора файла
type Model struct {
	filepicker filepicker.Model
	err        string
}

// NewModel создает экран выбора, начиная с каталога dir.
// Показываются только файлы с расширениями из audio.Extensions.
func NewModel(dir string) *Model {
	fp := filepicker.New()
	fp.CurrentDirectory = dir
	fp.AllowedTypes = audio.Extensions
	fp.AutoHeight = true

	return &Model{filepicker: fp}
}

// Init читает начальный каталог
func (m *Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, func() tea.Msg {
				return CancelMsg{}
			}
		}
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if ok, path := m.filepicker.DidSelectFile(msg); ok {
		return m, func() tea.Msg {
			return FileChosenMsg{Path: path}
		}
	}

	if ok, path := m.filepicker.DidSelectDisabledFile(msg); ok {
		m.err = fmt.Sprintf("%s: поддерживаются только %v", path, audio.Extensions)
		return m, cmd
	}

	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	view := titleStyle.Render("Выберите аудио файл") + "\n\n" + m.filepicker.View() + "\n"
	if m.err != "" {
		view += errorStyle.Render(m.err) + "\n"
	}
	return view + helpStyle.Render("Enter: выбрать • ←/h: назад • q: отмена")
}
