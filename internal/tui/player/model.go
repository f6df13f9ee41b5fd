// Package player содержит панель воспроизведения для TUI
package player

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/utils"
)

var (
	trackInfoStyle = lipgloss.NewStyle().
			Bold(true).
			MarginLeft(2)

	timeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginLeft(2)
)

// EventMsg доставляет уведомление плеера в цикл событий
type EventMsg struct {
	Event player.Event
}

// ListenForEvents ждет следующего уведомления из канала.
// Команду нужно перезапускать после каждого EventMsg.
func ListenForEvents(events <-chan player.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return nil
		}
		return EventMsg{Event: event}
	}
}

// Model представляет панель воспроизведения: название, прогресс, позиция и длительность
type Model struct {
	title       string
	state       player.State
	positionMS  int64
	durationMS  int64
	progressBar progress.Model
}

// NewModel создает новую панель
func NewModel() *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		progressBar: prog,
	}
}

// SetTitle задает название текущего трека
func (m *Model) SetTitle(title string) {
	m.title = title
}

// PositionLabel возвращает текст метки позиции
func (m *Model) PositionLabel() string {
	return utils.FormatMillis(m.positionMS)
}

// DurationLabel возвращает текст метки длительности
func (m *Model) DurationLabel() string {
	return utils.FormatMillis(m.durationMS)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.progressBar.Width = min(60, msg.Width-10)

	case EventMsg:
		switch msg.Event.Kind {
		case player.PositionChanged:
			m.positionMS = msg.Event.Millis()
		case player.DurationChanged:
			m.durationMS = msg.Event.Millis()
		case player.StateChanged:
			m.state = msg.Event.State
		}
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	title := m.title
	if title == "" {
		title = "Ничего не выбрано"
	}

	var percent float64
	if m.durationMS > 0 {
		percent = float64(m.positionMS) / float64(m.durationMS)
	}

	return fmt.Sprintf(
		"%s\n  %s\n%s",
		trackInfoStyle.Render(fmt.Sprintf("%s %s", statusIcon(m.state), title)),
		m.progressBar.ViewAs(percent),
		timeStyle.Render(fmt.Sprintf("%s / %s", m.PositionLabel(), m.DurationLabel())),
	)
}

// Вспомогательные функции

func statusIcon(state player.State) string {
	switch state {
	case player.Playing:
		return "▶️"
	case player.Paused:
		return "⏸️"
	default:
		return "⏹️"
	}
}

