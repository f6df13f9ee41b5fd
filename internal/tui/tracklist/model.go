// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-jukebox/internal/store"
	"github.com/hazadus/go-jukebox/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4)
)

// TrackChosenMsg отправляется при выборе трека для воспроизведения
type TrackChosenMsg struct {
	Track store.Track
}

// AddRequestedMsg отправляется при запросе добавления трека
type AddRequestedMsg struct{}

// RemoveRequestedMsg отправляется при запросе удаления выбранного трека
type RemoveRequestedMsg struct {
	Track store.Track
}

// trackItem реализует интерфейс list.Item для трека
type trackItem struct {
	track store.Track
}

func (i trackItem) FilterValue() string {
	return i.track.Title
}

// trackItemDelegate реализует отображение элементов списка
type trackItemDelegate struct{}

func (d trackItemDelegate) Height() int                             { return 1 }
func (d trackItemDelegate) Spacing() int                            { return 0 }
func (d trackItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d trackItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(trackItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-4d %s", i.track.ID, utils.TruncateString(i.track.Title, 60))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана списка треков
type Model struct {
	list list.Model
}

// NewModel создает новую модель списка треков
func NewModel(tracks []store.Track) *Model {
	l := list.New(toItems(tracks), trackItemDelegate{}, 0, 0)
	l.Title = "Плейлист"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	// Выход обрабатывает главная модель через подтверждение
	l.DisableQuitKeybindings()
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle

	return &Model{list: l}
}

func toItems(tracks []store.Track) []list.Item {
	items := make([]list.Item, len(tracks))
	for i, t := range tracks {
		items[i] = trackItem{track: t}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetTracks обновляет треки без пересоздания модели
func (m *Model) SetTracks(tracks []store.Track) tea.Cmd {
	cmd := m.list.SetItems(toItems(tracks))
	if n := len(tracks); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

// Tracks возвращает отображаемые треки
func (m *Model) Tracks() []store.Track {
	items := m.list.Items()
	tracks := make([]store.Track, 0, len(items))
	for _, item := range items {
		if ti, ok := item.(trackItem); ok {
			tracks = append(tracks, ti.track)
		}
	}
	return tracks
}

// Selected возвращает выбранный трек
func (m *Model) Selected() (store.Track, bool) {
	item, ok := m.list.SelectedItem().(trackItem)
	if !ok {
		return store.Track{}, false
	}
	return item.track, true
}

// Filtering сообщает, вводит ли пользователь фильтр
func (m *Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// SetSize задает размер списка
func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.Filtering() {
		switch msg.String() {
		case "enter":
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return TrackChosenMsg{Track: t}
				}
			}
			return m, nil

		case "a":
			return m, func() tea.Msg {
				return AddRequestedMsg{}
			}

		case "x", "delete":
			// Без выбранного трека удалять нечего
			if t, ok := m.Selected(); ok {
				return m, func() tea.Msg {
					return RemoveRequestedMsg{Track: t}
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	view := m.list.View()
	extraHelp := helpStyle.Render("Enter: воспроизвести • a: добавить • x: удалить • пробел: пауза • s: стоп • q: выход")
	return view + "\n" + extraHelp
}
