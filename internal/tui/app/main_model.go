// Package app содержит основную логику TUI приложения
package app

import (
	"context"
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/track"
	"github.com/hazadus/go-jukebox/internal/tui/confirm"
	"github.com/hazadus/go-jukebox/internal/tui/picker"
	tuiPlayer "github.com/hazadus/go-jukebox/internal/tui/player"
	"github.com/hazadus/go-jukebox/internal/tui/tracklist"
)

const (
	exitQuestion = "Вы уверены, что хотите выйти?"
	emptyHint    = "Плейлист пуст. Нажмите a, чтобы добавить трек"
)

// panelHeight - строки под панелью воспроизведения и строкой статуса
const panelHeight = 7

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")).MarginLeft(2)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")).Bold(true).MarginLeft(2)
)

// Controller - команды воспроизведения, которые нужны оболочке
type Controller interface {
	LoadAndPlay(path string) error
	TogglePlayPause()
	Stop()
	State() player.State
	Subscribe(fn func(player.Event)) (cancel func())
}

// screenType определяет тип текущего экрана
type screenType int

// Константы для типов экранов
const (
	tracklistScreen screenType = iota
	pickerScreen
	confirmScreen
)

// Options - дополнительные параметры главной модели
type Options struct {
	// MusicDir - каталог, с которого начинается выбор файла
	MusicDir string
	// Events - уведомления плеера, переданные в цикл событий
	Events <-chan player.Event
}

// MainModel представляет главную модель TUI
type MainModel struct {
	ctx            context.Context
	library        *track.Manager
	controller     Controller
	events         <-chan player.Event
	musicDir       string
	currentScreen  screenType
	tracklistModel *tracklist.Model
	playerModel    *tuiPlayer.Model
	pickerModel    *picker.Model
	confirmModel   *confirm.Model
	status         string
	err            error
	width          int
	height         int
	quitting       bool
}

// NewMainModel создает новую главную модель
func NewMainModel(ctx context.Context, library *track.Manager, controller Controller, opts Options) *MainModel {
	m := &MainModel{
		ctx:            ctx,
		library:        library,
		controller:     controller,
		events:         opts.Events,
		musicDir:       opts.MusicDir,
		currentScreen:  tracklistScreen,
		tracklistModel: tracklist.NewModel(nil),
		playerModel:    tuiPlayer.NewModel(),
	}
	if m.musicDir == "" {
		m.musicDir = "."
	}
	m.refresh()
	return m
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.tracklistModel.Init(),
		tuiPlayer.ListenForEvents(m.events),
	)
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tracklistModel.SetSize(msg.Width, max(msg.Height-panelHeight, 3))
		m.playerModel.Update(msg)
		if m.pickerModel != nil {
			var cmd tea.Cmd
			m.pickerModel, cmd = m.pickerModel.Update(msg)
			return m, cmd
		}
		return m, nil

	case tuiPlayer.EventMsg:
		m.playerModel.Update(msg)
		return m, tuiPlayer.ListenForEvents(m.events)

	case tea.KeyMsg:
		if m.currentScreen == tracklistScreen && !m.tracklistModel.Filtering() {
			switch msg.String() {
			case "ctrl+c", "q":
				// Закрытие окна требует подтверждения
				m.currentScreen = confirmScreen
				m.confirmModel = confirm.NewModel(exitQuestion)
				return m, nil
			case " ", "p":
				m.controller.TogglePlayPause()
				return m, nil
			case "s":
				m.controller.Stop()
				return m, nil
			}
		}

	case tracklist.TrackChosenMsg:
		m.play(msg.Track.ID, msg.Track.Title)
		return m, nil

	case tracklist.AddRequestedMsg:
		m.currentScreen = pickerScreen
		m.pickerModel = picker.NewModel(m.musicDir)
		var sizeCmd tea.Cmd
		if m.width > 0 {
			m.pickerModel, sizeCmd = m.pickerModel.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		}
		return m, tea.Batch(m.pickerModel.Init(), sizeCmd)

	case tracklist.RemoveRequestedMsg:
		m.remove(msg.Track.ID, msg.Track.Title)
		return m, nil

	case picker.FileChosenMsg:
		m.closePicker()
		m.add(msg.Path)
		return m, nil

	case picker.CancelMsg:
		m.closePicker()
		return m, nil

	case confirm.ResultMsg:
		m.confirmModel = nil
		if !msg.Confirmed {
			m.currentScreen = tracklistScreen
			return m, nil
		}
		if err := m.library.Close(); err != nil {
			log.Printf("tui: ошибка закрытия хранилища: %v", err)
		}
		m.quitting = true
		return m, tea.Quit
	}

	// Передаем сообщение активному экрану
	var cmd tea.Cmd
	switch m.currentScreen {
	case tracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case pickerScreen:
		if m.pickerModel != nil {
			m.pickerModel, cmd = m.pickerModel.Update(msg)
		}
	case confirmScreen:
		if m.confirmModel != nil {
			m.confirmModel, cmd = m.confirmModel.Update(msg)
		}
	}
	return m, cmd
}

// View отображает интерфейс
func (m *MainModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.currentScreen {
	case tracklistScreen:
		return m.tracklistModel.View() + "\n\n" + m.playerModel.View() + "\n" + m.statusLine()

	case pickerScreen:
		if m.pickerModel != nil {
			return m.pickerModel.View()
		}
		return "Ошибка: экран выбора файла не инициализирован"

	case confirmScreen:
		if m.confirmModel != nil {
			return m.confirmModel.View()
		}
		return "Ошибка: диалог не инициализирован"

	default:
		return "Неизвестный экран"
	}
}

func (m *MainModel) statusLine() string {
	if m.err != nil {
		return errorStyle.Render("❌ " + m.err.Error())
	}
	if m.status == "" && len(m.tracklistModel.Tracks()) == 0 {
		return statusStyle.Render(emptyHint)
	}
	return statusStyle.Render(m.status)
}

func (m *MainModel) setError(err error) {
	log.Printf("tui: %v", err)
	m.err = err
	m.status = ""
}

func (m *MainModel) setStatus(status string) {
	m.err = nil
	m.status = status
}

func (m *MainModel) closePicker() {
	m.currentScreen = tracklistScreen
	m.pickerModel = nil
}

// refresh перечитывает плейлист из хранилища
func (m *MainModel) refresh() {
	tracks, err := m.library.ListTracks(m.ctx)
	if err != nil {
		m.setError(fmt.Errorf("ошибка загрузки плейлиста: %w", err))
		return
	}
	m.tracklistModel.SetTracks(tracks)
}

func (m *MainModel) play(id int64, title string) {
	path, err := m.library.PathOf(m.ctx, id)
	if err != nil {
		m.setError(err)
		return
	}
	if err := m.controller.LoadAndPlay(path); err != nil {
		m.setError(err)
		return
	}
	m.playerModel.SetTitle(title)
	m.setStatus("Воспроизводится: " + title)
}

func (m *MainModel) add(path string) {
	if path == "" {
		return
	}
	t, err := m.library.Add(m.ctx, path)
	if err != nil {
		m.setError(err)
		return
	}
	m.musicDir = filepath.Dir(path)
	m.refresh()
	m.setStatus(fmt.Sprintf("Добавлен трек %d: %s", t.ID, t.Title))
	log.Printf("tui: добавлен трек %d (%s)", t.ID, t.Path)
}

func (m *MainModel) remove(id int64, title string) {
	if err := m.library.Remove(m.ctx, id); err != nil {
		m.setError(err)
		return
	}
	m.refresh()
	m.setStatus("Удален трек: " + title)
	log.Printf("tui: удален трек %d", id)
}
