// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/track"
	"github.com/hazadus/go-jukebox/internal/tui/app"
)

// eventBuffer - сколько уведомлений плеера может ждать цикла событий
const eventBuffer = 32

// App представляет основное TUI приложение
type App struct {
	library    *track.Manager
	controller app.Controller
	musicDir   string
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(library *track.Manager, controller app.Controller, musicDir string) *App {
	return &App{
		library:    library,
		controller: controller,
		musicDir:   musicDir,
	}
}

// Run запускает TUI приложение и блокируется до выхода
func (tuiApp *App) Run(ctx context.Context) error {
	fwd := newEventForwarder(eventBuffer)

	// Уведомления плеера приходят из его горутины, а модель
	// обновляется только в цикле событий
	cancel := tuiApp.controller.Subscribe(fwd.send)
	defer fwd.close()
	defer cancel()

	model := app.NewMainModel(ctx, tuiApp.library, tuiApp.controller, app.Options{
		MusicDir: tuiApp.musicDir,
		Events:   fwd.events,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	// Отмена контекста сигналом - обычное завершение
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// eventForwarder передает уведомления плеера в канал цикла событий
type eventForwarder struct {
	events chan player.Event
	done   chan struct{}
	mutex  sync.Mutex
	closed bool
	once   sync.Once
}

func newEventForwarder(size int) *eventForwarder {
	return &eventForwarder{
		events: make(chan player.Event, size),
		done:   make(chan struct{}),
	}
}

// send вызывается из горутины плеера. После close не блокируется.
func (f *eventForwarder) send(event player.Event) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.closed {
		return
	}
	select {
	case f.events <- event:
	case <-f.done:
	}
}

// close освобождает заблокированный send и закрывает канал,
// чтобы ожидающая ListenForEvents завершилась
func (f *eventForwarder) close() {
	f.once.Do(func() {
		close(f.done)

		f.mutex.Lock()
		f.closed = true
		close(f.events)
		f.mutex.Unlock()
	})
}
