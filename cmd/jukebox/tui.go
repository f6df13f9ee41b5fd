package main

import (
	"context"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-jukebox/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for managing and playing tracks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI(ctx)
		},
	}
}

func (app *Application) launchTUI(ctx context.Context) error {
	// Вывод в терминал занят интерфейсом, журнал пишется в файл или отключается
	if app.Config.LogFile != "" {
		f, err := tea.LogToFile(app.Config.LogFile, "jukebox")
		if err != nil {
			return fmt.Errorf("ошибка открытия журнала: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	tuiApp := tui.NewApp(app.Library, app.Player, app.Config.MusicDir)
	if err := tuiApp.Run(ctx); err != nil {
		return fmt.Errorf("ошибка TUI: %w", err)
	}
	return nil
}
