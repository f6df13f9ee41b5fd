package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-jukebox/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tracks in the playlist",
		Long:  `Display all tracks stored in the playlist in insertion order.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.listTracks(ctx)
		},
	}
}

func (app *Application) listTracks(ctx context.Context) error {
	tracks, err := app.Library.ListTracks(ctx)
	if err != nil {
		return fmt.Errorf("ошибка чтения плейлиста: %w", err)
	}

	if len(tracks) == 0 {
		fmt.Println("📚 Плейлист пуст. Добавьте треки с помощью команды 'add'.")
		return nil
	}

	fmt.Printf("📚 Найдено треков: %d\n\n", len(tracks))

	fmt.Printf("%-6s %-40s %s\n", "ID", "Название", "Путь")
	fmt.Println(strings.Repeat("-", 100))

	for _, t := range tracks {
		fmt.Printf("%-6d %-40s %s\n", t.ID, utils.TruncateString(t.Title, 38), t.Path)
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'jukebox play [ID]' для воспроизведения трека")
	return nil
}
