package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// createAddCommand создает команду add с привязкой к экземпляру приложения
func (app *Application) createAddCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "add [file path]...",
		Short: "Add audio files to the playlist",
		Long:  `Add one or more local mp3 or wav files to the end of the playlist.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			for _, path := range args {
				if err := app.addTrack(ctx, path); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (app *Application) addTrack(ctx context.Context, path string) error {
	t, err := app.Library.Add(ctx, path)
	if err != nil {
		return fmt.Errorf("ошибка добавления %s: %w", path, err)
	}

	fmt.Printf("✅ Добавлен трек %d: %s\n", t.ID, t.Title)
	return nil
}
