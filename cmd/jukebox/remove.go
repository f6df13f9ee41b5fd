package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// createRemoveCommand создает команду remove с привязкой к экземпляру приложения
func (app *Application) createRemoveCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"delete"},
		Short:   "Remove a track by ID",
		Long:    `Remove a track from the playlist by its ID. The audio file itself is kept.`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.removeTrack(ctx, id)
		},
	}
}

func (app *Application) removeTrack(ctx context.Context, id int64) error {
	if err := app.Library.Remove(ctx, id); err != nil {
		return fmt.Errorf("ошибка удаления трека: %w", err)
	}

	fmt.Printf("🗑️  Трек %d удален из плейлиста\n", id)
	return nil
}

// parseID разбирает ID трека из аргумента команды
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("неверный ID '%s': ID должен быть положительным числом", arg)
	}
	return id, nil
}
