package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/utils"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [trackid]",
		Short: "Play a track by its ID",
		Long:  `Play a playlist track by its ID without the TUI. Ctrl+C stops playback.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return app.playByID(ctx, id)
		},
	}
}

func (app *Application) playByID(ctx context.Context, id int64) error {
	path, err := app.Library.PathOf(ctx, id)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	// Слушатель не должен блокировать плеер, поэтому лишние позиции отбрасываются
	events := make(chan player.Event, 16)
	cancel := app.Player.Subscribe(func(event player.Event) {
		select {
		case events <- event:
		default:
		}
	})
	defer cancel()

	if err := app.Player.LoadAndPlay(path); err != nil {
		return err
	}

	fmt.Printf("🎵 Сейчас играет трек %d: %s\n", id, path)
	fmt.Printf("🎮 Ctrl+C - остановить и выйти\n\n")

	var position, duration time.Duration

	// Короткий трек может закончиться раньше первого уведомления,
	// поэтому состояние дополнительно проверяется по таймеру
	ticker := time.NewTicker(app.Config.NotifyInterval())
	defer ticker.Stop()

	for {
		select {
		case event := <-events:
			switch event.Kind {
			case player.PositionChanged:
				position = event.Value
			case player.DurationChanged:
				duration = event.Value
			}
			fmt.Printf("\r⏱️  %s / %s", utils.FormatDuration(position), utils.FormatDuration(duration))
		case <-ticker.C:
			if app.Player.State() == player.Stopped {
				fmt.Println("\n✅ Воспроизведение завершено")
				return nil
			}
		case <-ctx.Done():
			app.Player.Stop()
			fmt.Println("\n⏹️  Воспроизведение остановлено пользователем")
			return nil
		}
	}
}
