package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-jukebox/internal/config"
	"github.com/hazadus/go-jukebox/internal/player"
	"github.com/hazadus/go-jukebox/internal/store"
	"github.com/hazadus/go-jukebox/internal/track"
)

const (
	defaultConfigPath = "~/.jukebox"
)

// Application содержит зависимости, общие для всех команд
type Application struct {
	Config  *config.Config
	Library *track.Manager
	Player  *player.Player
}

// newApplication открывает плейлист и создает плеер по конфигурации
func newApplication(cfg *config.Config) (*Application, error) {
	s, err := store.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия плейлиста: %w", err)
	}

	return &Application{
		Config:  cfg,
		Library: track.NewManager(s),
		Player:  player.NewPlayer(player.WithNotifyInterval(cfg.NotifyInterval())),
	}, nil
}

// Close останавливает плеер и закрывает плейлист
func (app *Application) Close() error {
	if err := app.Player.Close(); err != nil {
		return err
	}
	return app.Library.Close()
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.LoadConfig(defaultConfigPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	app, err := newApplication(cfg)
	if err != nil {
		log.Fatalf("Ошибка запуска: %v", err)
	}

	// Ctrl+C и SIGTERM отменяют контекст команд
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err = app.createRootCommand(ctx).Execute()

	stop()
	if closeErr := app.Close(); closeErr != nil {
		log.Printf("Ошибка закрытия приложения: %v", closeErr)
	}
	if err != nil {
		os.Exit(1)
	}
}
