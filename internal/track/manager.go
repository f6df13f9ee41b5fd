// Package track содержит логику управления треками
package track

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/hazadus/go-jukebox/internal/store"
)

// ErrEmptyPath возвращается при попытке добавить трек без пути
var ErrEmptyPath = errors.New("путь к файлу не указан")

// Manager управляет треками в приложении
type Manager struct {
	store *store.Store
}

// NewManager создает новый экземпляр Manager
func NewManager(s *store.Store) *Manager {
	return &Manager{
		store: s,
	}
}

// Add добавляет файл в плейлист. Название трека - имя файла.
func (m *Manager) Add(ctx context.Context, path string) (store.Track, error) {
	if path == "" {
		return store.Track{}, ErrEmptyPath
	}

	title := filepath.Base(path)
	id, err := m.store.Insert(ctx, title, path)
	if err != nil {
		return store.Track{}, fmt.Errorf("ошибка добавления трека: %w", err)
	}

	return store.Track{ID: id, Title: title, Path: path}, nil
}

// Remove удаляет трек из плейлиста
func (m *Manager) Remove(ctx context.Context, id int64) error {
	return m.store.Remove(ctx, id)
}

// ListTracks возвращает список всех треков
func (m *Manager) ListTracks(ctx context.Context) ([]store.Track, error) {
	return m.store.ListAll(ctx)
}

// PathOf возвращает путь к файлу трека
func (m *Manager) PathOf(ctx context.Context, id int64) (string, error) {
	return m.store.PathOf(ctx, id)
}

// Close закрывает хранилище
func (m *Manager) Close() error {
	return m.store.Close()
}
