package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/go-jukebox/internal/config"
	"github.com/hazadus/go-jukebox/internal/store"
)

// captureOutput перехватывает stdout и stderr во время выполнения функции
func captureOutput(t *testing.T, fn func()) string {
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Ошибка создания pipe: %v", err)
	}

	os.Stdout = w
	os.Stderr = w

	// Читаем параллельно, чтобы большой вывод не заблокировал pipe
	result := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		result <- buf.String()
	}()

	fn()

	os.Stdout = oldStdout
	os.Stderr = oldStderr
	w.Close()

	return <-result
}

// createTestApplication создает приложение с плейлистом во временном каталоге
func createTestApplication(t *testing.T) *Application {
	t.Helper()

	cfg := config.Default()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "playlist.db")
	cfg.MusicDir = t.TempDir()

	app, err := newApplication(cfg)
	if err != nil {
		t.Fatalf("Ошибка создания приложения: %v", err)
	}
	t.Cleanup(func() { app.Close() })
	return app
}

func writeAudioFile(t *testing.T, name string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte("data"), 0644); err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}
	return path
}

// TestCmdList проверяет, что команда `list` выводит треки плейлиста
func TestCmdList(t *testing.T) {
	app := createTestApplication(t)
	ctx := context.Background()

	path := writeAudioFile(t, "Test Title.mp3")
	if _, err := app.Library.Add(ctx, path); err != nil {
		t.Fatalf("Ошибка добавления трека: %v", err)
	}

	listCmd := app.createListCommand(ctx)
	output := captureOutput(t, func() {
		listCmd.SetArgs([]string{})
		if err := listCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды list: %v", err)
		}
	})

	expectedStrings := []string{
		"📚 Найдено треков: 1",
		"Test Title.mp3",
		path,
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(output, expected) {
			t.Errorf("Вывод команды list не содержит ожидаемую строку '%s': %s", expected, output)
		}
	}
}

// TestCmdListEmpty проверяет вывод для пустого плейлиста
func TestCmdListEmpty(t *testing.T) {
	app := createTestApplication(t)

	listCmd := app.createListCommand(context.Background())
	output := captureOutput(t, func() {
		listCmd.SetArgs([]string{})
		if err := listCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды list: %v", err)
		}
	})

	if !strings.Contains(output, "📚 Плейлист пуст") {
		t.Errorf("Команда list не отобразила сообщение о пустом плейлисте: %s", output)
	}
}

// TestCmdAdd проверяет, что команда `add` добавляет треки в конец плейлиста
func TestCmdAdd(t *testing.T) {
	app := createTestApplication(t)
	ctx := context.Background()

	first := writeAudioFile(t, "first.mp3")
	second := writeAudioFile(t, "second.wav")

	addCmd := app.createAddCommand(ctx)
	output := captureOutput(t, func() {
		addCmd.SetArgs([]string{first, second})
		if err := addCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды add: %v", err)
		}
	})

	if !strings.Contains(output, "✅ Добавлен трек 1: first.mp3") {
		t.Errorf("Команда add не отобразила ожидаемый вывод: %s", output)
	}

	tracks, err := app.Library.ListTracks(ctx)
	if err != nil {
		t.Fatalf("Ошибка чтения плейлиста: %v", err)
	}
	if len(tracks) != 2 {
		t.Fatalf("Ожидалось 2 трека, получено %d", len(tracks))
	}
	if tracks[0].Path != first || tracks[1].Path != second {
		t.Errorf("Неверный порядок треков: %+v", tracks)
	}
}

// TestCmdAddInvalidArgs проверяет обработку отсутствующих аргументов в команде add
func TestCmdAddInvalidArgs(t *testing.T) {
	app := createTestApplication(t)

	addCmd := app.createAddCommand(context.Background())

	var buf bytes.Buffer
	addCmd.SetOut(&buf)
	addCmd.SetErr(&buf)
	addCmd.SetArgs([]string{})

	if err := addCmd.Execute(); err == nil {
		t.Error("Ожидалась ошибка при выполнении команды add без аргументов")
	}

	if output := buf.String(); !strings.Contains(output, "requires at least 1 arg") {
		t.Errorf("Команда add не отобразила ошибку о неверных аргументах: %s", output)
	}
}

// TestCmdRemove проверяет, что команда `remove` удаляет указанный трек
func TestCmdRemove(t *testing.T) {
	app := createTestApplication(t)
	ctx := context.Background()

	for _, name := range []string{"one.mp3", "two.mp3"} {
		if _, err := app.Library.Add(ctx, writeAudioFile(t, name)); err != nil {
			t.Fatalf("Ошибка добавления трека: %v", err)
		}
	}

	removeCmd := app.createRemoveCommand(ctx)
	output := captureOutput(t, func() {
		removeCmd.SetArgs([]string{"1"})
		if err := removeCmd.Execute(); err != nil {
			t.Errorf("Ошибка выполнения команды remove: %v", err)
		}
	})

	if !strings.Contains(output, "🗑️  Трек 1 удален из плейлиста") {
		t.Errorf("Команда remove не отобразила ожидаемый вывод: %s", output)
	}

	tracks, err := app.Library.ListTracks(ctx)
	if err != nil {
		t.Fatalf("Ошибка чтения плейлиста: %v", err)
	}
	if len(tracks) != 1 || tracks[0].Title != "two.mp3" {
		t.Errorf("Ожидался один трек two.mp3, получено %+v", tracks)
	}
}

// TestCmdRemoveInvalidID проверяет обработку неверного ID в команде remove
func TestCmdRemoveInvalidID(t *testing.T) {
	app := createTestApplication(t)

	removeCmd := app.createRemoveCommand(context.Background())
	removeCmd.SetOut(io.Discard)
	removeCmd.SetErr(io.Discard)
	removeCmd.SetArgs([]string{"invalid"})

	err := removeCmd.Execute()
	if err == nil {
		t.Fatal("Ожидалась ошибка для неверного ID")
	}
	if !strings.Contains(err.Error(), "неверный ID") {
		t.Errorf("Неожиданная ошибка: %v", err)
	}
}

// TestCmdPlayUnknownID проверяет, что play сообщает об отсутствующем треке
func TestCmdPlayUnknownID(t *testing.T) {
	app := createTestApplication(t)

	playCmd := app.createPlayCommand(context.Background())
	playCmd.SetOut(io.Discard)
	playCmd.SetErr(io.Discard)
	playCmd.SetArgs([]string{"42"})

	err := playCmd.Execute()
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Ожидалась ошибка ErrNotFound, получено: %v", err)
	}
}

// TestParseID проверяет разбор ID трека
func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    int64
		wantErr bool
	}{
		{"1", 1, false},
		{"42", 42, false},
		{"0", 0, true},
		{"-3", 0, true},
		{"abc", 0, true},
	}

	for _, tt := range tests {
		got, err := parseID(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}
