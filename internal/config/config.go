// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultDatabasePath     = "playlist.db"
	defaultNotifyIntervalMS = 250
)

// Config структура для хранения конфигурации приложения
type Config struct {
	DatabasePath     string `yaml:"database_path"`
	MusicDir         string `yaml:"music_dir"`
	NotifyIntervalMS int    `yaml:"notify_interval_ms"`
	LogFile          string `yaml:"log_file"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращаются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	// Раскрываем тильду в путях
	for _, p := range []*string{&config.DatabasePath, &config.MusicDir, &config.LogFile} {
		if *p, err = ExpandHome(*p); err != nil {
			return nil, err
		}
	}

	config.applyDefaults()
	return config, nil
}

// NotifyInterval возвращает период уведомлений о позиции воспроизведения
func (c *Config) NotifyInterval() time.Duration {
	return time.Duration(c.NotifyIntervalMS) * time.Millisecond
}

func (c *Config) applyDefaults() {
	if c.DatabasePath == "" {
		c.DatabasePath = defaultDatabasePath
	}
	if c.MusicDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.MusicDir = home
		} else {
			c.MusicDir = "."
		}
	}
	if c.NotifyIntervalMS <= 0 {
		c.NotifyIntervalMS = defaultNotifyIntervalMS
	}
}

// ExpandHome заменяет ведущую тильду на домашний каталог пользователя
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
