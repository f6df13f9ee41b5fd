// Package store хранит плейлист в SQLite
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"
)

// ErrNotFound возвращается, если трека с указанным ID нет в хранилище
var ErrNotFound = errors.New("трек не найден")

// StorageError оборачивает ошибку драйвера вместе с названием операции
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("ошибка хранилища (%s): %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Track представляет запись плейлиста
type Track struct {
	ID    int64
	Title string
	Path  string
}

const schema = `CREATE TABLE IF NOT EXISTS playlist (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT,
	path TEXT
)`

// Store владеет соединением с файлом базы данных
type Store struct {
	db        *sql.DB
	closeOnce sync.Once
	closeErr  error
}

// Open открывает (или создает) файл базы данных и гарантирует наличие таблицы
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, &StorageError{Op: "create dir", Err: err}
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &StorageError{Op: "open", Err: err}
	}

	// Один процесс, один писатель
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, &StorageError{Op: fmt.Sprintf("pragma %q", pragma), Err: err}
		}
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, &StorageError{Op: "create table", Err: err}
	}

	return &Store{db: db}, nil
}

// Insert добавляет трек и возвращает присвоенный ID
func (s *Store) Insert(ctx context.Context, title, path string) (int64, error) {
	res, err := s.db.ExecContext(ctx, "INSERT INTO playlist (title, path) VALUES (?, ?)", title, path)
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StorageError{Op: "insert", Err: err}
	}
	return id, nil
}

// Remove удаляет трек. Отсутствие трека ошибкой не считается.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM playlist WHERE id = ?", id); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

// ListAll возвращает все треки в порядке добавления
func (s *Store) ListAll(ctx context.Context) ([]Track, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, title, path FROM playlist ORDER BY id")
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	defer rows.Close()

	tracks := make([]Track, 0)
	for rows.Next() {
		var (
			t     Track
			title sql.NullString
			path  sql.NullString
		)
		if err := rows.Scan(&t.ID, &title, &path); err != nil {
			return nil, &StorageError{Op: "list", Err: err}
		}
		t.Title = title.String
		t.Path = path.String
		tracks = append(tracks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return tracks, nil
}

// PathOf возвращает путь к файлу трека
func (s *Store) PathOf(ctx context.Context, id int64) (string, error) {
	var path sql.NullString
	err := s.db.QueryRowContext(ctx, "SELECT path FROM playlist WHERE id = ?", id).Scan(&path)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("трек с ID %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return "", &StorageError{Op: "select path", Err: err}
	}
	return path.String, nil
}

// Close закрывает соединение. Повторные вызовы возвращают результат первого.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		if err := s.db.Close(); err != nil {
			s.closeErr = &StorageError{Op: "close", Err: err}
		}
	})
	return s.closeErr
}
