// Package audio выбирает декодер для локального аудио файла
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/wav"
)

// ErrUnsupportedFormat возвращается для файлов с неизвестным расширением
var ErrUnsupportedFormat = errors.New("неподдерживаемый формат файла")

// Extensions - расширения, которые предлагает диалог выбора файла
var Extensions = []string{".mp3", ".wav"}

// Supported сообщает, знаем ли мы декодер для файла
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Open открывает файл и декодирует его по расширению.
// Закрытие возвращенного потока закрывает и файл.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if !Supported(path) {
		return nil, beep.Format{}, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("ошибка открытия файла: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".mp3":
		streamer, format, err = mp3.Decode(file)
	case ".wav":
		streamer, format, err = wav.Decode(file)
	}
	if err != nil {
		file.Close()
		return nil, beep.Format{}, fmt.Errorf("ошибка декодирования %s: %w", strings.TrimPrefix(ext, "."), err)
	}

	return streamer, format, nil
}
