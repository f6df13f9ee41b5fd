package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

func writeWAV(t *testing.T, path string, length time.Duration) beep.Format {
	t.Helper()

	format := beep.Format{SampleRate: 8000, NumChannels: 1, Precision: 2}
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}
	defer file.Close()

	if err := wav.Encode(file, beep.Silence(format.SampleRate.N(length)), format); err != nil {
		t.Fatalf("Ошибка кодирования WAV: %v", err)
	}
	return format
}

func TestSupported(t *testing.T) {
	tests := []struct {
		path     string
		expected bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"/music/track.wav", true},
		{"track.flac", false},
		{"noext", false},
	}

	for _, test := range tests {
		if got := Supported(test.path); got != test.expected {
			t.Errorf("Supported(%q) = %v, ожидалось %v", test.path, got, test.expected)
		}
	}
}

func TestOpenWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	want := writeWAV(t, path, 2*time.Second)

	streamer, format, err := Open(path)
	if err != nil {
		t.Fatalf("Ошибка открытия WAV: %v", err)
	}
	defer streamer.Close()

	if format.SampleRate != want.SampleRate {
		t.Errorf("Ожидалась частота %d, получено %d", want.SampleRate, format.SampleRate)
	}
	if got := format.SampleRate.D(streamer.Len()); got != 2*time.Second {
		t.Errorf("Ожидалась длительность 2s, получено %v", got)
	}
}

func TestOpenUnsupported(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "track.ogg"))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Ожидалась ErrUnsupportedFormat, получено: %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing.mp3"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Ожидалась ошибка отсутствия файла, получено: %v", err)
	}
}

func TestOpenCorruptedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.mp3")
	if err := os.WriteFile(path, []byte("not an mp3"), 0644); err != nil {
		t.Fatalf("Ошибка создания файла: %v", err)
	}

	if _, _, err := Open(path); err == nil {
		t.Error("Ожидалась ошибка декодирования поврежденного файла")
	}
}
