package utils

import (
	"testing"
	"time"
)

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		ms       int64
		expected string
	}{
		{0, "00:00"},
		{999, "00:00"},
		{59_000, "00:59"},
		{60_000, "01:00"},
		{61_500, "01:01"},
		// Минуты не переходят в часы
		{3_661_000, "61:01"},
		{5_999_000, "99:59"},
		// После 99:59 поле минут расширяется до трех цифр
		{6_000_000, "100:00"},
		{-5, "00:00"},
	}

	for _, test := range tests {
		result := FormatMillis(test.ms)
		if result != test.expected {
			t.Errorf("FormatMillis(%d) = %s; expected %s", test.ms, result, test.expected)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{0, "00:00"},
		{30 * time.Second, "00:30"},
		{1*time.Minute + 30*time.Second, "01:30"},
		{61*time.Minute + 1*time.Second, "61:01"},
	}

	for _, test := range tests {
		result := FormatDuration(test.duration)
		if result != test.expected {
			t.Errorf("FormatDuration(%v) = %s; expected %s", test.duration, result, test.expected)
		}
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10", 10, "exactly10"},
		{"this is a very long string", 10, "this is..."},
		{"abc", 3, "abc"},
		{"abcd", 3, "abc"},
		{"abcde", 4, "a..."},
		{"песня.mp3", 8, "песня..."},
	}

	for _, test := range tests {
		result := TruncateString(test.input, test.maxLen)
		if result != test.expected {
			t.Errorf("TruncateString(%s, %d) = %s; expected %s", test.input, test.maxLen, result, test.expected)
		}
	}
}
