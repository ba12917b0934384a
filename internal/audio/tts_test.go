package audio

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tutorbuddy/internal/i18n"
)

func TestCacheName(t *testing.T) {
	first := cacheName("Hello there", "en")
	second := cacheName("Hello there", "en")
	if first != second {
		t.Errorf("same input produced different names: %q vs %q", first, second)
	}

	if cacheName("Hello there", "fr") == first {
		t.Error("different languages share a cache name")
	}
	if cacheName("Hello again", "en") == first {
		t.Error("different texts share a cache name")
	}

	if !strings.HasPrefix(first, "tts_en_") || !strings.HasSuffix(first, ".mp3") {
		t.Errorf("unexpected cache name shape: %q", first)
	}
}

func TestBaseCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"fil-PH", "fil"},
		{"zh-CN", "zh"},
		{"", "en"},
	}
	for _, tt := range tests {
		if got := baseCode(tt.in); got != tt.want {
			t.Errorf("baseCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAddEducationalPauses(t *testing.T) {
	got := addEducationalPauses("One.Two,three?Four")
	want := "One. Two, three? Four"
	if got != want {
		t.Errorf("addEducationalPauses = %q, want %q", got, want)
	}
}

func TestPreviewVoiceServedFromCache(t *testing.T) {
	dir := t.TempDir()
	s := NewSpeaker(dir)

	// pre-seed the cache entry for the French sample phrase so no
	// network request is made
	want := cacheName(i18n.TestPhrase("fr"), "fr")
	if err := os.WriteFile(filepath.Join(dir, want), []byte("mp3"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.PreviewVoice(context.Background(), "fr")
	if err != nil {
		t.Fatalf("PreviewVoice returned error: %v", err)
	}
	if got != want {
		t.Errorf("PreviewVoice = %q, want cached %q", got, want)
	}
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	s := NewSpeaker(t.TempDir())
	if err := s.DeleteFile("nope.mp3"); err != nil {
		t.Errorf("deleting a missing file returned %v", err)
	}
}

func TestCachedFilesFiltersNonAudio(t *testing.T) {
	dir := t.TempDir()
	s := NewSpeaker(dir)

	for _, name := range []string{"a.mp3", "b.mp3", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := s.CachedFiles()
	if err != nil {
		t.Fatalf("CachedFiles returned error: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("CachedFiles = %v, want the two mp3 files", files)
	}
}
