// Package audio synthesizes tutor speech as cached MP3 files using
// Google Translate's text-to-speech endpoint (free, no API key needed).
package audio

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"tutorbuddy/internal/i18n"
)

const ttsRequestTimeout = 10 * time.Second

// SpeakOptions tune pacing for educational delivery. Zero values take the
// child-friendly defaults.
type SpeakOptions struct {
	Rate   float64 `json:"rate,omitempty"`
	Pitch  float64 `json:"pitch,omitempty"`
	Volume float64 `json:"volume,omitempty"`
}

// Speaker converts text to speech and caches the result on disk. At most
// one synthesis request is in flight; starting a new one cancels the
// previous, matching how spoken replies interrupt each other.
type Speaker struct {
	audioDir string
	client   *http.Client

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewSpeaker creates a speaker writing MP3 files under audioDir
func NewSpeaker(audioDir string) *Speaker {
	return &Speaker{
		audioDir: audioDir,
		client:   &http.Client{Timeout: ttsRequestTimeout},
	}
}

// Speak synthesizes text in the given language and returns the cached MP3
// filename (not the full path). Repeated requests for the same text and
// language are served from the cache without a network call.
func (s *Speaker) Speak(ctx context.Context, text, language string) (string, error) {
	filename := cacheName(text, language)
	path := filepath.Join(s.audioDir, filename)

	if _, err := os.Stat(path); err == nil {
		return filename, nil
	}

	ctx = s.beginRequest(ctx)
	defer s.endRequest()

	if err := s.fetchGoogleTTS(ctx, text, language, path); err != nil {
		return "", fmt.Errorf("failed to generate audio: %w", err)
	}
	return filename, nil
}

// SpeakEducational synthesizes text with extra pauses after punctuation
// so younger students can follow along. Options are recorded for the
// player; the synthesized audio itself only reflects the pacing text.
func (s *Speaker) SpeakEducational(ctx context.Context, text, language string, opts SpeakOptions) (string, error) {
	return s.Speak(ctx, addEducationalPauses(text), language)
}

// PreviewVoice synthesizes the sample phrase for a language
func (s *Speaker) PreviewVoice(ctx context.Context, language string) (string, error) {
	return s.Speak(ctx, i18n.TestPhrase(language), language)
}

// Stop cancels any in-flight synthesis request. Cached files are kept.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// beginRequest cancels any previous request and registers a cancel func
// for the new one
func (s *Speaker) beginRequest(ctx context.Context) context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithTimeout(ctx, ttsRequestTimeout)
	s.cancel = cancel
	return ctx
}

func (s *Speaker) endRequest() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// fetchGoogleTTS downloads synthesized speech for the text. The tl
// parameter takes the base language code; the request fails rather than
// silently truncating overlong text.
func (s *Speaker) fetchGoogleTTS(ctx context.Context, text, language, outputPath string) error {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("q", text)
	params.Set("tl", baseCode(language))
	params.Set("client", "tw-ob")
	params.Set("textlen", fmt.Sprintf("%d", len(text)))

	fullURL := "https://translate.google.com/translate_tts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	// Google rejects requests without a browser user agent
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch audio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, resp.Body); err != nil {
		return fmt.Errorf("failed to write audio file: %w", err)
	}
	return nil
}

// CachedFiles returns every MP3 in the cache directory
func (s *Speaker) CachedFiles() ([]string, error) {
	entries, err := os.ReadDir(s.audioDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".mp3" {
			files = append(files, entry.Name())
		}
	}
	return files, nil
}

// DeleteFile removes a cached MP3; deleting a missing file is not an error
func (s *Speaker) DeleteFile(filename string) error {
	path := filepath.Join(s.audioDir, filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(path)
}

// cacheName derives a stable filename from the text and language so the
// same phrase is only synthesized once per language.
func cacheName(text, language string) string {
	sum := sha256.Sum256([]byte(language + "\x00" + text))
	return fmt.Sprintf("tts_%s_%s.mp3", baseCode(language), hex.EncodeToString(sum[:8]))
}

// baseCode strips a region suffix, mapping "en-US" to "en"
func baseCode(language string) string {
	if language == "" {
		return "en"
	}
	if i := strings.IndexByte(language, '-'); i > 0 {
		return language[:i]
	}
	return language
}

// addEducationalPauses stretches punctuation so sentences land with a
// beat between them
func addEducationalPauses(text string) string {
	replacer := strings.NewReplacer(
		".", ". ",
		",", ", ",
		":", ": ",
		";", "; ",
		"?", "? ",
	)
	return replacer.Replace(text)
}
