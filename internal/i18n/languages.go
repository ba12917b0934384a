// Package i18n holds the supported language catalog and locale mapping
// for speech synthesis.
package i18n

// Language is one supported interface language
type Language struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Flag   string `json:"flag"`
	Locale string `json:"locale"`
}

// languages is the supported set, in display order
var languages = []Language{
	{Code: "en", Name: "English", Flag: "🇺🇸", Locale: "en-US"},
	{Code: "tl", Name: "Tagalog", Flag: "🇵🇭", Locale: "fil-PH"},
	{Code: "zh", Name: "中文", Flag: "🇨🇳", Locale: "zh-CN"},
	{Code: "cs", Name: "Čeština", Flag: "🇨🇿", Locale: "cs-CZ"},
	{Code: "fr", Name: "Français", Flag: "🇫🇷", Locale: "fr-FR"},
	{Code: "de", Name: "Deutsch", Flag: "🇩🇪", Locale: "de-DE"},
}

// Supported returns the language catalog in display order
func Supported() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// IsSupported reports whether a language code is in the catalog
func IsSupported(code string) bool {
	for _, lang := range languages {
		if lang.Code == code {
			return true
		}
	}
	return false
}

// Locale maps a language code to a speech-synthesis locale. Unknown codes
// fall back to US English rather than failing.
func Locale(code string) string {
	for _, lang := range languages {
		if lang.Code == code {
			return lang.Locale
		}
	}
	return "en-US"
}

// testPhrases are sample sentences used to preview a voice
var testPhrases = map[string]string{
	"en": "Hello! I am your AI tutor. How can I help you learn today?",
	"tl": "Kumusta! Ako ang inyong AI tutor. Paano ko kayo matutulungan sa pag-aaral ngayon?",
	"zh": "你好！我是你的AI导师。今天我能帮你学什么？",
	"cs": "Ahoj! Jsem váš AI tutor. Jak vám dnes mohu pomoci s učením?",
	"fr": "Salut! Je suis votre tuteur IA. Comment puis-je vous aider à apprendre aujourd'hui?",
	"de": "Hallo! Ich bin euer KI-Tutor. Wie kann ich euch heute beim Lernen helfen?",
}

// TestPhrase returns the voice-preview sentence for a language
func TestPhrase(code string) string {
	if phrase, ok := testPhrases[code]; ok {
		return phrase
	}
	return testPhrases["en"]
}
