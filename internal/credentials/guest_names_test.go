package credentials

import (
	"strings"
	"testing"
)

func TestGenerateGuestName(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 20; i++ {
		name, err := GenerateGuestName()
		if err != nil {
			t.Fatalf("GenerateGuestName returned error: %v", err)
		}

		parts := strings.Split(name, "-")
		if len(parts) != 2 {
			t.Fatalf("name %q is not adjective-noun", name)
		}
		if !contains(adjectives, parts[0]) {
			t.Errorf("adjective %q not in word list", parts[0])
		}
		if !contains(nouns, parts[1]) {
			t.Errorf("noun %q not in word list", parts[1])
		}
		seen[name] = true
	}

	if len(seen) < 2 {
		t.Error("20 draws produced a single name; generator looks non-random")
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
