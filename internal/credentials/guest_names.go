// Package credentials generates kid-friendly guest names for demo
// sign-ins that leave the child name blank.
package credentials

import (
	"crypto/rand"
	"math/big"
)

var adjectives = []string{
	"happy", "sunny", "brave", "bright", "cool", "swift", "clever", "jolly",
	"mighty", "super", "star", "wild", "funny", "lucky", "magic", "bouncy",
	"cheerful", "daring", "eager", "flying", "gentle", "hyper", "jazzy", "kindly",
	"lively", "merry", "noble", "perky", "quick", "royal", "snappy", "turbo",
	"zippy", "awesome", "bold", "cosmic", "dynamic", "epic", "fantastic", "groovy",
}

var nouns = []string{
	"dragon", "tiger", "eagle", "dolphin", "panda", "lion", "wolf", "bear",
	"fox", "hawk", "shark", "phoenix", "unicorn", "rocket", "ninja", "wizard",
	"knight", "pirate", "robot", "astronaut", "hero", "champion", "explorer", "ranger",
	"warrior", "captain", "genius", "comet", "thunder", "lightning", "tornado", "blizzard",
	"flame", "storm", "shadow", "spirit", "ghost", "monster", "alien", "racer",
}

// GenerateGuestName generates a random learner name in the format
// "adjective-noun"
func GenerateGuestName() (string, error) {
	adjective, err := randomElement(adjectives)
	if err != nil {
		return "", err
	}

	noun, err := randomElement(nouns)
	if err != nil {
		return "", err
	}

	return adjective + "-" + noun, nil
}

// randomElement picks a random element from a string slice
func randomElement(slice []string) (string, error) {
	if len(slice) == 0 {
		return "", nil
	}

	num, err := rand.Int(rand.Reader, big.NewInt(int64(len(slice))))
	if err != nil {
		return "", err
	}

	return slice[num.Int64()], nil
}
