package server

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomAnonymousIdentity(t *testing.T) {
	seen := map[string]bool{}

	for range 50 {
		identity := randomAnonymousIdentity()

		parts := strings.Split(identity, " ")
		assert.Len(t, parts, 3)
		assert.Contains(t, anonAdjectives, parts[0])
		assert.Contains(t, anonNouns, parts[1])
		assert.Len(t, parts[2], 2)

		seen[identity] = true
	}

	// 10 adjectives x 10 nouns x 100 suffixes; 50 draws landing on a
	// single value would mean the generator is broken.
	assert.Greater(t, len(seen), 1)
}
