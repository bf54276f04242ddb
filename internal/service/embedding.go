package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// GenerateEmbedding returns a small deterministic embedding for the given
// text: total length, vowel count and consonant count. Enough to give the
// postgres ordered search a stable distance metric without an external
// model call.
func GenerateEmbedding(text string) pgvector.Vector {
	text = strings.ToLower(text)
	var vowels, consonants float32
	for _, r := range text {
		switch {
		case strings.ContainsRune("aeiou", r):
			vowels++
		case r >= 'a' && r <= 'z':
			consonants++
		}
	}
	return pgvector.NewVector([]float32{float32(len(text)), vowels, consonants})
}
