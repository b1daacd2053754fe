package batch

import (
	"math/rand"
	"regexp"
	"strings"
)

// Prefix marks every generated batch identifier.
const Prefix = "BATCH-"

const (
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	tokenLen = 6
)

// Pattern matches the canonical batch ID format.
var Pattern = regexp.MustCompile(`^BATCH-[A-Z0-9]{6}$`)

// NewID generates a fresh batch identifier: Prefix plus a 6-character
// uppercase alphanumeric token. IDs are not checked against existing
// records; the token space (36^6) keeps collisions negligible at
// demo scale.
func NewID() string {
	var b strings.Builder
	b.Grow(len(Prefix) + tokenLen)
	b.WriteString(Prefix)
	for i := 0; i < tokenLen; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// IsValid reports whether id matches the canonical format.
func IsValid(id string) bool {
	return Pattern.MatchString(id)
}
