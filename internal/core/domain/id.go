package domain

import (
	"math/rand"
	"strings"
)

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// NewID generates an entity id of the form "prefix-xxxxxxxx" with an
// 8-character base36 suffix, matching the seeded dataset's id shape.
func NewID(prefix string) string {
	var b strings.Builder
	b.Grow(len(prefix) + 9)
	b.WriteString(prefix)
	b.WriteByte('-')
	for i := 0; i < 8; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return b.String()
}

// NewReference generates an uppercased transfer reference code. The 2-3
// transactions produced by a single transfer share one reference.
func NewReference() string {
	return strings.ToUpper(NewID("ref"))
}
