package core

import (
	"crypto/rand"
	"strings"
)

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// IDLength is the length of a transaction identifier.
const IDLength = 4

// NewID returns a short random transaction id, uppercase base36. The token
// space is small on purpose (the user types these back by hand); uniqueness
// against the store is the ledger's job, see ledger.Store Append.
func NewID() string {
	buf := make([]byte, IDLength)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the platform is broken; there is no
		// useful fallback for an id source.
		panic("core: reading random bytes: " + err.Error())
	}
	var b strings.Builder
	b.Grow(IDLength)
	for _, c := range buf {
		b.WriteByte(idAlphabet[int(c)%len(idAlphabet)])
	}
	return b.String()
}

// NormalizeID uppercases an id token so lookups are case-insensitive.
func NormalizeID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}
