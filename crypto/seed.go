package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// GenerateServerSeed returns a fresh random seed and its SHA-256 commitment.
func GenerateServerSeed() (seed string, hash string) {
	bytes := make([]byte, 32)
	// crypto/rand.Read never returns an error as of Go 1.24
	_, _ = rand.Read(bytes)

	seed = hex.EncodeToString(bytes)
	hash = HashSeed(seed)

	return
}

func HashSeed(seed string) string {
	h := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(h[:])
}

func VerifySeed(seed, hash string) bool {
	return HashSeed(seed) == hash
}
