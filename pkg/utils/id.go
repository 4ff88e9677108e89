package utils

import (
	"crypto/rand"
	"math/big"
)

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

// GenerateId returns a short opaque base36 identifier, 7 characters long.
func GenerateId() string {
	b := make([]byte, 7)
	max := big.NewInt(int64(len(base36)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			b[i] = base36[0]
			continue
		}
		b[i] = base36[n.Int64()]
	}
	return string(b)
}
