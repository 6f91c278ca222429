package utils

import (
	"crypto/rand"
	"math/big"
)

const shortIDAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// ShortID returns a random lowercase alphanumeric identifier of length n
func ShortID(n int) (string, error) {
	b := make([]byte, n)
	max := big.NewInt(int64(len(shortIDAlphabet)))
	for i := range b {
		v, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = shortIDAlphabet[v.Int64()]
	}
	return string(b), nil
}
