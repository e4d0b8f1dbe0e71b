package random

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Random is a source of randomness, injectable for tests
type Random interface {
	// Intn returns a uniform value in [0, n)
	Intn(n int) int
	// Die returns a uniform value in [1, sides]
	Die(sides int) int
	// String returns a random string of the given length drawn from alphabet
	String(length int, alphabet string) string
}

// CryptoRandom backs Random with crypto/rand so dice and room codes are not
// predictable from observed values
type CryptoRandom struct{}

func NewCryptoRandom() *CryptoRandom {
	return &CryptoRandom{}
}

func (r *CryptoRandom) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

func (r *CryptoRandom) Die(sides int) int {
	return r.Intn(sides) + 1
}

func (r *CryptoRandom) String(length int, alphabet string) string {
	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[r.Intn(len(alphabet))]
	}
	return string(out)
}
