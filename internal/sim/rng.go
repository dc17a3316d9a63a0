package sim

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource picks pin counts.
type RandomSource interface {
	IntN(n int) int // [0, n)
}

// cryptoRNG is used when no seed is given.
type cryptoRNG struct{}

func (cryptoRNG) IntN(n int) int {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// no entropy available; the game still needs a roll
		return rand.IntN(n)
	}
	return int(binary.BigEndian.Uint64(buf[:]) % uint64(n))
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// seededRNG replays the same games for the same seed.
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) IntN(n int) int { return s.r.IntN(n) }
