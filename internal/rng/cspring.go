// internal/rng/csprng.go
package rng

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"sync"
)

// Source yields uniform random words. Both the entropy-keyed and the
// seed-keyed generator satisfy it, so the sampler never knows which kind
// of run it is serving.
type Source interface {
	Uint64() (uint64, error)
}

// CSPRNG uses AES-CTR under the hood, keyed either from crypto/rand
// (production draws) or from a caller-supplied seed (audited draws).
type CSPRNG struct {
	mu     sync.Mutex
	stream cipher.Stream
}

// NewCSPRNG initializes an AES-CTR generator seeded from crypto/rand.
func NewCSPRNG() (*CSPRNG, error) {
	key := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("rng: failed to get seed from crypto/rand: %w", err)
	}

	var iv [16]byte
	if _, err := io.ReadFull(rand.Reader, iv[:]); err != nil {
		return nil, fmt.Errorf("rng: failed to get IV from crypto/rand: %w", err)
	}

	return newFromKeyIV(key, iv)
}

// NewSeededCSPRNG derives the AES key and counter from seed, so the same
// seed always replays the same keystream. Used for reproducible draws.
func NewSeededCSPRNG(seed int64) *CSPRNG {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(seed))

	key := sha256.Sum256(buf[:])
	ivFull := sha256.Sum256(key[:])
	var iv [16]byte
	copy(iv[:], ivFull[:16])

	c, err := newFromKeyIV(key[:], iv)
	if err != nil {
		// aes.NewCipher only fails on a bad key length; 32 bytes is fixed here.
		panic("rng: seeded AES-CTR init failed: " + err.Error())
	}
	return c
}

func newFromKeyIV(key []byte, iv [16]byte) (*CSPRNG, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("rng: aes.NewCipher failed: %w", err)
	}
	return &CSPRNG{stream: cipher.NewCTR(block, iv[:])}, nil
}

// Read fills buf with random bytes (AES-CTR keystream).
func (c *CSPRNG) Read(buf []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(buf) // buf must be zero so the XOR leaves pure keystream
	c.stream.XORKeyStream(buf, buf)
	return len(buf), nil
}

// Uint64 returns a single 64-bit random word.
func (c *CSPRNG) Uint64() (uint64, error) {
	var b [8]byte
	if _, err := c.Read(b[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[:]), nil
}
