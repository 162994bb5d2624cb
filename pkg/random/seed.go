package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/big"
	"strings"
)

var maxSeed = new(big.Int).Lsh(big.NewInt(1), 128)

// ParseSeed converts a hex seed of up to 128 bits into four state words,
// most significant first.
func ParseSeed(seed string) ([4]uint32, error) {
	var words [4]uint32
	s := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(seed)), "0x")
	if s == "" {
		return words, fmt.Errorf("empty seed")
	}
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return words, fmt.Errorf("invalid seed %q", seed)
	}
	if n.Cmp(maxSeed) >= 0 {
		return words, fmt.Errorf("seed %q exceeds 128 bits", seed)
	}
	var buf [16]byte
	n.FillBytes(buf[:])
	for i := range words {
		words[i] = binary.BigEndian.Uint32(buf[i*4:])
	}
	return words, nil
}

// FormatSeed renders state words as a 32 digit hex string.
func FormatSeed(words [4]uint32) string {
	return fmt.Sprintf("%08x%08x%08x%08x", words[0], words[1], words[2], words[3])
}

// NewSeed generates a random 128-bit seed using crypto/rand.
func NewSeed() (string, error) {
	var b [16]byte
	if _, err := crand.Read(b[:]); err != nil {
		return "", fmt.Errorf("read random seed: %w", err)
	}
	var words [4]uint32
	for i := range words {
		words[i] = binary.BigEndian.Uint32(b[i*4:])
	}
	return FormatSeed(words), nil
}
