// Package dragon computes disk-fill checksums built from the dragon curve.
//
// A seed is grown with the rule a + "0" + reverse(complement(a)) until it covers the
// disk, truncated to the disk length, then folded pairwise (equal pair -> 1, differing
// pair -> 0) until an odd number of bits remains.
package dragon

import (
	"fmt"
	"strings"

	"github.com/aretw0/puzzlebox/pkg/domain"
)

const (
	// Seed is the built-in initial state.
	Seed = "00111101111101000"
	// SmallDisk and LargeDisk are the built-in disk lengths.
	SmallDisk = 272
	LargeDisk = 35651584
	// MaxDiskLength bounds the disk length; the whole disk is held in memory.
	MaxDiskLength = 1 << 30
)

// ParseBits converts a string of '0' and '1' into a slice of 0/1 bytes.
func ParseBits(s string) ([]byte, error) {
	bits := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			bits[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at offset %d", domain.ErrInvalidSeed, s[i], i)
		}
	}
	return bits, nil
}

// FormatBits renders 0/1 bytes as a string of '0' and '1'.
func FormatBits(bits []byte) string {
	var b strings.Builder
	b.Grow(len(bits))
	for _, bit := range bits {
		b.WriteByte('0' + bit)
	}
	return b.String()
}

// Expand grows bits until it holds at least n bits and returns exactly the first n.
// The result is allocated once; bits is not modified.
//
// Each round appends a 0 and the reversed complement of everything written so far.
// Writing stops as soon as n bits exist, since later rounds never change the prefix.
func Expand(bits []byte, n int) []byte {
	if len(bits) >= n {
		out := make([]byte, n)
		copy(out, bits)
		return out
	}
	buf := make([]byte, 0, n)
	buf = append(buf, bits...)
	for len(buf) < n {
		half := len(buf)
		buf = append(buf, 0)
		for i := half - 1; i >= 0 && len(buf) < n; i-- {
			buf = append(buf, 1-buf[i])
		}
	}
	return buf
}

// Reduce folds bits pairwise while the length is even and returns the odd-length
// result. The fold happens in place, so bits is overwritten.
// An empty slice is returned unchanged.
func Reduce(bits []byte) []byte {
	for len(bits) > 0 && len(bits)%2 == 0 {
		half := len(bits) / 2
		for i := 0; i < half; i++ {
			if bits[2*i] == bits[2*i+1] {
				bits[i] = 1
			} else {
				bits[i] = 0
			}
		}
		bits = bits[:half]
	}
	return bits
}

// Checksum fills a disk of length n starting from seed and returns its checksum.
func Checksum(seed string, n int) (string, error) {
	if n <= 0 || n > MaxDiskLength {
		return "", fmt.Errorf("%w: %d not in [1, %d]", domain.ErrInvalidLength, n, MaxDiskLength)
	}
	bits, err := ParseBits(seed)
	if err != nil {
		return "", err
	}
	if len(bits) == 0 {
		return "", fmt.Errorf("%w: empty", domain.ErrInvalidSeed)
	}
	return FormatBits(Reduce(Expand(bits, n))), nil
}
