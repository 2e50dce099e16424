// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/crypto/hkdf"
)

// counterKeyInfo domain-separates the counter key from every other key
// derived from the user key.
const counterKeyInfo = "go-pass-keeper-pending-change-count"

// counterWidth is the size of the sealed plaintext: an int16, big-endian.
const counterWidth = 2

// counterCipher is the private implementation of [CounterCipher].
type counterCipher struct {
	keys UserKeySource
}

// NewCounterCipher returns a [CounterCipher] whose key is derived with
// HKDF-SHA256 from the key supplied by keys on every call, so that locking
// the vault immediately disables it.
func NewCounterCipher(keys UserKeySource) CounterCipher {
	return &counterCipher{keys: keys}
}

// Encrypt implements [CounterCipher].
func (c *counterCipher) Encrypt(count int) ([]byte, error) {
	if count < math.MinInt16 || count > math.MaxInt16 {
		return nil, fmt.Errorf("%w: count %d out of range", ErrInvalidData, count)
	}

	key, err := c.deriveKey()
	if err != nil {
		return nil, err
	}
	defer clear(key)

	plaintext := make([]byte, counterWidth)
	binary.BigEndian.PutUint16(plaintext, uint16(int16(count)))

	return seal(key, plaintext)
}

// Decrypt implements [CounterCipher].
func (c *counterCipher) Decrypt(data []byte) (int, error) {
	key, err := c.deriveKey()
	if err != nil {
		return 0, err
	}
	defer clear(key)

	plaintext, err := open(key, data)
	if err != nil {
		return 0, err
	}
	if len(plaintext) != counterWidth {
		return 0, fmt.Errorf("%w: plaintext length %d, want %d", ErrInvalidData, len(plaintext), counterWidth)
	}

	return int(int16(binary.BigEndian.Uint16(plaintext))), nil
}

func (c *counterCipher) deriveKey() ([]byte, error) {
	source, err := c.keys.UserKey()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}
	if len(source) == 0 {
		return nil, fmt.Errorf("%w: empty user key", ErrInvalidKey)
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, source, nil, []byte(counterKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("derive counter key: %w", err)
	}
	return key, nil
}

// Base64Key is a [UserKeySource] backed by a base64-encoded 256-bit key.
type Base64Key string

// UserKey implements [UserKeySource].
func (k Base64Key) UserKey() ([]byte, error) {
	return decodeKey(string(k))
}
