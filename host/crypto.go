// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package host provides the host-runtime half of the helpers toolbelt.
//
// This file wraps the cryptographic primitives: digest, symmetric
// cipher, key derivation and UUID generation. No key management,
// storage or rotation lives here; key and IV material is supplied by
// the caller and consumed once per call.
package host

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/pbkdf2"
)

// =============================================================================
// CONSTANTS
// =============================================================================

// KeySize is the size of the AES-256 key (32 bytes / 256 bits).
const KeySize = 32

// IVSize is the size of the CBC initialization vector (16 bytes).
const IVSize = aes.BlockSize

// SaltSize is the size of generated key-derivation salts (32 bytes).
const SaltSize = 32

// PBKDF2Iterations is the iteration count for PBKDF2-SHA-256 key
// derivation. OWASP 2023 recommends 600,000+ for adequate resistance
// against brute force on modern hardware.
const PBKDF2Iterations = 600000

// =============================================================================
// ERRORS
// =============================================================================

var (
	// ErrInvalidKeySize indicates the key is not KeySize bytes.
	ErrInvalidKeySize = errors.New("key must be 32 bytes")
	// ErrInvalidIVSize indicates the IV is not IVSize bytes.
	ErrInvalidIVSize = errors.New("iv must be 16 bytes")
	// ErrInvalidPayload indicates the ivHex:ciphertextHex payload is malformed.
	ErrInvalidPayload = errors.New("invalid encrypted payload format")
)

// =============================================================================
// HASHING
// =============================================================================

// Hash digests text with the named algorithm and returns the digest in
// the named encoding.
//
// Algorithms: "md5", "sha1", "sha256", "sha512". Encodings: "hex",
// "base64". An unsupported algorithm or encoding propagates as an
// error.
func Hash(text, algorithm, encoding string) (string, error) {
	var h hash.Hash
	switch strings.ToLower(algorithm) {
	case "md5":
		h = md5.New()
	case "sha1":
		h = sha1.New()
	case "sha256":
		h = sha256.New()
	case "sha512":
		h = sha512.New()
	default:
		return "", fmt.Errorf("unsupported hash algorithm: %s", algorithm)
	}
	h.Write([]byte(text))
	digest := h.Sum(nil)

	switch strings.ToLower(encoding) {
	case "hex":
		return hex.EncodeToString(digest), nil
	case "base64":
		return base64.StdEncoding.EncodeToString(digest), nil
	default:
		return "", fmt.Errorf("unsupported digest encoding: %s", encoding)
	}
}

// =============================================================================
// SYMMETRIC CIPHER
// =============================================================================

// Encrypt encrypts text with AES-256-CBC and PKCS#7 padding.
//
// The wire format is "ivHex:ciphertextHex" - two hex fields joined by a
// colon. It must stay exactly this shape for round-trip compatibility
// with Decrypt and with payloads produced by the sibling
// implementations of this pair.
func Encrypt(text string, key, iv []byte) (string, error) {
	if len(key) != KeySize {
		return "", ErrInvalidKeySize
	}
	if len(iv) != IVSize {
		return "", ErrInvalidIVSize
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	padded := pkcs7Pad([]byte(text), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return hex.EncodeToString(iv) + ":" + hex.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Any failure - malformed payload, wrong key
// size, bad padding - is wrapped with a "decrypt:" prefix.
func Decrypt(payload string, key []byte) (string, error) {
	plaintext, err := decrypt(payload, key)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return plaintext, nil
}

func decrypt(payload string, key []byte) (string, error) {
	if len(key) != KeySize {
		return "", ErrInvalidKeySize
	}
	ivHex, ctHex, found := strings.Cut(payload, ":")
	if !found {
		return "", ErrInvalidPayload
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil || len(iv) != IVSize {
		return "", ErrInvalidPayload
	}
	ciphertext, err := hex.DecodeString(ctHex)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrInvalidPayload
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}
	plaintext := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	unpadded, err := pkcs7Unpad(plaintext, aes.BlockSize)
	if err != nil {
		return "", err
	}
	return string(unpadded), nil
}

// pkcs7Pad appends PKCS#7 padding up to the block size.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padding := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

// pkcs7Unpad strips PKCS#7 padding, validating every padding byte.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	padding := int(data[len(data)-1])
	if padding == 0 || padding > blockSize {
		return nil, errors.New("invalid padding")
	}
	for _, b := range data[len(data)-padding:] {
		if int(b) != padding {
			return nil, errors.New("invalid padding")
		}
	}
	return data[:len(data)-padding], nil
}

// =============================================================================
// KEY MATERIAL
// =============================================================================

// ZeroBytes zeros sensitive byte slices.
// SECURITY: Zero key material to prevent memory disclosure via crash dumps.
func ZeroBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// RandomBytes returns n cryptographically secure random bytes.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return b, nil
}

// GenerateSalt generates a cryptographically secure random salt.
func GenerateSalt() ([]byte, error) {
	return RandomBytes(SaltSize)
}

// DeriveKey derives a KeySize-byte encryption key from a password and
// salt using PBKDF2-SHA-256.
func DeriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, PBKDF2Iterations, KeySize, sha256.New)
}

// =============================================================================
// UUID
// =============================================================================

// NewUUID returns a random (version 4) UUID string.
// This is the generator the aggregated export surface publishes; the
// web catalog's twin loses the name collision.
func NewUUID() string {
	return uuid.NewString()
}
