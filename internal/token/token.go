// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package token mints and verifies the per-site editor bearer secret.
// The plaintext token is returned exactly once at site creation; only
// the bcrypt hash is persisted, so a token can never be re-displayed.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// byteLength is the entropy of a minted token (32 bytes = 64 hex chars).
const byteLength = 32

// Mint generates a new random editor token and its storage hash.
func Mint() (plaintext, hash string, err error) {
	b := make([]byte, byteLength)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("token mint: %w", err)
	}
	plaintext = hex.EncodeToString(b)

	h, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", "", fmt.Errorf("token hash: %w", err)
	}
	return plaintext, string(h), nil
}

// Verify reports whether the presented plaintext token matches the
// stored hash.
func Verify(hash, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
