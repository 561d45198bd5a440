// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package token inspects stored access tokens without contacting the backend.
// The backend issues JWTs, so expiry can be decided locally from the exp
// claim. No signature verification happens here: the check only gates
// whether a cached session is still worth presenting, the backend remains
// the authority on token validity.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the exp claim of a JWT access token.
// Reports false for opaque tokens and for JWTs without an exp claim.
func ExpiresAt(tok string) (time.Time, bool) {
	parser := jwt.NewParser()
	claims := jwt.RegisteredClaims{}
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Expired reports whether tok carries an exp claim in the past.
// Opaque tokens and tokens without exp are never considered expired locally.
func Expired(tok string, now time.Time) bool {
	exp, ok := ExpiresAt(tok)
	if !ok {
		return false
	}
	return now.After(exp)
}
