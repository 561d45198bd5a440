// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.RegisteredClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		tok  string
		want bool
	}{
		{
			name: "future exp",
			tok: signedToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			}),
			want: false,
		},
		{
			name: "past exp",
			tok: signedToken(t, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			}),
			want: true,
		},
		{
			name: "no exp claim",
			tok:  signedToken(t, jwt.RegisteredClaims{Subject: "admin"}),
			want: false,
		},
		{
			name: "opaque token",
			tok:  "not-a-jwt",
			want: false,
		},
		{
			name: "empty token",
			tok:  "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Expired(tt.tok, now); got != tt.want {
				t.Errorf("Expired() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExpiresAt(t *testing.T) {
	exp := time.Date(2025, 12, 24, 18, 0, 0, 0, time.UTC)
	tok := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})

	got, ok := ExpiresAt(tok)
	if !ok {
		t.Fatal("ExpiresAt reported no exp claim")
	}
	if !got.Equal(exp) {
		t.Errorf("ExpiresAt = %v, want %v", got, exp)
	}

	if _, ok := ExpiresAt("opaque"); ok {
		t.Error("ExpiresAt on opaque token reported a claim")
	}
}
