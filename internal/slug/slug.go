// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package slug generates and validates URL slugs for posts and categories.
package slug

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxLen bounds generated and accepted slugs. Longer input is cut at a
// hyphen boundary where possible.
const MaxLen = 80

var validSlug = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// latinFold maps common accented Latin letters to ASCII. Anything not
// covered is dropped rather than guessed at.
var latinFold = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a",
	'ç': "c", 'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i", 'ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u", 'ý': "y",
	'ß': "ss", 'æ': "ae", 'ø': "o", 'œ': "oe",
}

// Make derives a slug from a title: lowercase, accents folded to ASCII,
// non-alphanumeric runs collapsed to single hyphens.
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		if folded, ok := latinFold[r]; ok {
			b.WriteString(folded)
			lastHyphen = false
			continue
		}
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case unicode.IsSpace(r), r == '-', r == '_', r == '/', r == '.':
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
		// Everything else (punctuation, emoji, unmapped scripts) is dropped.
	}
	s := strings.Trim(b.String(), "-")
	if len(s) > MaxLen {
		s = s[:MaxLen]
		if i := strings.LastIndexByte(s, '-'); i > 0 {
			s = s[:i]
		}
		s = strings.Trim(s, "-")
	}
	return s
}

// Valid reports whether s is an acceptable slug: non-empty, within MaxLen,
// lowercase alphanumeric segments separated by single hyphens.
func Valid(s string) bool {
	if s == "" || len(s) > MaxLen {
		return false
	}
	return validSlug.MatchString(s)
}
