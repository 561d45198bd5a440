// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package slug

import (
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Annual Charity Gala",
			want:  "annual-charity-gala",
		},
		{
			name:  "punctuation dropped",
			title: "Hope, Faith & Love!",
			want:  "hope-faith-love",
		},
		{
			name:  "accents folded",
			title: "Misión de Caridad",
			want:  "mision-de-caridad",
		},
		{
			name:  "whitespace runs collapse",
			title: "  Winter   Appeal  2025 ",
			want:  "winter-appeal-2025",
		},
		{
			name:  "underscores and slashes become hyphens",
			title: "press_kit/2025",
			want:  "press-kit-2025",
		},
		{
			name:  "already a slug",
			title: "food-bank-report",
			want:  "food-bank-report",
		},
		{
			name:  "empty input",
			title: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			title: "!!!",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.title); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestMakeTruncatesAtHyphen(t *testing.T) {
	title := strings.Repeat("word ", 40) // far beyond MaxLen once hyphenated
	got := Make(title)
	if len(got) > MaxLen {
		t.Errorf("len(Make()) = %d, want <= %d", len(got), MaxLen)
	}
	if strings.HasSuffix(got, "-") || strings.HasPrefix(got, "-") {
		t.Errorf("Make() = %q, has dangling hyphen", got)
	}
	if !Valid(got) {
		t.Errorf("Make() produced invalid slug %q", got)
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{name: "simple", s: "annual-report", want: true},
		{name: "single segment", s: "news", want: true},
		{name: "digits", s: "gala-2025", want: true},
		{name: "empty", s: "", want: false},
		{name: "uppercase", s: "Annual-Report", want: false},
		{name: "double hyphen", s: "a--b", want: false},
		{name: "leading hyphen", s: "-abc", want: false},
		{name: "trailing hyphen", s: "abc-", want: false},
		{name: "space", s: "a b", want: false},
		{name: "too long", s: strings.Repeat("a", MaxLen+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.s); got != tt.want {
				t.Errorf("Valid(%q) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestMakeProducesValidSlugs(t *testing.T) {
	for _, title := range []string{
		"Annual Charity Gala",
		"Misión de Caridad",
		"Hope, Faith & Love!",
		"100% for the children",
	} {
		s := Make(title)
		if s == "" {
			t.Errorf("Make(%q) produced empty slug", title)
			continue
		}
		if !Valid(s) {
			t.Errorf("Make(%q) = %q fails Valid", title, s)
		}
	}
}
