// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package content

import (
	"testing"
	"time"
)

func TestFormatPublished(t *testing.T) {
	ts := time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)

	if got := FormatPublished(&ts); got != "7 March 2025" {
		t.Errorf("FormatPublished(%v) = %q, want %q", ts, got, "7 March 2025")
	}
	if got := FormatPublished(nil); got != "draft" {
		t.Errorf("FormatPublished(nil) = %q, want %q", got, "draft")
	}
}
