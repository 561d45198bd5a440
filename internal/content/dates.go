// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package content

import "time"

// FormatPublished renders a publish date the way the public site shows it.
// A nil date renders as "draft".
func FormatPublished(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "draft"
	}
	return t.Format("2 January 2006")
}
