package model

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns a collision-resistant record identifier.
func NewID() string {
	return uuid.NewString()
}

// NewTicket returns a human-readable order ticket code like "SF-3FA85F64".
func NewTicket() string {
	compact := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "SF-" + strings.ToUpper(compact[:8])
}

// Slugify derives a URL slug from a title. Uniqueness is not enforced.
func Slugify(title string) string {
	var b strings.Builder
	lastDash := true // suppress a leading dash
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
