package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTicket(t *testing.T) {
	a := NewTicket()
	b := NewTicket()

	assert.True(t, strings.HasPrefix(a, "SF-"))
	assert.Len(t, a, 11)
	assert.NotEqual(t, a, b)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{title: "Frequently Asked Questions", expected: "frequently-asked-questions"},
		{title: "  FAQ  ", expected: "faq"},
		{title: "Pricing & Plans 2024", expected: "pricing-plans-2024"},
		{title: "---", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.title))
		})
	}
}
