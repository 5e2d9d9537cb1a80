package service

import (
	"net/url"
	"strings"

	"sitefix/internal/model"
)

// Outreach links are fire-and-forget deep links handed to the browser; no
// response is expected from either target.

// MailtoLink builds a mail-client deep link for the contact form, addressed
// to the configured contact email.
func MailtoLink(cfg model.SiteConfig, subject, body string) string {
	params := url.Values{}
	if subject != "" {
		params.Set("subject", subject)
	}
	if body != "" {
		params.Set("body", body)
	}
	link := "mailto:" + cfg.ContactEmail
	if encoded := params.Encode(); encoded != "" {
		link += "?" + encoded
	}
	return link
}

// WhatsAppLink builds a chat deep link for the lead-capture widget. The phone
// number is reduced to digits as wa.me requires.
func WhatsAppLink(phone, text string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	link := "https://wa.me/" + digits.String()
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link
}
