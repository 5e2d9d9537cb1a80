package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitefix/internal/model"
)

func TestMailtoLink(t *testing.T) {
	cfg := model.SiteConfig{ContactEmail: "hello@sitefix.com"}

	link := MailtoLink(cfg, "Project inquiry", "I need a new site")
	assert.Contains(t, link, "mailto:hello@sitefix.com?")
	assert.Contains(t, link, "subject=Project+inquiry")
	assert.Contains(t, link, "body=I+need+a+new+site")

	assert.Equal(t, "mailto:hello@sitefix.com", MailtoLink(cfg, "", ""))
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("+1 555 010 7788", "Hi there")
	assert.Equal(t, "https://wa.me/15550107788?text=Hi+there", link)

	assert.Equal(t, "https://wa.me/15550107788", WhatsAppLink("+1 555 010 7788", ""))
}
