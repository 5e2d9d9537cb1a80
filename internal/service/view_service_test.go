package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitefix/internal/model"
)

func TestResolveView(t *testing.T) {
	admin := &model.User{ID: "u-admin", Role: model.RoleAdmin}
	client := &model.User{ID: "u-demo", Role: model.RoleUser}
	pages := []model.Page{
		{ID: "pg-1", Slug: "faq", Status: model.ContentStatusPublished},
		{ID: "pg-2", Slug: "pricing-notes", Status: model.ContentStatusDraft},
		{ID: "pg-3", Slug: "seo", Status: model.ContentStatusPublished},
	}

	tests := []struct {
		name     string
		path     string
		sess     *model.User
		expected Resolution
	}{
		{name: "empty path is landing", path: "/", expected: Resolution{View: ViewLanding}},
		{name: "admin with admin session", path: "/admin", sess: admin, expected: Resolution{View: ViewAdmin}},
		{name: "admin gated for client", path: "/admin", sess: client, expected: Resolution{View: ViewLanding}},
		{name: "admin gated for anonymous", path: "/admin", expected: Resolution{View: ViewLanding}},
		{name: "dashboard with session", path: "/dashboard", sess: client, expected: Resolution{View: ViewDashboard}},
		{name: "dashboard gated for anonymous", path: "/dashboard", expected: Resolution{View: ViewLanding}},
		{name: "shop", path: "/shop", expected: Resolution{View: ViewShop}},
		{name: "tools", path: "/tools", expected: Resolution{View: ViewTools}},
		{name: "team", path: "/team", expected: Resolution{View: ViewTeam}},
		{name: "blog index", path: "/blog", expected: Resolution{View: ViewBlog}},
		{name: "blog post sub-route", path: "/blog/post-launch-checklist", expected: Resolution{View: ViewBlogPost, Param: "post-launch-checklist"}},
		{name: "service page from catalog", path: "/web-design", expected: Resolution{View: ViewService, Param: "web-design"}},
		{name: "catalog id wins over a page slug", path: "/seo", expected: Resolution{View: ViewService, Param: "seo"}},
		{name: "checkout", path: "/order", expected: Resolution{View: ViewOrder}},
		{name: "legal privacy", path: "/privacy", expected: Resolution{View: ViewPrivacy}},
		{name: "legal terms", path: "/terms", expected: Resolution{View: ViewTerms}},
		{name: "published custom page", path: "/faq", expected: Resolution{View: ViewPage, Param: "faq"}},
		{name: "draft custom page falls to landing", path: "/pricing-notes", expected: Resolution{View: ViewLanding}},
		{name: "unknown path falls to landing", path: "/no-such-thing", expected: Resolution{View: ViewLanding}},
		{name: "trailing slash ignored", path: "/shop/", expected: Resolution{View: ViewShop}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveView(tt.path, tt.sess, pages))
		})
	}
}

func TestCatalogLookup(t *testing.T) {
	assert.NotEmpty(t, Catalog())
	assert.NotNil(t, FindService("web-design"))
	assert.Nil(t, FindService("time-travel"))
}
