package service

import (
	"strings"

	"sitefix/internal/model"
)

// View is a named screen selected from a path segment. It is a client-side
// selection key, not a network route.
type View string

const (
	ViewAdmin     View = "admin"
	ViewDashboard View = "dashboard"
	ViewShop      View = "shop"
	ViewTools     View = "tools"
	ViewTeam      View = "team"
	ViewBlog      View = "blog"
	ViewBlogPost  View = "blog-post"
	ViewService   View = "service"
	ViewOrder     View = "order"
	ViewPrivacy   View = "privacy"
	ViewTerms     View = "terms"
	ViewPage      View = "page"
	ViewLanding   View = "landing"
)

// Resolution is the outcome of resolving a path: the view plus an optional
// parameter (post id, service id, or page slug).
type Resolution struct {
	View  View   `json:"view"`
	Param string `json:"param,omitempty"`
}

// ResolveView maps a path to a view, first match wins: admin (role-gated),
// dashboard (session-gated), fixed site sections, blog post sub-route,
// dynamic service page, checkout, legal pages, then published custom-page
// slugs. Anything else, including draft pages and failed gates, falls
// through to the landing view; there is no 404 state.
func ResolveView(path string, sess *model.User, pages []model.Page) Resolution {
	segments := splitPath(path)
	if len(segments) == 0 {
		return Resolution{View: ViewLanding}
	}

	switch segments[0] {
	case "admin":
		if sess != nil && sess.Role == model.RoleAdmin {
			return Resolution{View: ViewAdmin}
		}
		return Resolution{View: ViewLanding}
	case "dashboard":
		if sess != nil {
			return Resolution{View: ViewDashboard}
		}
		return Resolution{View: ViewLanding}
	case "shop":
		return Resolution{View: ViewShop}
	case "tools":
		return Resolution{View: ViewTools}
	case "team":
		return Resolution{View: ViewTeam}
	case "blog":
		if len(segments) > 1 {
			return Resolution{View: ViewBlogPost, Param: segments[1]}
		}
		return Resolution{View: ViewBlog}
	}

	if svc := FindService(segments[0]); svc != nil {
		return Resolution{View: ViewService, Param: svc.ID}
	}

	switch segments[0] {
	case "order":
		return Resolution{View: ViewOrder}
	case "privacy":
		return Resolution{View: ViewPrivacy}
	case "terms":
		return Resolution{View: ViewTerms}
	}

	for _, p := range pages {
		if p.Slug == segments[0] && p.Status == model.ContentStatusPublished {
			return Resolution{View: ViewPage, Param: p.Slug}
		}
	}

	return Resolution{View: ViewLanding}
}

func splitPath(path string) []string {
	var out []string
	for _, seg := range strings.Split(path, "/") {
		if seg != "" {
			out = append(out, seg)
		}
	}
	return out
}
