package service

import (
	"context"

	"sitefix/internal/model"
	"sitefix/internal/repository"
)

// Snapshot is the full application state handed to a screen: every collection
// re-read from the store, with no caching between loads. Reload-on-navigation
// is the system's only consistency mechanism.
type Snapshot struct {
	Users    []model.User       `json:"users"`
	Orders   []model.Order      `json:"orders"`
	Products []model.Product    `json:"products"`
	Posts    []model.Post       `json:"posts"`
	Pages    []model.Page       `json:"pages"`
	Team     []model.TeamMember `json:"team"`
	Config   model.SiteConfig   `json:"config"`
	Services []AgencyService    `json:"services"`
}

// SnapshotService loads all repositories unconditionally.
type SnapshotService interface {
	Load(ctx context.Context) *Snapshot
}

type snapshotService struct {
	users    repository.UserRepository
	orders   repository.OrderRepository
	products repository.ProductRepository
	posts    repository.PostRepository
	pages    repository.PageRepository
	team     repository.TeamRepository
	config   repository.ConfigRepository
}

// NewSnapshotService creates a new snapshot service over all repositories.
func NewSnapshotService(
	users repository.UserRepository,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	posts repository.PostRepository,
	pages repository.PageRepository,
	team repository.TeamRepository,
	config repository.ConfigRepository,
) SnapshotService {
	return &snapshotService{
		users:    users,
		orders:   orders,
		products: products,
		posts:    posts,
		pages:    pages,
		team:     team,
		config:   config,
	}
}

// Load re-fetches every collection and returns a fresh snapshot.
func (s *snapshotService) Load(ctx context.Context) *Snapshot {
	return &Snapshot{
		Users:    s.users.GetAll(ctx),
		Orders:   s.orders.GetAll(ctx),
		Products: s.products.GetAll(ctx),
		Posts:    s.posts.GetAll(ctx),
		Pages:    s.pages.GetAll(ctx),
		Team:     s.team.GetAll(ctx),
		Config:   s.config.Get(ctx),
		Services: Catalog(),
	}
}
