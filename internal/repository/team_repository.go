package repository

import (
	"context"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// TeamRepository defines team bio persistence operations.
type TeamRepository interface {
	GetAll(ctx context.Context) []model.TeamMember
	SaveAll(ctx context.Context, members []model.TeamMember)
	Add(ctx context.Context, member model.TeamMember)
	Update(ctx context.Context, member model.TeamMember) error
	Delete(ctx context.Context, id string)
}

type teamRepository struct {
	store *store.Store
}

// NewTeamRepository creates a new team repository.
func NewTeamRepository(st *store.Store) TeamRepository {
	return &teamRepository{store: st}
}

func (r *teamRepository) GetAll(ctx context.Context) []model.TeamMember {
	return store.Read(ctx, r.store, teamKey, model.SeedTeam())
}

func (r *teamRepository) SaveAll(ctx context.Context, members []model.TeamMember) {
	store.Write(ctx, r.store, teamKey, members)
}

func (r *teamRepository) Add(ctx context.Context, member model.TeamMember) {
	r.SaveAll(ctx, append(r.GetAll(ctx), member))
}

func (r *teamRepository) Update(ctx context.Context, member model.TeamMember) error {
	members := r.GetAll(ctx)
	for i := range members {
		if members[i].ID == member.ID {
			members[i] = member
			r.SaveAll(ctx, members)
			return nil
		}
	}
	return apperrors.ErrRecordNotFound
}

func (r *teamRepository) Delete(ctx context.Context, id string) {
	members := r.GetAll(ctx)
	kept := members[:0]
	for _, m := range members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	r.SaveAll(ctx, kept)
}
