package repository

import (
	"context"

	apperrors "sitefix/internal/errors"
	"sitefix/internal/model"
	"sitefix/internal/store"
)

// PaymentAccountRepository defines payout destination persistence operations.
type PaymentAccountRepository interface {
	GetAll(ctx context.Context) []model.PaymentAccount
	SaveAll(ctx context.Context, accounts []model.PaymentAccount)
	Add(ctx context.Context, account model.PaymentAccount)
	Update(ctx context.Context, account model.PaymentAccount) error
	Delete(ctx context.Context, id string)
}

type paymentAccountRepository struct {
	store *store.Store
}

// NewPaymentAccountRepository creates a new payment account repository.
func NewPaymentAccountRepository(st *store.Store) PaymentAccountRepository {
	return &paymentAccountRepository{store: st}
}

func (r *paymentAccountRepository) GetAll(ctx context.Context) []model.PaymentAccount {
	return store.Read(ctx, r.store, paymentAccountsKey, model.SeedPaymentAccounts())
}

func (r *paymentAccountRepository) SaveAll(ctx context.Context, accounts []model.PaymentAccount) {
	store.Write(ctx, r.store, paymentAccountsKey, accounts)
}

func (r *paymentAccountRepository) Add(ctx context.Context, account model.PaymentAccount) {
	r.SaveAll(ctx, append(r.GetAll(ctx), account))
}

func (r *paymentAccountRepository) Update(ctx context.Context, account model.PaymentAccount) error {
	accounts := r.GetAll(ctx)
	for i := range accounts {
		if accounts[i].ID == account.ID {
			accounts[i] = account
			r.SaveAll(ctx, accounts)
			return nil
		}
	}
	return apperrors.ErrRecordNotFound
}

func (r *paymentAccountRepository) Delete(ctx context.Context, id string) {
	accounts := r.GetAll(ctx)
	kept := accounts[:0]
	for _, a := range accounts {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	r.SaveAll(ctx, kept)
}
