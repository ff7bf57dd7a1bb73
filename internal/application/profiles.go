package application

import (
	"context"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/bnema/coach-cli/internal/remote"
	"go.uber.org/zap"
)

// Profiles keeps the signed-in user's profile in the store selection.
type Profiles struct {
	api   ports.ProfileAPI
	store *remote.Store[domain.User, domain.ProfileUpdate]
}

func NewProfiles(api ports.ProfileAPI, logger *zap.Logger) *Profiles {
	return &Profiles{
		api: api,
		store: remote.NewStore(remote.Config[domain.User, domain.ProfileUpdate]{
			Name:   "profile",
			Logger: logger,
		}),
	}
}

func (p *Profiles) Fetch(ctx context.Context) remote.Result[domain.User] {
	return p.store.Select(ctx, "fetch", msgProfileFetch, p.api.CurrentUser)
}

// Update sends the non-empty fields and the optional photo. The response replaces the selection.
func (p *Profiles) Update(ctx context.Context, update domain.ProfileUpdate) remote.Result[domain.User] {
	if update.IsEmpty() {
		err := &domain.ValidationError{Fields: []domain.FieldError{{Field: "profile", Message: "nothing to update"}}}
		return remote.Fail[domain.User](domain.KindValidation, err.Error(), err)
	}

	return p.store.Select(ctx, "update", msgProfileUpdate, func(ctx context.Context) (domain.User, error) {
		return p.api.UpdateProfile(ctx, update)
	})
}

func (p *Profiles) Snapshot() remote.Snapshot[domain.User] {
	return p.store.Snapshot()
}

func (p *Profiles) ClearError() {
	p.store.ClearError()
}
