package ports

import (
	"context"

	"github.com/bnema/coach-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, credentials domain.Credentials) (domain.AuthSession, error)
	Register(ctx context.Context, registration domain.Registration) (domain.AuthSession, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (domain.User, error)
}

type ProfileAPI interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	UpdateProfile(ctx context.Context, update domain.ProfileUpdate) (domain.User, error)
}
