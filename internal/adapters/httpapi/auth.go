package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/coach-cli/internal/domain"
)

type sessionResponse struct {
	User        domain.User `json:"user"`
	AccessToken string      `json:"access_token"`
}

func (r sessionResponse) session(op string) (domain.AuthSession, error) {
	if strings.TrimSpace(r.AccessToken) == "" {
		return domain.AuthSession{}, &domain.APIError{
			Kind: domain.KindServerRejected,
			Err:  errors.New(op + " response missing access_token"),
		}
	}

	return domain.AuthSession{User: r.User, Token: r.AccessToken}, nil
}

func (c *Client) Login(ctx context.Context, credentials domain.Credentials) (domain.AuthSession, error) {
	var payload sessionResponse
	if err := c.postJSON(ctx, "/login", credentials, &payload); err != nil {
		return domain.AuthSession{}, fmt.Errorf("login: %w", err)
	}

	return payload.session("login")
}

func (c *Client) Register(ctx context.Context, registration domain.Registration) (domain.AuthSession, error) {
	var payload sessionResponse
	if err := c.postJSON(ctx, "/register", registration, &payload); err != nil {
		return domain.AuthSession{}, fmt.Errorf("register: %w", err)
	}

	return payload.session("register")
}

func (c *Client) Logout(ctx context.Context) error {
	if err := c.postJSON(ctx, "/logout", nil, nil); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	return nil
}

func (c *Client) CurrentUser(ctx context.Context) (domain.User, error) {
	var user domain.User
	if err := c.getJSON(ctx, "/me", &user); err != nil {
		return domain.User{}, fmt.Errorf("current user: %w", err)
	}

	return user, nil
}
