package application

import (
	"context"
	"fmt"

	"github.com/bnema/coach-cli/internal/ports"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Backend is everything the application needs from the coaching API.
type Backend interface {
	ports.AuthAPI
	ports.ProfileAPI
	ports.CatalogAPI
	ports.ReviewAPI
	ports.MeetingAPI
}

// State is the composed client state, built once per process.
type State struct {
	Auth     *AuthService
	Catalog  *Catalog
	Reviews  *Reviews
	Sessions *Scheduler
	Profile  *Profiles

	logger *zap.Logger
}

func NewState(api Backend, tokens ports.SecretStore, opener ports.URLOpener, clock ports.Clock, logger *zap.Logger) *State {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &State{
		Auth:     NewAuthService(api, tokens, clock, logger),
		Catalog:  NewCatalog(api, logger),
		Reviews:  NewReviews(api, logger),
		Sessions: NewScheduler(api, opener, clock, logger),
		Profile:  NewProfiles(api, logger),
		logger:   logger,
	}
}

// Refresh loads coaches, plans and resources in parallel. A failure does not cancel the other
// fetches; each store keeps its own outcome and the first error is returned.
func (s *State) Refresh(ctx context.Context) error {
	var g errgroup.Group

	g.Go(func() error {
		return s.Catalog.Coaches.FetchAll(ctx).Err
	})
	g.Go(func() error {
		return s.Catalog.Plans.FetchAll(ctx).Err
	})
	g.Go(func() error {
		return s.Catalog.Resources.FetchAll(ctx).Err
	})

	if err := g.Wait(); err != nil {
		s.logger.Warn("dashboard refresh incomplete", zap.Error(err))
		return fmt.Errorf("refresh dashboard: %w", err)
	}

	return nil
}
