package application

import (
	"context"
	"sync"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/bnema/coach-cli/internal/remote"
	"go.uber.org/zap"
)

// Reviews holds the reviews of one coach at a time, newest first.
type Reviews struct {
	api    ports.ReviewAPI
	store  *remote.Store[domain.Review, domain.ReviewInput]
	logger *zap.Logger

	mu    sync.Mutex
	scope int64
}

func NewReviews(api ports.ReviewAPI, logger *zap.Logger) *Reviews {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Reviews{
		api: api,
		store: remote.NewStore(remote.Config[domain.Review, domain.ReviewInput]{
			Name:      "reviews",
			Placement: remote.Prepend,
			Messages:  remote.Messages{FetchAll: msgReviewsFetch, Create: msgReviewAdd},
			Logger:    logger,
		}),
		logger: logger.Named("reviews"),
	}
}

// FetchByCoach replaces the collection with coachID's reviews and scopes it to that coach. The
// scope only moves when the list actually lands, so a failed or stale fetch leaves both alone.
func (r *Reviews) FetchByCoach(ctx context.Context, coachID int64) remote.Result[[]domain.Review] {
	fetch := func(ctx context.Context) ([]domain.Review, error) {
		return r.api.ListCoachReviews(ctx, coachID)
	}

	return r.store.Load(ctx, "fetch_by_coach", msgReviewsFetch, fetch, func() {
		r.mu.Lock()
		r.scope = coachID
		r.mu.Unlock()
	})
}

// Add posts a review. The created review joins the collection only when it belongs to the coach
// currently in scope.
func (r *Reviews) Add(ctx context.Context, input domain.ReviewInput) remote.Result[domain.Review] {
	if err := input.Validate(); err != nil {
		return remote.Fail[domain.Review](domain.KindValidation, domain.MessageOf(err, msgReviewAdd), err)
	}

	create := func(ctx context.Context) (domain.Review, error) {
		return r.api.CreateReview(ctx, input)
	}
	keep := func(review domain.Review) bool {
		coachID := review.CoachID
		if coachID == 0 {
			coachID = input.CoachID
		}

		scope := r.Scope()
		if scope != 0 && coachID != scope {
			r.logger.Debug("created review outside current scope", zap.Int64("coach_id", coachID), zap.Int64("scope", scope))
			return false
		}
		return true
	}

	return r.store.Insert(ctx, "create", msgReviewAdd, create, keep)
}

// Scope is the coach whose reviews are loaded, zero before the first fetch.
func (r *Reviews) Scope() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.scope
}

func (r *Reviews) Snapshot() remote.Snapshot[domain.Review] {
	return r.store.Snapshot()
}

func (r *Reviews) ClearError() {
	r.store.ClearError()
}
