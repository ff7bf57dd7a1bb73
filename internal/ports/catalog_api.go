package ports

import (
	"context"

	"github.com/bnema/coach-cli/internal/domain"
)

type CatalogAPI interface {
	ListCoaches(ctx context.Context) ([]domain.Coach, error)
	GetCoach(ctx context.Context, id int64) (domain.Coach, error)
	ListResources(ctx context.Context) ([]domain.Resource, error)
	GetResource(ctx context.Context, id int64) (domain.Resource, error)
	ListPlans(ctx context.Context) ([]domain.Plan, error)
	GetPlan(ctx context.Context, id int64) (domain.Plan, error)
}

type ReviewAPI interface {
	ListCoachReviews(ctx context.Context, coachID int64) ([]domain.Review, error)
	CreateReview(ctx context.Context, input domain.ReviewInput) (domain.Review, error)
}
