package httpapi

import (
	"context"
	"fmt"

	"github.com/bnema/coach-cli/internal/domain"
)

func (c *Client) ListCoachReviews(ctx context.Context, coachID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	if err := c.getJSON(ctx, fmt.Sprintf("/coaches/%d/reviews", coachID), &reviews); err != nil {
		return nil, fmt.Errorf("list reviews of coach %d: %w", coachID, err)
	}

	return reviews, nil
}

func (c *Client) CreateReview(ctx context.Context, input domain.ReviewInput) (domain.Review, error) {
	var review domain.Review
	if err := c.postJSON(ctx, fmt.Sprintf("/coaches/%d/reviews", input.CoachID), input, &review); err != nil {
		return domain.Review{}, fmt.Errorf("create review for coach %d: %w", input.CoachID, err)
	}

	return review, nil
}
