package httpapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bnema/coach-cli/internal/domain"
)

func (c *Client) ListCoaches(ctx context.Context) ([]domain.Coach, error) {
	var coaches []domain.Coach
	if err := c.getJSON(ctx, "/coaches", &coaches); err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}

	return coaches, nil
}

func (c *Client) GetCoach(ctx context.Context, id int64) (domain.Coach, error) {
	var coach domain.Coach
	if err := c.getJSON(ctx, "/coaches/"+strconv.FormatInt(id, 10), &coach); err != nil {
		return domain.Coach{}, fmt.Errorf("get coach %d: %w", id, err)
	}

	return coach, nil
}

func (c *Client) ListResources(ctx context.Context) ([]domain.Resource, error) {
	var resources []domain.Resource
	if err := c.getJSON(ctx, "/resources", &resources); err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	return resources, nil
}

func (c *Client) GetResource(ctx context.Context, id int64) (domain.Resource, error) {
	var resource domain.Resource
	if err := c.getJSON(ctx, "/resources/"+strconv.FormatInt(id, 10), &resource); err != nil {
		return domain.Resource{}, fmt.Errorf("get resource %d: %w", id, err)
	}

	return resource, nil
}

func (c *Client) ListPlans(ctx context.Context) ([]domain.Plan, error) {
	var plans []domain.Plan
	if err := c.getJSON(ctx, "/plans", &plans); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plans, nil
}

func (c *Client) GetPlan(ctx context.Context, id int64) (domain.Plan, error) {
	var plan domain.Plan
	if err := c.getJSON(ctx, "/plans/"+strconv.FormatInt(id, 10), &plan); err != nil {
		return domain.Plan{}, fmt.Errorf("get plan %d: %w", id, err)
	}

	return plan, nil
}
