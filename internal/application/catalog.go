package application

import (
	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/bnema/coach-cli/internal/remote"
	"go.uber.org/zap"
)

// Catalog holds the read-only collections: coaches, resources and plans.
type Catalog struct {
	Coaches   *remote.Store[domain.Coach, remote.NoInput]
	Resources *remote.Store[domain.Resource, remote.NoInput]
	Plans     *remote.Store[domain.Plan, remote.NoInput]
}

func NewCatalog(api ports.CatalogAPI, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Catalog{
		Coaches: remote.NewStore(remote.Config[domain.Coach, remote.NoInput]{
			Name:     "coaches",
			List:     api.ListCoaches,
			Get:      api.GetCoach,
			Messages: remote.Messages{FetchAll: msgCoachesFetch, FetchByID: msgCoachFetch},
			Logger:   logger,
		}),
		Resources: remote.NewStore(remote.Config[domain.Resource, remote.NoInput]{
			Name:     "resources",
			List:     api.ListResources,
			Get:      api.GetResource,
			Messages: remote.Messages{FetchAll: msgResourcesFetch, FetchByID: msgResourceFetch},
			Logger:   logger,
		}),
		Plans: remote.NewStore(remote.Config[domain.Plan, remote.NoInput]{
			Name:     "plans",
			List:     api.ListPlans,
			Get:      api.GetPlan,
			Messages: remote.Messages{FetchAll: msgPlansFetch, FetchByID: msgPlanFetch},
			Logger:   logger,
		}),
	}
}
