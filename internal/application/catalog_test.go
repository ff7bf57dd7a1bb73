package application

import (
	"context"
	"testing"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports/mocks"
	"github.com/bnema/coach-cli/internal/remote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPlansFetchAllKeepsServerOrder(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	catalog := NewCatalog(api, nil)

	plans := []domain.Plan{{ID: 3, Titre: "Reprise"}, {ID: 1, Titre: "Sommeil"}, {ID: 2, Titre: "Stress"}}
	api.EXPECT().ListPlans(mockAnyContext()).Return(plans, nil).Once()

	res := catalog.Plans.FetchAll(context.Background())
	require.True(t, res.OK())

	snapshot := catalog.Plans.Snapshot()
	assert.Equal(t, plans, snapshot.Items)
	assert.Equal(t, remote.StatusSucceeded, snapshot.Status)
}

func TestCatalogFailuresUseFrenchFallbacks(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	catalog := NewCatalog(api, nil)

	serverDown := &domain.APIError{Kind: domain.KindServerRejected, StatusCode: 500}
	api.EXPECT().ListCoaches(mockAnyContext()).Return(nil, serverDown).Once()
	api.EXPECT().GetResource(mockAnyContext(), int64(4)).Return(domain.Resource{}, &domain.APIError{Kind: domain.KindNotFound, StatusCode: 404}).Once()
	api.EXPECT().GetPlan(mockAnyContext(), int64(9)).Return(domain.Plan{}, serverDown).Once()

	assert.Equal(t, "Erreur lors de la récupération des coachs", catalog.Coaches.FetchAll(context.Background()).Message)
	assert.Equal(t, "Erreur lors de la récupération de la ressource", catalog.Resources.FetchByID(context.Background(), 4).Message)
	assert.Equal(t, "Erreur lors de la récupération du plan", catalog.Plans.FetchByID(context.Background(), 9).Message)
	assert.Equal(t, domain.KindNotFound, catalog.Resources.Snapshot().ErrKind)
}

func TestCatalogFetchByIDSelectsWithoutTouchingList(t *testing.T) {
	api := mocks.NewMockCatalogAPI(t)
	catalog := NewCatalog(api, nil)

	api.EXPECT().ListCoaches(mockAnyContext()).Return([]domain.Coach{{ID: 1}, {ID: 2}}, nil).Once()
	api.EXPECT().GetCoach(mockAnyContext(), int64(2)).Return(domain.Coach{ID: 2, Nom: "Bernard", Bio: "Coach certifiée"}, nil).Once()

	require.True(t, catalog.Coaches.FetchAll(context.Background()).OK())
	require.True(t, catalog.Coaches.FetchByID(context.Background(), 2).OK())

	snapshot := catalog.Coaches.Snapshot()
	assert.Len(t, snapshot.Items, 2)
	require.NotNil(t, snapshot.Selected)
	assert.Equal(t, "Coach certifiée", snapshot.Selected.Bio)
}
