package listing

import (
	"testing"
	"time"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCoaches(t *testing.T) {
	output, err := Coaches([]domain.Coach{
		{ID: 1, Nom: "Durand", Prenom: "Claire", Rating: 4.4, CoursCount: 12, Specialites: []string{"Stress", "Sommeil"}},
		{ID: 2, Nom: "Petit", Prenom: "Marc", Rating: 3, CoursCount: 1},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "coachs: 2")
	assert.Contains(t, output, "Claire Durand (#1)")
	assert.Contains(t, output, "★★★★☆")
	assert.Contains(t, output, "4.4/5")
	assert.Contains(t, output, "12 cours")
	assert.Contains(t, output, "Stress · Sommeil")
	assert.Contains(t, output, "Marc Petit (#2)")
}

func TestRenderCoachesEmpty(t *testing.T) {
	output, err := Coaches(nil)

	require.NoError(t, err)
	assert.Contains(t, output, "coachs: 0")
	assert.Contains(t, output, "Aucun coach disponible.")
}

func TestRenderCoachWithReviews(t *testing.T) {
	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

	output, err := Coach(
		domain.Coach{ID: 3, Nom: "Durand", Prenom: "Claire", Email: "claire@example.com", Bio: "Coach certifiée.", Rating: 5},
		[]domain.Review{
			{ID: 1, CoachID: 3, Rating: 4, Description: "Très à l'écoute", CreatedAt: created, User: &domain.User{Nom: "Martin", Prenom: "Léa"}},
			{ID: 2, CoachID: 3, Rating: 2, Description: "Séance trop courte"},
		},
	)

	require.NoError(t, err)
	assert.Contains(t, output, "Claire Durand (#3)")
	assert.Contains(t, output, "claire@example.com")
	assert.Contains(t, output, "Coach certifiée.")
	assert.Contains(t, output, "avis: 2")
	assert.Contains(t, output, "Léa Martin")
	assert.Contains(t, output, "10/02/2026")
	assert.Contains(t, output, "Très à l'écoute")
	assert.Contains(t, output, "Anonyme")
}

func TestRenderResources(t *testing.T) {
	price := 9.5

	output, err := Resources([]domain.Resource{
		{ID: 4, Titre: "Méditation guidée", Type: domain.ResourceAudio},
		{ID: 5, Titre: "Carnet de suivi", Type: domain.ResourcePDF, Prix: &price, EstPremium: true},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "ressources: 2")
	assert.Contains(t, output, "[Audio]")
	assert.Contains(t, output, "Méditation guidée")
	assert.Contains(t, output, "Gratuit")
	assert.Contains(t, output, "[PDF]")
	assert.Contains(t, output, "9.50 €")
	assert.Contains(t, output, "premium")
}

func TestRenderPlanDetail(t *testing.T) {
	output, err := Plan(domain.Plan{
		ID:          2,
		Titre:       "Gestion du stress",
		Description: "Huit semaines pour retrouver le calme.",
		Prix:        149,
		Duree:       8,
		Ressources:  []domain.Resource{{ID: 9, Titre: "Respiration", Type: domain.ResourceVideo}},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Gestion du stress (#2)")
	assert.Contains(t, output, "149.00 €")
	assert.Contains(t, output, "8 semaines")
	assert.Contains(t, output, "Huit semaines pour retrouver le calme.")
	assert.Contains(t, output, "[Vidéo]")
	assert.Contains(t, output, "Respiration")
}

func TestRenderSessionsRelativeToNow(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Sessions([]domain.Session{
		{ID: 1, Topic: "Bilan mensuel", StartTime: now.Add(13 * time.Hour), Duration: 45, Status: domain.SessionScheduled},
		{ID: 2, Topic: "Point d'étape", StartTime: now.Add(4 * 24 * time.Hour), Duration: 60, Status: domain.SessionScheduled},
		{ID: 3, Topic: "Première séance", StartTime: now.Add(-2 * time.Hour), Duration: 30, Status: domain.SessionFinished},
	}, Options{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "séances: 3")
	assert.Contains(t, output, "Bilan mensuel")
	assert.Contains(t, output, "[Programmée]")
	assert.Contains(t, output, "45 min, dans 13 heures (00:00)")
	assert.Contains(t, output, "60 min, dans 4 jours (18/02 à 11:00)")
	assert.Contains(t, output, "[Terminée]")
	assert.Contains(t, output, "30 min, le 14/02 à 09:00")
}

func TestRenderSessionsWithoutNowUsesAbsoluteDate(t *testing.T) {
	output, err := Sessions([]domain.Session{
		{ID: 1, Topic: "Bilan mensuel", StartTime: time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC), Duration: 30},
	}, Options{})

	require.NoError(t, err)
	assert.Contains(t, output, "01/03/2026 10:30")
}

func TestRenderProfile(t *testing.T) {
	output, err := Profile(domain.User{
		Nom: "Martin", Prenom: "Léa", Email: "lea@example.com", Telephone: "0600000000", Role: domain.RoleCoachee,
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Léa Martin")
	assert.Contains(t, output, "Coaché")
	assert.Contains(t, output, "lea@example.com")
	assert.Contains(t, output, "0600000000")
	assert.NotContains(t, output, "adresse")
}

func TestRenderAuthStatus(t *testing.T) {
	output, err := AuthStatus(domain.AuthAuthenticated, &domain.User{Nom: "Martin", Prenom: "Léa", Email: "lea@example.com"}, "")
	require.NoError(t, err)
	assert.Contains(t, output, "Connecté en tant que")
	assert.Contains(t, output, "Léa Martin")
	assert.Contains(t, output, "<lea@example.com>")

	output, err = AuthStatus(domain.AuthError, nil, "Identifiants incorrects")
	require.NoError(t, err)
	assert.Contains(t, output, "Erreur d'authentification")
	assert.Contains(t, output, "Identifiants incorrects")

	output, err = AuthStatus(domain.AuthAnonymous, nil, "")
	require.NoError(t, err)
	assert.Contains(t, output, "Non connecté.")
}

func TestRenderDashboardLimitsPreviews(t *testing.T) {
	coaches := make([]domain.Coach, 0, 5)
	for i := int64(1); i <= 5; i++ {
		coaches = append(coaches, domain.Coach{ID: i, Nom: "Coach", Prenom: string(rune('A' + i))})
	}

	output, err := RenderDashboard(Dashboard{
		User:    &domain.User{Prenom: "Léa"},
		Coaches: coaches,
		Plans:   []domain.Plan{{ID: 1, Titre: "Sommeil", Duree: 1}},
		Errors:  []string{"Impossible de charger les ressources"},
	}, Options{})

	require.NoError(t, err)
	assert.Contains(t, output, "Bonjour Léa")
	assert.Contains(t, output, "Impossible de charger les ressources")
	assert.Contains(t, output, "(#3)")
	assert.NotContains(t, output, "(#4)")
	assert.Contains(t, output, "1 semaine")
	assert.Contains(t, output, "Aucune ressource disponible.")
	assert.NotContains(t, output, "Séances")
}
