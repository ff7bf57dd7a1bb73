package listing

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type Options struct {
	Now time.Time
}

// Dashboard is the signed-in home screen: who is connected plus the three catalog lists.
type Dashboard struct {
	User      *domain.User
	Coaches   []domain.Coach
	Plans     []domain.Plan
	Resources []domain.Resource
	Sessions  []domain.Session
	Errors    []string
}

const dashboardPreview = 3

func Coaches(coaches []domain.Coach) (string, error) {
	return run(func(s styles) string {
		return renderCoaches(coaches, s)
	})
}

func Coach(coach domain.Coach, reviews []domain.Review) (string, error) {
	return run(func(s styles) string {
		return lipgloss.JoinVertical(lipgloss.Left,
			coachDetail(coach, s),
			s.section.Render(renderReviews(reviews, s)),
		)
	})
}

func Reviews(reviews []domain.Review) (string, error) {
	return run(func(s styles) string {
		return renderReviews(reviews, s)
	})
}

func Resources(resources []domain.Resource) (string, error) {
	return run(func(s styles) string {
		return renderResources(resources, s)
	})
}

func Resource(resource domain.Resource) (string, error) {
	return run(func(s styles) string {
		return resourceDetail(resource, s)
	})
}

func Plans(plans []domain.Plan) (string, error) {
	return run(func(s styles) string {
		return renderPlans(plans, s)
	})
}

func Plan(plan domain.Plan) (string, error) {
	return run(func(s styles) string {
		return planDetail(plan, s)
	})
}

func Sessions(sessions []domain.Session, opts Options) (string, error) {
	return run(func(s styles) string {
		return renderSessions(sessions, opts, s)
	})
}

func Session(session domain.Session, opts Options) (string, error) {
	return run(func(s styles) string {
		return sessionDetail(session, opts, s)
	})
}

func Profile(user domain.User) (string, error) {
	return run(func(s styles) string {
		return profileDetail(user, s)
	})
}

func AuthStatus(status domain.AuthStatus, user *domain.User, message string) (string, error) {
	return run(func(s styles) string {
		return renderAuth(status, user, message, s)
	})
}

func RenderDashboard(dashboard Dashboard, opts Options) (string, error) {
	return run(func(s styles) string {
		return renderDashboard(dashboard, opts, s)
	})
}

func renderCoaches(coaches []domain.Coach, s styles) string {
	lines := []string{
		s.title.Render("Coachs"),
		s.header.Render(fmt.Sprintf("coachs: %d", len(coaches))),
	}

	if len(coaches) == 0 {
		lines = append(lines, s.empty.Render("Aucun coach disponible."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, coach := range coaches {
		lines = append(lines, s.section.Render(coachSummary(coach, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func coachSummary(coach domain.Coach, s styles) string {
	parts := []string{
		s.name.Render(fmt.Sprintf("%s (#%d)", displayName(coach.FullName()), coach.ID)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			renderRating(coach.Rating, s),
			" ",
			s.muted.Render(fmt.Sprintf("%.1f/5", coach.Rating)),
			" ",
			s.muted.Render(pluralize(coach.CoursCount, "cours", "cours")),
		),
	}

	if len(coach.Specialites) > 0 {
		parts = append(parts, s.badge.Render(strings.Join(coach.Specialites, " · ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func coachDetail(coach domain.Coach, s styles) string {
	parts := []string{coachSummary(coach, s)}
	parts = append(parts, field("email", coach.Email, s)...)
	parts = append(parts, field("téléphone", coach.Telephone, s)...)
	if bio := strings.TrimSpace(coach.Bio); bio != "" {
		parts = append(parts, s.section.Render(s.detail.Render(bio)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderReviews(reviews []domain.Review, s styles) string {
	lines := []string{
		s.title.Render("Avis"),
		s.header.Render(fmt.Sprintf("avis: %d", len(reviews))),
	}

	if len(reviews) == 0 {
		lines = append(lines, s.empty.Render("Aucun avis pour le moment."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, review := range reviews {
		author := "Anonyme"
		if review.User != nil {
			author = displayName(review.User.FullName())
		}

		header := lipgloss.JoinHorizontal(lipgloss.Top,
			renderRating(float64(review.Rating), s),
			" ",
			s.name.Render(author),
		)
		if !review.CreatedAt.IsZero() {
			header += " " + s.muted.Render(review.CreatedAt.Format("02/01/2006"))
		}

		lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			header,
			s.detail.Render(strings.TrimSpace(review.Description)),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderResources(resources []domain.Resource, s styles) string {
	lines := []string{
		s.title.Render("Ressources"),
		s.header.Render(fmt.Sprintf("ressources: %d", len(resources))),
	}

	if len(resources) == 0 {
		lines = append(lines, s.empty.Render("Aucune ressource disponible."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, resource := range resources {
		lines = append(lines, resourceLine(resource, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func resourceLine(resource domain.Resource, s styles) string {
	line := lipgloss.JoinHorizontal(lipgloss.Top,
		s.muted.Render(fmt.Sprintf("#%-4d", resource.ID)),
		" ",
		s.badge.Render(fmt.Sprintf("[%s]", resourceTypeLabel(resource.Type))),
		" ",
		s.detail.Render(displayName(resource.Titre)),
		" ",
		s.muted.Render(formatOptionalPrice(resource.Prix)),
	)
	if resource.EstPremium {
		line += " " + s.premium.Render("premium")
	}

	return line
}

func resourceDetail(resource domain.Resource, s styles) string {
	parts := []string{resourceLine(resource, s)}
	parts = append(parts, field("lien", resource.URL, s)...)
	if resource.IsIndividual {
		parts = append(parts, s.muted.Render("vendue à l'unité"))
	}
	if !resource.CreatedAt.IsZero() {
		parts = append(parts, field("ajoutée le", resource.CreatedAt.Format("02/01/2006"), s)...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderPlans(plans []domain.Plan, s styles) string {
	lines := []string{
		s.title.Render("Programmes"),
		s.header.Render(fmt.Sprintf("programmes: %d", len(plans))),
	}

	if len(plans) == 0 {
		lines = append(lines, s.empty.Render("Aucun programme disponible."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, plan := range plans {
		lines = append(lines, s.section.Render(planSummary(plan, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func planSummary(plan domain.Plan, s styles) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.name.Render(fmt.Sprintf("%s (#%d)", displayName(plan.Titre), plan.ID)),
		lipgloss.JoinHorizontal(lipgloss.Top,
			s.detail.Render(formatPrice(plan.Prix)),
			" ",
			s.muted.Render("· "+pluralize(plan.Duree, "semaine", "semaines")),
		),
	)
}

func planDetail(plan domain.Plan, s styles) string {
	parts := []string{planSummary(plan, s)}
	if description := strings.TrimSpace(plan.Description); description != "" {
		parts = append(parts, s.section.Render(s.detail.Render(description)))
	}
	if len(plan.Ressources) > 0 {
		parts = append(parts, s.section.Render(renderResources(plan.Ressources, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderSessions(sessions []domain.Session, opts Options, s styles) string {
	lines := []string{
		s.title.Render("Séances"),
		s.header.Render(fmt.Sprintf("séances: %d", len(sessions))),
	}

	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("Aucune séance programmée."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, session := range sessions {
		lines = append(lines, sessionLine(session, opts, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionLine(session domain.Session, opts Options, s styles) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.muted.Render(fmt.Sprintf("#%-4d", session.ID)),
		" ",
		s.detail.Render(displayName(session.Topic)),
		" ",
		statusStyle(session.Status, s).Render(fmt.Sprintf("[%s]", session.Status.Label())),
		" ",
		s.muted.Render(fmt.Sprintf("%d min, %s", session.Duration, formatStartRelative(session.StartTime, opts.Now))),
	)
}

func sessionDetail(session domain.Session, opts Options, s styles) string {
	parts := []string{sessionLine(session, opts, s)}
	parts = append(parts, field("invité", string(session.GuestID), s)...)
	parts = append(parts, field("hôte", string(session.HostID), s)...)
	parts = append(parts, field("lien", session.JoinURL, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func profileDetail(user domain.User, s styles) string {
	parts := []string{s.name.Render(displayName(user.FullName()))}
	if user.Role != "" {
		parts = append(parts, s.badge.Render(roleLabel(user.Role)))
	}
	parts = append(parts, field("email", user.Email, s)...)
	parts = append(parts, field("téléphone", user.Telephone, s)...)
	parts = append(parts, field("adresse", user.Adresse, s)...)
	parts = append(parts, field("naissance", user.DateNaissance, s)...)
	parts = append(parts, field("genre", user.Genre, s)...)
	parts = append(parts, field("situation", user.SituationFamilliale, s)...)
	parts = append(parts, field("statut", user.Statut, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderAuth(status domain.AuthStatus, user *domain.User, message string, s styles) string {
	var line string
	switch {
	case status == domain.AuthAuthenticated && user != nil:
		line = s.detail.Render("Connecté en tant que ") + s.name.Render(displayName(user.FullName()))
		if user.Email != "" {
			line += " " + s.muted.Render("<"+user.Email+">")
		}
	case status == domain.AuthError:
		line = s.warning.Render("Erreur d'authentification")
	default:
		line = s.empty.Render("Non connecté.")
	}

	if message = strings.TrimSpace(message); message != "" {
		return lipgloss.JoinVertical(lipgloss.Left, line, s.warning.Render(message))
	}

	return line
}

func renderDashboard(dashboard Dashboard, opts Options, s styles) string {
	greeting := s.title.Render("Tableau de bord")
	if dashboard.User != nil {
		greeting = s.title.Render("Bonjour " + displayName(dashboard.User.Prenom))
	}

	lines := []string{greeting}
	for _, message := range dashboard.Errors {
		lines = append(lines, s.warning.Render(message))
	}

	lines = append(lines,
		s.section.Render(renderCoaches(firstN(dashboard.Coaches, dashboardPreview), s)),
		s.section.Render(renderPlans(firstN(dashboard.Plans, dashboardPreview), s)),
		s.section.Render(renderResources(firstN(dashboard.Resources, dashboardPreview), s)),
	)
	if dashboard.Sessions != nil {
		lines = append(lines, s.section.Render(renderSessions(dashboard.Sessions, opts, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderRating(rating float64, s styles) string {
	filled := int(math.Round(clamp(rating, 0, domain.MaxRating)))

	return lipgloss.JoinHorizontal(lipgloss.Top,
		s.starFill.Render(strings.Repeat("★", filled)),
		s.starEmpty.Render(strings.Repeat("☆", domain.MaxRating-filled)),
	)
}

func statusStyle(status domain.SessionStatus, s styles) lipgloss.Style {
	switch status {
	case domain.SessionStarted:
		return s.premium
	case domain.SessionFinished:
		return s.muted
	default:
		return s.badge
	}
}

func field(label, value string, s styles) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	return []string{s.key.Render(label+": ") + s.detail.Render(value)}
}

func formatStartRelative(start, now time.Time) string {
	if start.IsZero() {
		return "date inconnue"
	}
	if now.IsZero() {
		return start.Format("02/01/2006 15:04")
	}
	if start.Before(now) {
		return "le " + start.Format("02/01 à 15:04")
	}

	remaining := start.Sub(now)
	if remaining < 24*time.Hour {
		hours := int(math.Ceil(remaining.Hours()))
		if hours < 1 {
			hours = 1
		}
		return fmt.Sprintf("dans %s (%s)", pluralize(hours, "heure", "heures"), start.Format("15:04"))
	}

	days := int(math.Ceil(remaining.Hours() / 24))
	return fmt.Sprintf("dans %s (%s)", pluralize(days, "jour", "jours"), start.Format("02/01 à 15:04"))
}

func formatPrice(amount float64) string {
	if amount == 0 {
		return "Gratuit"
	}
	return fmt.Sprintf("%.2f €", amount)
}

func formatOptionalPrice(amount *float64) string {
	if amount == nil {
		return "Gratuit"
	}
	return formatPrice(*amount)
}

func resourceTypeLabel(kind domain.ResourceType) string {
	switch kind {
	case domain.ResourcePDF:
		return "PDF"
	case domain.ResourceAudio:
		return "Audio"
	case domain.ResourceVideo:
		return "Vidéo"
	default:
		return "?"
	}
}

func roleLabel(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "Administrateur"
	case domain.RoleCoach:
		return "Coach"
	case domain.RoleCoachee:
		return "Coaché"
	default:
		return string(role)
	}
}

func displayName(name string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}
	return "Sans nom"
}

func pluralize(n int, singular, plural string) string {
	if n <= 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
