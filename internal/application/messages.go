package application

// Fallback messages shown when the server gives no message of its own.
const (
	msgLogin    = "Échec de connexion. Veuillez vérifier vos identifiants."
	msgRegister = "Échec de l'inscription. Veuillez réessayer."
	msgLogout   = "Erreur lors de la déconnexion."

	msgCoachesFetch   = "Erreur lors de la récupération des coachs"
	msgCoachFetch     = "Erreur lors de la récupération du coach"
	msgResourcesFetch = "Erreur lors de la récupération des ressources"
	msgResourceFetch  = "Erreur lors de la récupération de la ressource"
	msgPlansFetch     = "Erreur lors de la récupération des plans"
	msgPlanFetch      = "Erreur lors de la récupération du plan"

	msgReviewsFetch = "Erreur lors de la récupération des avis"
	msgReviewAdd    = "Erreur lors de l'ajout de l'avis"

	msgProfileFetch  = "Erreur lors de la récupération du profil"
	msgProfileUpdate = "Erreur lors de la mise à jour du profil"

	msgSessionsFetch = "Failed to fetch sessions"
	msgSessionCreate = "Failed to create session"
	msgSessionJoin   = "Failed to join session"
	msgMeetingToken  = "Failed to get Zoom token"
)
