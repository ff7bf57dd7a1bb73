package domain

import "strings"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCoach   Role = "coach"
	RoleCoachee Role = "coache"
)

type User struct {
	ID                  int64  `json:"id,omitempty"`
	Nom                 string `json:"nom"`
	Prenom              string `json:"prenom"`
	Email               string `json:"email"`
	DateNaissance       string `json:"dateNaissance,omitempty"`
	Telephone           string `json:"telephone,omitempty"`
	Adresse             string `json:"adresse,omitempty"`
	Genre               string `json:"genre,omitempty"`
	Photo               string `json:"photo,omitempty"`
	Statut              string `json:"statut,omitempty"`
	SituationFamilliale string `json:"situation_familliale,omitempty"`
	Role                Role   `json:"role,omitempty"`
	EmailVerifiedAt     string `json:"email_verified_at,omitempty"`
}

func (u User) FullName() string {
	return strings.TrimSpace(u.Prenom + " " + u.Nom)
}

type FileUpload struct {
	Name string
	Data []byte
}

// ProfileUpdate is sent as multipart form data; empty fields are left untouched server-side.
type ProfileUpdate struct {
	Nom                 string
	Prenom              string
	Email               string
	DateNaissance       string
	Telephone           string
	Adresse             string
	Genre               string
	SituationFamilliale string
	Photo               *FileUpload
}

func (u ProfileUpdate) FormFields() map[string]string {
	fields := map[string]string{}
	set := func(key, value string) {
		if value = strings.TrimSpace(value); value != "" {
			fields[key] = value
		}
	}

	set("nom", u.Nom)
	set("prenom", u.Prenom)
	set("email", u.Email)
	set("dateNaissance", u.DateNaissance)
	set("telephone", u.Telephone)
	set("adresse", u.Adresse)
	set("genre", NormalizeGender(u.Genre))
	set("situation_familliale", u.SituationFamilliale)

	return fields
}

func (u ProfileUpdate) IsEmpty() bool {
	return len(u.FormFields()) == 0 && u.Photo == nil
}
