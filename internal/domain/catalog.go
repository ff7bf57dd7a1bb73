package domain

import (
	"strings"
	"time"
)

type Coach struct {
	ID          int64    `json:"id"`
	Nom         string   `json:"nom"`
	Prenom      string   `json:"prenom"`
	Email       string   `json:"email,omitempty"`
	Telephone   string   `json:"telephone,omitempty"`
	Photo       string   `json:"photo,omitempty"`
	Bio         string   `json:"bio,omitempty"`
	Specialites []string `json:"specialites,omitempty"`
	Rating      float64  `json:"rating"`
	CoursCount  int      `json:"coursCount"`
}

func (c Coach) FullName() string {
	return strings.TrimSpace(c.Prenom + " " + c.Nom)
}

type ResourceType string

const (
	ResourcePDF   ResourceType = "pdf"
	ResourceAudio ResourceType = "audio"
	ResourceVideo ResourceType = "video"
)

type Resource struct {
	ID           int64        `json:"id"`
	Titre        string       `json:"titre"`
	Type         ResourceType `json:"type"`
	URL          string       `json:"url"`
	EstPremium   bool         `json:"estPremium"`
	IsIndividual bool         `json:"is_individual"`
	// Prix is nil for free resources.
	Prix      *float64  `json:"prix"`
	Photo     string    `json:"photo,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Plan struct {
	ID          int64   `json:"id"`
	Titre       string  `json:"titre"`
	Description string  `json:"description"`
	Prix        float64 `json:"prix"`
	// Duree is the programme length in weeks.
	Duree       int        `json:"duree"`
	CategorieID int64      `json:"categorie_id"`
	Ressources  []Resource `json:"ressources,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
