package entity

import (
	"time"
)

type AdoptionApplication struct {
	ID          string `json:"id" firestore:"id"`
	PetID       string `json:"pet_id" firestore:"petId"`
	ApplicantID string `json:"applicant_id" firestore:"applicantId"`
	ShelterID   string `json:"shelter_id" firestore:"shelterId"`

	// Free-form questionnaire answers submitted with the application.
	Answers map[string]string `json:"answers" firestore:"answers"`
	Message string            `json:"message,omitempty" firestore:"message,omitempty"`

	Status     string `json:"status" firestore:"status"` // "pending", "approved", "rejected", "completed", "withdrawn"
	StatusNote string `json:"status_note,omitempty" firestore:"statusNote,omitempty"`

	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	DecidedAt *time.Time `json:"decided_at,omitempty" firestore:"decidedAt,omitempty"`
}
