package entity

import (
	"time"
)

type User struct {
	ID          string `json:"id" firestore:"id"`
	Email       string `json:"email" firestore:"email"`
	DisplayName string `json:"display_name" firestore:"displayName"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Bio         string `json:"bio,omitempty" firestore:"bio,omitempty"`
	Role        string `json:"role" firestore:"role"` // "user", "shelter", "admin"
	Status      string `json:"status" firestore:"status"`

	Address   string `json:"address,omitempty" firestore:"address,omitempty"`
	City      string `json:"city,omitempty" firestore:"city,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`

	// Set when the account is linked to a shelter it manages.
	ShelterID string `json:"shelter_id,omitempty" firestore:"shelterId,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
