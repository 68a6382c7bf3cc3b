package entity

import (
	"time"
)

type Shelter struct {
	ID          string `json:"id" firestore:"id"`
	Name        string `json:"name" firestore:"name"`
	Email       string `json:"email" firestore:"email"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Description string `json:"description,omitempty" firestore:"description,omitempty"`
	Address     string `json:"address" firestore:"address"`
	City        string `json:"city" firestore:"city"`
	LogoURL     string `json:"logo_url,omitempty" firestore:"logoURL,omitempty"`

	// Account that administers this shelter.
	OwnerID string `json:"owner_id" firestore:"ownerId"`

	Verified  bool      `json:"verified" firestore:"verified"`
	PetCount  int       `json:"pet_count" firestore:"petCount"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
