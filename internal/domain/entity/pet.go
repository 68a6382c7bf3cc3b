package entity

import (
	"time"
)

type PetPhoto struct {
	ID           string `json:"id" firestore:"id"`
	URL          string `json:"url" firestore:"url"`
	DisplayOrder int    `json:"display_order" firestore:"displayOrder"`
}

type Pet struct {
	ID          string `json:"id" firestore:"id"`
	ShelterID   string `json:"shelter_id" firestore:"shelterId"`
	Name        string `json:"name" firestore:"name"`
	Species     string `json:"species" firestore:"species"` // "dog", "cat", "rabbit", "bird", "other"
	Breed       string `json:"breed,omitempty" firestore:"breed,omitempty"`
	Gender      string `json:"gender" firestore:"gender"` // "male", "female"
	AgeMonths   int    `json:"age_months" firestore:"ageMonths"`
	Size        string `json:"size" firestore:"size"` // "small", "medium", "large"
	Description string `json:"description" firestore:"description"`

	Photos     []PetPhoto `json:"photos" firestore:"photos"`
	Status     string     `json:"status" firestore:"status"` // "available", "pending", "adopted"
	Vaccinated bool       `json:"vaccinated" firestore:"vaccinated"`
	Neutered   bool       `json:"neutered" firestore:"neutered"`

	Views     int        `json:"views" firestore:"views"`
	Featured  bool       `json:"featured" firestore:"featured"`
	CreatedAt time.Time  `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updated_at" firestore:"updatedAt"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
}
