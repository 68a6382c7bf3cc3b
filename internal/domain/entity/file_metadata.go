package entity

import (
	"time"
)

type FileMetadata struct {
	ID         string    `json:"id" firestore:"id"`
	OwnerID    string    `json:"owner_id" firestore:"ownerId"`
	URL        string    `json:"url" firestore:"url"`
	ObjectName string    `json:"object_name" firestore:"objectName"`
	FileType   string    `json:"file_type" firestore:"fileType"`
	Folder     string    `json:"folder" firestore:"folder"`
	Public     bool      `json:"public" firestore:"public"`
	EntityType string    `json:"entity_type,omitempty" firestore:"entityType,omitempty"` // "pet", "avatar", "blog", "shelter"
	EntityID   string    `json:"entity_id,omitempty" firestore:"entityId,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
}
