package entity

import (
	"sort"
	"strings"
	"time"
)

// Conversation is the durable record of a chat relationship between exactly
// two identities (adopter and shelter account), optionally scoped to one pet.
// Messages live in a subcollection, not embedded; only preview metadata is
// kept here and patched on every send.
type Conversation struct {
	ID             string         `json:"id" firestore:"id"`
	ParticipantIDs []string       `json:"participant_ids" firestore:"participantIds"`
	PetID          string         `json:"pet_id,omitempty" firestore:"petId,omitempty"`
	LastMessage    string         `json:"last_message" firestore:"lastMessage"`
	UnreadCount    map[string]int `json:"unread_count" firestore:"unreadCount"`
	CreatedAt      time.Time      `json:"created_at" firestore:"createdAt,serverTimestamp"`
	LastUpdated    time.Time      `json:"last_updated" firestore:"lastUpdated,serverTimestamp"`
}

// PairID returns the canonical conversation document id for two participant
// identities. The id is order-independent, so concurrent find-or-create calls
// for the same pair converge on a single document.
func PairID(a, b string) string {
	ids := []string{a, b}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}

// HasParticipant reports whether id is one of the two participants.
func (c *Conversation) HasParticipant(id string) bool {
	for _, p := range c.ParticipantIDs {
		if p == id {
			return true
		}
	}
	return false
}

// OtherParticipant returns the counterparty of id, or "" if id is not a
// participant.
func (c *Conversation) OtherParticipant(id string) string {
	for _, p := range c.ParticipantIDs {
		if p != id {
			return p
		}
	}
	return ""
}
