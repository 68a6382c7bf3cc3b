package entity

import "time"

// MessageTypeText is the only message type today; the field exists so richer
// kinds can be added without a schema change.
const MessageTypeText = "text"

// Message is one immutable chat utterance. Timestamp is assigned by the
// store, never by the client clock, and is authoritative for display order.
type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversation_id" firestore:"conversationId"`
	SenderID       string    `json:"sender_id" firestore:"senderId"`
	SenderName     string    `json:"sender_name" firestore:"senderName"` // display name snapshot at send time
	Text           string    `json:"text" firestore:"text"`
	Type           string    `json:"type" firestore:"type"` // "text"
	Read           bool      `json:"read" firestore:"read"`
	Timestamp      time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
}
