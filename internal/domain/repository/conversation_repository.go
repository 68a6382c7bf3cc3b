package repository

import (
	"context"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
)

// MessageStream is a live subscription to one conversation's messages. Every
// element on Snapshots is the entire current result set ordered ascending by
// server timestamp, not a delta. The channel is closed when the stream ends;
// Err reports the terminal error, nil after a clean Stop.
type MessageStream interface {
	Snapshots() <-chan []*entity.Message
	Err() error
	Stop()
}

// ConversationStream is a live subscription to every conversation a
// participant belongs to, ordered by lastUpdated descending.
type ConversationStream interface {
	Snapshots() <-chan []*entity.Conversation
	Err() error
	Stop()
}

type ConversationRepository interface {
	// Create inserts the conversation under its canonical pair id and fails
	// with a CONFLICT error if a document for the pair already exists.
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	GetByPair(ctx context.Context, participantA, participantB string) (*entity.Conversation, error)
	ListByParticipant(ctx context.Context, participantID string, limit, offset int) ([]*entity.Conversation, int64, error)

	// UpdateLastMessage patches preview metadata (lastMessage, lastUpdated)
	// and increments the unread counter of every participant except senderID.
	// Field-level patch; concurrent patches from both sides are last-write-wins.
	UpdateLastMessage(ctx context.Context, id, lastMessage, senderID string) error
	ResetUnread(ctx context.Context, id, participantID string) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error)
	MarkMessagesRead(ctx context.Context, conversationID, readerID string) error

	WatchMessages(ctx context.Context, conversationID string) (MessageStream, error)
	WatchConversations(ctx context.Context, participantID string) (ConversationStream, error)
}
