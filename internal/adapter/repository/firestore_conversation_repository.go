package repository

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) conversations() *firestore.CollectionRef {
	return r.client.Collection("conversations")
}

func (r *firestoreConversationRepository) messages(conversationID string) *firestore.CollectionRef {
	return r.conversations().Doc(conversationID).Collection("messages")
}

func (r *firestoreConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if len(conversation.ParticipantIDs) != 2 {
		return errors.BadRequest("A conversation must have exactly two participants", nil)
	}
	if conversation.ID == "" {
		conversation.ID = entity.PairID(conversation.ParticipantIDs[0], conversation.ParticipantIDs[1])
	}
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
		for _, p := range conversation.ParticipantIDs {
			conversation.UnreadCount[p] = 0
		}
	}

	// Create (not Set) so a concurrent find-or-create for the same pair fails
	// here instead of producing a second document.
	_, err := r.conversations().Doc(conversation.ID).Create(ctx, conversation)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return errors.Conflict("Conversation already exists for this pair")
		}
		return errors.Internal("Failed to create conversation", err)
	}

	return nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.conversations().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}
	conversation.ID = doc.Ref.ID

	return &conversation, nil
}

func (r *firestoreConversationRepository) GetByPair(ctx context.Context, participantA, participantB string) (*entity.Conversation, error) {
	return r.GetByID(ctx, entity.PairID(participantA, participantB))
}

func (r *firestoreConversationRepository) ListByParticipant(ctx context.Context, participantID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	query := r.conversations().
		Where("participantIds", "array-contains", participantID).
		OrderBy("lastUpdated", firestore.Desc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching conversations for %s: %v", participantID, err)
		return nil, 0, errors.Internal("Failed to fetch conversations", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var conversations []*entity.Conversation
	for _, doc := range allDocs[start:end] {
		var conversation entity.Conversation
		if err := doc.DataTo(&conversation); err != nil {
			logger.Warn("Skipping malformed conversation %s: %v", doc.Ref.ID, err)
			continue
		}
		conversation.ID = doc.Ref.ID
		conversations = append(conversations, &conversation)
	}

	return conversations, total, nil
}

func (r *firestoreConversationRepository) UpdateLastMessage(ctx context.Context, id, lastMessage, senderID string) error {
	conversation, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	updates := []firestore.Update{
		{Path: "lastMessage", Value: lastMessage},
		{Path: "lastUpdated", Value: firestore.ServerTimestamp},
	}
	for _, participantID := range conversation.ParticipantIDs {
		if participantID != senderID {
			updates = append(updates, firestore.Update{
				FieldPath: firestore.FieldPath{"unreadCount", participantID},
				Value:     firestore.Increment(1),
			})
		}
	}

	_, err = r.conversations().Doc(id).Update(ctx, updates)
	if err != nil {
		return errors.Internal("Failed to update conversation metadata", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ResetUnread(ctx context.Context, id, participantID string) error {
	_, err := r.conversations().Doc(id).Update(ctx, []firestore.Update{
		{FieldPath: firestore.FieldPath{"unreadCount", participantID}, Value: 0},
	})
	if err != nil {
		return errors.Internal("Failed to reset unread count", err)
	}

	return nil
}

func (r *firestoreConversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}

	// Timestamp stays zero here; the serverTimestamp tag makes the store
	// assign it. Client clocks are never trusted for ordering.
	_, err := r.messages(message.ConversationID).Doc(message.ID).Create(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}

	return nil
}

func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	query := r.messages(conversationID).OrderBy("timestamp", firestore.Asc)

	allDocs, err := query.Documents(ctx).GetAll()
	if err != nil {
		logger.Error("Firestore error while fetching messages for conversation %s: %v", conversationID, err)
		return nil, 0, errors.Internal("Failed to fetch messages", err)
	}

	total := int64(len(allDocs))

	start := offset
	if start > len(allDocs) {
		start = len(allDocs)
	}
	end := len(allDocs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}

	var messages []*entity.Message
	for _, doc := range allDocs[start:end] {
		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, 0, errors.Internal("Failed to parse message data", err)
		}
		message.ID = doc.Ref.ID
		messages = append(messages, &message)
	}

	return messages, total, nil
}

func (r *firestoreConversationRepository) MarkMessagesRead(ctx context.Context, conversationID, readerID string) error {
	iter := r.messages(conversationID).Where("read", "==", false).Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return errors.Internal("Failed to iterate unread messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			logger.Warn("Skipping malformed message %s: %v", doc.Ref.ID, err)
			continue
		}
		if message.SenderID == readerID {
			continue
		}

		if _, err := doc.Ref.Update(ctx, []firestore.Update{{Path: "read", Value: true}}); err != nil {
			return errors.Internal("Failed to mark message read", err)
		}
	}

	return nil
}

func (r *firestoreConversationRepository) WatchMessages(ctx context.Context, conversationID string) (repository.MessageStream, error) {
	query := r.messages(conversationID).OrderBy("timestamp", firestore.Asc)

	stream := newMessageStream()
	go stream.run(ctx, query)
	return stream, nil
}

func (r *firestoreConversationRepository) WatchConversations(ctx context.Context, participantID string) (repository.ConversationStream, error) {
	query := r.conversations().
		Where("participantIds", "array-contains", participantID).
		OrderBy("lastUpdated", firestore.Desc)

	stream := newConversationStream()
	go stream.run(ctx, query)
	return stream, nil
}

// messageStream adapts a Firestore query snapshot listener to the
// repository.MessageStream contract: one full, store-ordered result set per
// underlying change.
type messageStream struct {
	snapshots chan []*entity.Message
	done      chan struct{}
	stopOnce  sync.Once

	mu  sync.Mutex
	err error
}

func newMessageStream() *messageStream {
	return &messageStream{
		snapshots: make(chan []*entity.Message, 1),
		done:      make(chan struct{}),
	}
}

func (s *messageStream) run(ctx context.Context, query firestore.Query) {
	defer close(s.snapshots)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-s.done
		cancel()
	}()

	iter := query.Snapshots(ctx)
	defer iter.Stop()

	for {
		snapshot, err := iter.Next()
		if err != nil {
			s.setErr(ctx, err)
			return
		}

		docs, err := snapshot.Documents.GetAll()
		if err != nil {
			s.setErr(ctx, err)
			return
		}

		messages := make([]*entity.Message, 0, len(docs))
		for _, doc := range docs {
			var message entity.Message
			if err := doc.DataTo(&message); err != nil {
				logger.Warn("Skipping malformed message %s in snapshot: %v", doc.Ref.ID, err)
				continue
			}
			message.ID = doc.Ref.ID
			messages = append(messages, &message)
		}

		select {
		case s.snapshots <- messages:
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *messageStream) setErr(ctx context.Context, err error) {
	// A cancellation triggered by Stop is a clean shutdown, not a failure.
	if ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *messageStream) Snapshots() <-chan []*entity.Message {
	return s.snapshots
}

func (s *messageStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *messageStream) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

type conversationStream struct {
	snapshots chan []*entity.Conversation
	done      chan struct{}
	stopOnce  sync.Once

	mu  sync.Mutex
	err error
}

func newConversationStream() *conversationStream {
	return &conversationStream{
		snapshots: make(chan []*entity.Conversation, 1),
		done:      make(chan struct{}),
	}
}

func (s *conversationStream) run(ctx context.Context, query firestore.Query) {
	defer close(s.snapshots)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		<-s.done
		cancel()
	}()

	iter := query.Snapshots(ctx)
	defer iter.Stop()

	for {
		snapshot, err := iter.Next()
		if err != nil {
			s.setErr(ctx, err)
			return
		}

		docs, err := snapshot.Documents.GetAll()
		if err != nil {
			s.setErr(ctx, err)
			return
		}

		conversations := make([]*entity.Conversation, 0, len(docs))
		for _, doc := range docs {
			var conversation entity.Conversation
			if err := doc.DataTo(&conversation); err != nil {
				logger.Warn("Skipping malformed conversation %s in snapshot: %v", doc.Ref.ID, err)
				continue
			}
			conversation.ID = doc.Ref.ID
			conversations = append(conversations, &conversation)
		}

		select {
		case s.snapshots <- conversations:
		case <-s.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *conversationStream) setErr(ctx context.Context, err error) {
	if ctx.Err() != nil {
		return
	}
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *conversationStream) Snapshots() <-chan []*entity.Conversation {
	return s.snapshots
}

func (s *conversationStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *conversationStream) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}
