package usecase

import (
	"context"
	"strings"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/infrastructure/ratelimit"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

type ChatUseCase struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	shelterRepo      repository.ShelterRepository
	petRepo          repository.PetRepository
	rateLimiter      *ratelimit.RateLimiter
}

func NewChatUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	shelterRepo repository.ShelterRepository,
	petRepo repository.PetRepository,
) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		shelterRepo:      shelterRepo,
		petRepo:          petRepo,
		rateLimiter:      rateLimiter,
	}
}

// ConversationResponse pairs a conversation with the resolved counterparty
// and optional pet context for the client.
type ConversationResponse struct {
	*entity.Conversation
	CounterpartID   string      `json:"counterpart_id"`
	CounterpartName string      `json:"counterpart_name"`
	Pet             *entity.Pet `json:"pet,omitempty"`
}

// Resolve finds or creates the single conversation between selfID and
// counterpartyID, optionally scoped to a pet on first contact.
//
// Find is the array-contains query plus a client-side scan for the
// counterparty; the store cannot express "array contains both X and Y" in one
// filter. Creation uses the canonical sorted-pair document id, so two callers
// racing past the scan converge on one document: the loser's insert fails and
// it adopts the winner's.
func (uc *ChatUseCase) Resolve(ctx context.Context, selfID, counterpartyID, petID string) (*ConversationResponse, error) {
	if selfID == counterpartyID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	counterpartName, ok := uc.lookupDisplayName(ctx, counterpartyID)
	if !ok {
		return nil, errors.NotFound("Recipient", nil)
	}

	var pet *entity.Pet
	if petID != "" {
		var err error
		pet, err = uc.petRepo.GetByID(ctx, petID)
		if err != nil {
			return nil, err
		}
	}

	if existing, err := uc.findExistingConversation(ctx, selfID, counterpartyID); err == nil {
		return &ConversationResponse{
			Conversation:    existing,
			CounterpartID:   counterpartyID,
			CounterpartName: counterpartName,
			Pet:             pet,
		}, nil
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	if allowed, wait := uc.rateLimiter.Allow(selfID, "create_conversation"); !allowed {
		logger.Warn("Resolve rate limited: user %s must wait %v", selfID, wait)
		return nil, errors.TooManyRequests("Too many new conversations; please wait before starting another")
	}

	conversation := &entity.Conversation{
		ID:             entity.PairID(selfID, counterpartyID),
		ParticipantIDs: []string{selfID, counterpartyID},
		PetID:          petID,
		LastMessage:    "",
		UnreadCount:    map[string]int{selfID: 0, counterpartyID: 0},
	}

	if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
		if errors.Is(err, "CONFLICT") {
			// Lost the find-or-create race; the other caller's document wins.
			existing, getErr := uc.conversationRepo.GetByPair(ctx, selfID, counterpartyID)
			if getErr != nil {
				return nil, getErr
			}
			conversation = existing
		} else {
			logger.Error("Resolve failed to create conversation for (%s, %s): %v", selfID, counterpartyID, err)
			return nil, err
		}
	}

	return &ConversationResponse{
		Conversation:    conversation,
		CounterpartID:   counterpartyID,
		CounterpartName: counterpartName,
		Pet:             pet,
	}, nil
}

// findExistingConversation lists everything selfID participates in and scans
// for the counterparty.
func (uc *ChatUseCase) findExistingConversation(ctx context.Context, selfID, counterpartyID string) (*entity.Conversation, error) {
	conversations, _, err := uc.conversationRepo.ListByParticipant(ctx, selfID, -1, 0)
	if err != nil {
		logger.Error("findExistingConversation: failed to list conversations for %s: %v", selfID, err)
		return nil, errors.Internal("Failed to list conversations", err)
	}

	for _, conversation := range conversations {
		if len(conversation.ParticipantIDs) == 2 && conversation.HasParticipant(counterpartyID) {
			return conversation, nil
		}
	}

	return nil, errors.NotFound("Conversation", nil)
}

func (uc *ChatUseCase) GetConversation(ctx context.Context, userID, conversationID string) (*ConversationResponse, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	counterpartID := conversation.OtherParticipant(userID)
	counterpartName, _ := uc.lookupDisplayName(ctx, counterpartID)

	var pet *entity.Pet
	if conversation.PetID != "" {
		pet, _ = uc.petRepo.GetByID(ctx, conversation.PetID)
	}

	return &ConversationResponse{
		Conversation:    conversation,
		CounterpartID:   counterpartID,
		CounterpartName: counterpartName,
		Pet:             pet,
	}, nil
}

// ListConversations is the one-shot HTTP inbox: most recently active first,
// with the counterparty resolved per conversation.
func (uc *ChatUseCase) ListConversations(ctx context.Context, userID string, limit, offset int) ([]*ConversationResponse, int64, error) {
	conversations, total, err := uc.conversationRepo.ListByParticipant(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	directory := NewParticipantDirectory(uc.userRepo, uc.shelterRepo)
	responses := make([]*ConversationResponse, 0, len(conversations))
	for _, conversation := range conversations {
		counterpartID := conversation.OtherParticipant(userID)
		responses = append(responses, &ConversationResponse{
			Conversation:    conversation,
			CounterpartID:   counterpartID,
			CounterpartName: directory.DisplayName(ctx, counterpartID),
		})
	}

	return responses, total, nil
}

// SendMessage is the HTTP send path. Live surfaces send through their
// MessageStreamController instead; both paths share the same dual-write
// shape (message insert, then preview patch).
func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID, conversationID, text string) (*entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.BadRequest("Message text must not be empty", nil)
	}

	if allowed, wait := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		logger.Warn("SendMessage rate limited: user %s must wait %v", senderID, wait)
		return nil, errors.TooManyRequests("You are sending messages too quickly; please slow down")
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(senderID) {
		return nil, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	senderName, ok := uc.lookupDisplayName(ctx, senderID)
	if !ok {
		return nil, errors.NotFound("Sender", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderName,
		Text:           text,
		Type:           entity.MessageTypeText,
	}

	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		logger.Error("SendMessage: failed to create message in %s: %v", conversationID, err)
		return nil, err
	}

	if err := uc.conversationRepo.UpdateLastMessage(ctx, conversationID, text, senderID); err != nil {
		logger.Warn("Message %s delivered but conversation %s preview is stale: %v", message.ID, conversationID, err)
	}

	return message, nil
}

func (uc *ChatUseCase) GetMessages(ctx context.Context, userID, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, 0, err
	}
	if !conversation.HasParticipant(userID) {
		return nil, 0, errors.Forbidden("You are not a participant in this conversation", nil)
	}

	return uc.conversationRepo.ListMessages(ctx, conversationID, limit, offset)
}

func (uc *ChatUseCase) MarkConversationRead(ctx context.Context, userID, conversationID string) error {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return errors.Forbidden("You are not a participant in this conversation", nil)
	}

	if err := uc.conversationRepo.ResetUnread(ctx, conversationID, userID); err != nil {
		return err
	}
	if err := uc.conversationRepo.MarkMessagesRead(ctx, conversationID, userID); err != nil {
		logger.Warn("Unread counter reset but message flags stale for %s: %v", conversationID, err)
	}

	return nil
}

// NewMessageStream builds a controller for one live chat surface. The caller
// owns the Open/Close pairing.
func (uc *ChatUseCase) NewMessageStream(onUpdate func(ChatView)) *MessageStreamController {
	return NewMessageStreamController(uc.conversationRepo, onUpdate)
}

// SubscribeInbox opens a live aggregation over every conversation of selfID.
func (uc *ChatUseCase) SubscribeInbox(ctx context.Context, selfID string) (*InboxSubscription, error) {
	stream, err := uc.conversationRepo.WatchConversations(ctx, selfID)
	if err != nil {
		logger.Error("SubscribeInbox failed for %s: %v", selfID, err)
		return nil, err
	}

	return newInboxSubscription(selfID, stream, NewParticipantDirectory(uc.userRepo, uc.shelterRepo)), nil
}

// lookupDisplayName probes users first, then shelters. The second result is
// false only when the id matches neither.
func (uc *ChatUseCase) lookupDisplayName(ctx context.Context, id string) (string, bool) {
	if user, err := uc.userRepo.GetByID(ctx, id); err == nil {
		return user.DisplayName, true
	}
	if shelter, err := uc.shelterRepo.GetByID(ctx, id); err == nil {
		return shelter.Name, true
	}
	return unknownParticipantName, false
}
