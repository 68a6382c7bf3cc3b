package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

func newChatFixture() (*ChatUseCase, *fakeConversationRepo) {
	conversationRepo := newFakeConversationRepo()
	userRepo := newFakeUserRepo(
		&entity.User{ID: "u1", DisplayName: "Ana", Email: "ana@example.com"},
		&entity.User{ID: "u2", DisplayName: "Ben", Email: "ben@example.com"},
	)
	shelterRepo := newFakeShelterRepo(
		&entity.Shelter{ID: "s1", Name: "Happy Paws", OwnerID: "owner1"},
	)
	petRepo := newFakePetRepo(
		&entity.Pet{ID: "p1", Name: "Rex", ShelterID: "s1", Status: "available"},
	)

	return NewChatUseCase(conversationRepo, userRepo, shelterRepo, petRepo), conversationRepo
}

func TestResolveCreatesConversation(t *testing.T) {
	uc, repo := newChatFixture()
	ctx := context.Background()

	result, err := uc.Resolve(ctx, "u1", "s1", "p1")
	require.NoError(t, err)

	assert.Equal(t, entity.PairID("u1", "s1"), result.ID)
	assert.ElementsMatch(t, []string{"u1", "s1"}, result.ParticipantIDs)
	assert.Equal(t, "p1", result.PetID)
	assert.Equal(t, map[string]int{"u1": 0, "s1": 0}, result.UnreadCount)
	assert.Equal(t, "s1", result.CounterpartID)
	assert.Equal(t, "Happy Paws", result.CounterpartName)
	require.NotNil(t, result.Pet)
	assert.Equal(t, "Rex", result.Pet.Name)

	stored, err := repo.GetByID(ctx, result.ID)
	require.NoError(t, err)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestResolveIsIdempotentSequentially(t *testing.T) {
	uc, repo := newChatFixture()
	ctx := context.Background()

	first, err := uc.Resolve(ctx, "u1", "s1", "p1")
	require.NoError(t, err)

	second, err := uc.Resolve(ctx, "u1", "s1", "")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	repo.mu.Lock()
	assert.Len(t, repo.conversations, 1)
	repo.mu.Unlock()
}

func TestResolveSameConversationFromEitherSide(t *testing.T) {
	uc, _ := newChatFixture()
	ctx := context.Background()

	fromUser, err := uc.Resolve(ctx, "u1", "u2", "")
	require.NoError(t, err)

	fromOther, err := uc.Resolve(ctx, "u2", "u1", "")
	require.NoError(t, err)

	assert.Equal(t, fromUser.ID, fromOther.ID)
}

func TestResolveConcurrentCallersConverge(t *testing.T) {
	uc, repo := newChatFixture()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]string, 2)
	errs := make([]error, 2)

	for i, caller := range []string{"u1", "s1"} {
		wg.Add(1)
		go func(slot int, selfID string) {
			defer wg.Done()
			other := "s1"
			if selfID == "s1" {
				other = "u1"
			}
			result, err := uc.Resolve(ctx, selfID, other, "")
			if err == nil {
				ids[slot] = result.ID
			}
			errs[slot] = err
		}(i, caller)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, ids[0], ids[1], "racing resolvers must converge on one conversation")

	repo.mu.Lock()
	assert.Len(t, repo.conversations, 1)
	repo.mu.Unlock()
}

func TestResolveRejectsSelfChat(t *testing.T) {
	uc, _ := newChatFixture()

	_, err := uc.Resolve(context.Background(), "u1", "u1", "")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestResolveRejectsUnknownRecipient(t *testing.T) {
	uc, _ := newChatFixture()

	_, err := uc.Resolve(context.Background(), "u1", "ghost", "")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendMessageUpdatesPreview(t *testing.T) {
	uc, repo := newChatFixture()
	ctx := context.Background()

	conversation, err := uc.Resolve(ctx, "u1", "s1", "p1")
	require.NoError(t, err)

	before := conversation.LastUpdated

	message, err := uc.SendMessage(ctx, "u1", conversation.ID, "Hi, is Rex still available?")
	require.NoError(t, err)

	assert.Equal(t, "u1", message.SenderID)
	assert.Equal(t, "Ana", message.SenderName)
	assert.Equal(t, "Hi, is Rex still available?", message.Text)
	assert.Equal(t, entity.MessageTypeText, message.Type)

	stored, err := repo.GetByID(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hi, is Rex still available?", stored.LastMessage)
	assert.True(t, stored.LastUpdated.After(before) || stored.LastUpdated.Equal(before))
	assert.Equal(t, 1, stored.UnreadCount["s1"], "the counterparty's unread count advances")
	assert.Equal(t, 0, stored.UnreadCount["u1"], "the sender's unread count does not")
}

func TestSendMessageTrimsAndRejectsEmpty(t *testing.T) {
	uc, repo := newChatFixture()
	ctx := context.Background()

	conversation, err := uc.Resolve(ctx, "u1", "s1", "")
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "u1", conversation.ID, "   ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, 0, repo.createMessageCalls)
}

func TestSendMessageRejectsNonParticipant(t *testing.T) {
	uc, _ := newChatFixture()
	ctx := context.Background()

	conversation, err := uc.Resolve(ctx, "u1", "s1", "")
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "u2", conversation.ID, "let me in")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestMarkConversationRead(t *testing.T) {
	uc, repo := newChatFixture()
	ctx := context.Background()

	conversation, err := uc.Resolve(ctx, "u1", "s1", "")
	require.NoError(t, err)

	_, err = uc.SendMessage(ctx, "u1", conversation.ID, "hello")
	require.NoError(t, err)

	require.NoError(t, uc.MarkConversationRead(ctx, "s1", conversation.ID))

	stored, err := repo.GetByID(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.UnreadCount["s1"])

	messages, _, err := repo.ListMessages(ctx, conversation.ID, -1, 0)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Read)
}

func TestListConversationsResolvesCounterparts(t *testing.T) {
	uc, _ := newChatFixture()
	ctx := context.Background()

	_, err := uc.Resolve(ctx, "u1", "s1", "")
	require.NoError(t, err)
	_, err = uc.Resolve(ctx, "u1", "u2", "")
	require.NoError(t, err)

	conversations, total, err := uc.ListConversations(ctx, "u1", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, conversations, 2)

	names := map[string]string{}
	for _, conversation := range conversations {
		names[conversation.CounterpartID] = conversation.CounterpartName
	}
	assert.Equal(t, "Happy Paws", names["s1"])
	assert.Equal(t, "Ben", names["u2"])
}

func TestGetMessagesRequiresParticipation(t *testing.T) {
	uc, _ := newChatFixture()
	ctx := context.Background()

	conversation, err := uc.Resolve(ctx, "u1", "s1", "")
	require.NoError(t, err)

	_, _, err = uc.GetMessages(ctx, "u2", conversation.ID, 50, 0)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
