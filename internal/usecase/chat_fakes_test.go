package usecase

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

type fakeMessageStream struct {
	ch  chan []*entity.Message
	err error

	mu          sync.Mutex
	stopped     bool
	closeOnStop bool
}

func newFakeMessageStream() *fakeMessageStream {
	return &fakeMessageStream{
		ch:          make(chan []*entity.Message, 8),
		closeOnStop: true,
	}
}

func (s *fakeMessageStream) Snapshots() <-chan []*entity.Message { return s.ch }

func (s *fakeMessageStream) Err() error { return s.err }

func (s *fakeMessageStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	if s.closeOnStop {
		close(s.ch)
	}
}

func (s *fakeMessageStream) push(messages []*entity.Message) {
	s.ch <- messages
}

func (s *fakeMessageStream) fail(err error) {
	s.err = err
	close(s.ch)
}

type fakeConversationStream struct {
	ch  chan []*entity.Conversation
	err error

	mu      sync.Mutex
	stopped bool
}

func newFakeConversationStream() *fakeConversationStream {
	return &fakeConversationStream{
		ch: make(chan []*entity.Conversation, 8),
	}
}

func (s *fakeConversationStream) Snapshots() <-chan []*entity.Conversation { return s.ch }

func (s *fakeConversationStream) Err() error { return s.err }

func (s *fakeConversationStream) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return
	}
	s.stopped = true
	close(s.ch)
}

func (s *fakeConversationStream) push(conversations []*entity.Conversation) {
	s.ch <- conversations
}

// fakeConversationRepo is an in-memory ConversationRepository. Optional hooks
// let tests block or fail individual store calls.
type fakeConversationRepo struct {
	mu            sync.Mutex
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message

	createMessageCalls     int
	createMessageErr       error
	createMessageEntered   chan struct{}
	createMessageGate      chan struct{}
	updateLastMessageCalls int
	updateLastMessageErr   error

	stream     *fakeMessageStream
	convStream *fakeConversationStream
}

func newFakeConversationRepo() *fakeConversationRepo {
	return &fakeConversationRepo{
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
	}
}

func (r *fakeConversationRepo) Create(ctx context.Context, conversation *entity.Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.conversations[conversation.ID]; exists {
		return errors.Conflict("Conversation already exists")
	}
	now := time.Now()
	conversation.CreatedAt = now
	conversation.LastUpdated = now
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepo) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *fakeConversationRepo) GetByPair(ctx context.Context, participantA, participantB string) (*entity.Conversation, error) {
	return r.GetByID(ctx, entity.PairID(participantA, participantB))
}

func (r *fakeConversationRepo) ListByParticipant(ctx context.Context, participantID string, limit, offset int) ([]*entity.Conversation, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Conversation
	for _, conversation := range r.conversations {
		if conversation.HasParticipant(participantID) {
			result = append(result, conversation)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastUpdated.After(result[j].LastUpdated)
	})
	return result, int64(len(result)), nil
}

func (r *fakeConversationRepo) UpdateLastMessage(ctx context.Context, id, lastMessage, senderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.updateLastMessageCalls++
	if r.updateLastMessageErr != nil {
		return r.updateLastMessageErr
	}

	conversation, ok := r.conversations[id]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.LastMessage = lastMessage
	conversation.LastUpdated = time.Now()
	for _, participant := range conversation.ParticipantIDs {
		if participant != senderID {
			if conversation.UnreadCount == nil {
				conversation.UnreadCount = make(map[string]int)
			}
			conversation.UnreadCount[participant]++
		}
	}
	return nil
}

func (r *fakeConversationRepo) ResetUnread(ctx context.Context, id, participantID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	conversation, ok := r.conversations[id]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	if conversation.UnreadCount != nil {
		conversation.UnreadCount[participantID] = 0
	}
	return nil
}

func (r *fakeConversationRepo) CreateMessage(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	r.createMessageCalls++
	entered := r.createMessageEntered
	gate := r.createMessageGate
	err := r.createMessageErr
	r.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
	}
	if gate != nil {
		<-gate
	}
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	message.ID = message.ConversationID + "-" + message.Text
	message.Timestamp = time.Now()
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], message)
	return nil
}

func (r *fakeConversationRepo) ListMessages(ctx context.Context, conversationID string, limit, offset int) ([]*entity.Message, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	messages := r.messages[conversationID]
	return messages, int64(len(messages)), nil
}

func (r *fakeConversationRepo) MarkMessagesRead(ctx context.Context, conversationID, readerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, message := range r.messages[conversationID] {
		if message.SenderID != readerID {
			message.Read = true
		}
	}
	return nil
}

func (r *fakeConversationRepo) WatchMessages(ctx context.Context, conversationID string) (repository.MessageStream, error) {
	if r.stream == nil {
		r.stream = newFakeMessageStream()
	}
	return r.stream, nil
}

func (r *fakeConversationRepo) WatchConversations(ctx context.Context, participantID string) (repository.ConversationStream, error) {
	if r.convStream == nil {
		r.convStream = newFakeConversationStream()
	}
	return r.convStream, nil
}

func (r *fakeConversationRepo) messageCount(conversationID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.messages[conversationID])
}

type fakeUserRepo struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	getCalls int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: make(map[string]*entity.User)}
	for _, user := range users {
		repo.users[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getCalls++
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

type fakeShelterRepo struct {
	mu       sync.Mutex
	shelters map[string]*entity.Shelter
}

func newFakeShelterRepo(shelters ...*entity.Shelter) *fakeShelterRepo {
	repo := &fakeShelterRepo{shelters: make(map[string]*entity.Shelter)}
	for _, shelter := range shelters {
		repo.shelters[shelter.ID] = shelter
	}
	return repo
}

func (r *fakeShelterRepo) Create(ctx context.Context, shelter *entity.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if shelter.ID == "" {
		shelter.ID = "shelter" + strconv.Itoa(len(r.shelters)+1)
	}
	r.shelters[shelter.ID] = shelter
	return nil
}

func (r *fakeShelterRepo) GetByID(ctx context.Context, id string) (*entity.Shelter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	shelter, ok := r.shelters[id]
	if !ok {
		return nil, errors.NotFound("Shelter", nil)
	}
	return shelter, nil
}

func (r *fakeShelterRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Shelter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, shelter := range r.shelters {
		if shelter.OwnerID == ownerID {
			return shelter, nil
		}
	}
	return nil, errors.NotFound("Shelter", nil)
}

func (r *fakeShelterRepo) List(ctx context.Context, filter map[string]interface{}, limit, offset int) ([]*entity.Shelter, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Shelter
	for _, shelter := range r.shelters {
		result = append(result, shelter)
	}
	return result, int64(len(result)), nil
}

func (r *fakeShelterRepo) Update(ctx context.Context, shelter *entity.Shelter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.shelters[shelter.ID] = shelter
	return nil
}

func (r *fakeShelterRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.shelters, id)
	return nil
}

type fakePetRepo struct {
	mu   sync.Mutex
	pets map[string]*entity.Pet
}

func newFakePetRepo(pets ...*entity.Pet) *fakePetRepo {
	repo := &fakePetRepo{pets: make(map[string]*entity.Pet)}
	for _, pet := range pets {
		repo.pets[pet.ID] = pet
	}
	return repo
}

func (r *fakePetRepo) Create(ctx context.Context, pet *entity.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pet.ID == "" {
		pet.ID = "pet" + strconv.Itoa(len(r.pets)+1)
	}
	r.pets[pet.ID] = pet
	return nil
}

func (r *fakePetRepo) GetByID(ctx context.Context, id string) (*entity.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.pets[id]
	if !ok {
		return nil, errors.NotFound("Pet", nil)
	}
	return pet, nil
}

func (r *fakePetRepo) List(ctx context.Context, filter map[string]interface{}, sort string, limit, offset int) ([]*entity.Pet, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Pet
	for _, pet := range r.pets {
		result = append(result, pet)
	}
	return result, int64(len(result)), nil
}

func (r *fakePetRepo) Update(ctx context.Context, pet *entity.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pets[pet.ID] = pet
	return nil
}

func (r *fakePetRepo) UpdateStatus(ctx context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.pets[id]
	if !ok {
		return errors.NotFound("Pet", nil)
	}
	pet.Status = status
	return nil
}

func (r *fakePetRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if pet, ok := r.pets[id]; ok {
		pet.Views++
	}
	return nil
}

func (r *fakePetRepo) SoftDelete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pet, ok := r.pets[id]
	if !ok {
		return errors.NotFound("Pet", nil)
	}
	now := time.Now()
	pet.DeletedAt = &now
	return nil
}
