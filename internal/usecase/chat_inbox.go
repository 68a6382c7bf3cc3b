package usecase

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
)

const unknownParticipantName = "Unknown participant"

// ParticipantDirectory resolves a participant id to a display name, probing
// the users collection first and shelters second. Results are cached for the
// directory's lifetime; concurrent lookups for the same id are collapsed to
// one pair of reads.
type ParticipantDirectory struct {
	users    repository.UserRepository
	shelters repository.ShelterRepository

	mu    sync.RWMutex
	cache map[string]string
	group singleflight.Group
}

func NewParticipantDirectory(users repository.UserRepository, shelters repository.ShelterRepository) *ParticipantDirectory {
	return &ParticipantDirectory{
		users:    users,
		shelters: shelters,
		cache:    make(map[string]string),
	}
}

func (d *ParticipantDirectory) DisplayName(ctx context.Context, id string) string {
	if id == "" {
		return unknownParticipantName
	}

	d.mu.RLock()
	name, ok := d.cache[id]
	d.mu.RUnlock()
	if ok {
		return name
	}

	result, _, _ := d.group.Do(id, func() (interface{}, error) {
		name := unknownParticipantName
		if user, err := d.users.GetByID(ctx, id); err == nil {
			name = user.DisplayName
		} else if shelter, err := d.shelters.GetByID(ctx, id); err == nil {
			name = shelter.Name
		}

		d.mu.Lock()
		d.cache[id] = name
		d.mu.Unlock()
		return name, nil
	})

	return result.(string)
}

// ConversationSummary is one inbox row.
type ConversationSummary struct {
	ID              string    `json:"id"`
	PetID           string    `json:"pet_id,omitempty"`
	CounterpartID   string    `json:"counterpart_id"`
	CounterpartName string    `json:"counterpart_name"`
	LastMessage     string    `json:"last_message"`
	LastUpdated     time.Time `json:"last_updated"`
	UnreadCount     int       `json:"unread_count"`
}

// InboxSubscription is a live aggregation over every conversation of one
// participant, most recently active first (the store's order-by, not a
// client-side sort). It stays open until Close and is restartable by
// subscribing again from scratch.
type InboxSubscription struct {
	selfID    string
	stream    repository.ConversationStream
	directory *ParticipantDirectory

	updates chan []ConversationSummary
	done    chan struct{}
	once    sync.Once
}

func newInboxSubscription(selfID string, stream repository.ConversationStream, directory *ParticipantDirectory) *InboxSubscription {
	sub := &InboxSubscription{
		selfID:    selfID,
		stream:    stream,
		directory: directory,
		updates:   make(chan []ConversationSummary, 1),
		done:      make(chan struct{}),
	}
	go sub.run()
	return sub
}

func (s *InboxSubscription) run() {
	defer close(s.updates)

	// Name lookups during summary building use a background context: the
	// subscription's own lifetime, not a single request, bounds them.
	ctx := context.Background()

	for conversations := range s.stream.Snapshots() {
		summaries := make([]ConversationSummary, 0, len(conversations))
		for _, conversation := range conversations {
			summaries = append(summaries, s.summarize(ctx, conversation))
		}

		select {
		case s.updates <- summaries:
		case <-s.done:
			return
		}
	}
}

func (s *InboxSubscription) summarize(ctx context.Context, conversation *entity.Conversation) ConversationSummary {
	counterpartID := conversation.OtherParticipant(s.selfID)

	return ConversationSummary{
		ID:              conversation.ID,
		PetID:           conversation.PetID,
		CounterpartID:   counterpartID,
		CounterpartName: s.directory.DisplayName(ctx, counterpartID),
		LastMessage:     conversation.LastMessage,
		LastUpdated:     conversation.LastUpdated,
		UnreadCount:     conversation.UnreadCount[s.selfID],
	}
}

// Updates delivers one summary list per underlying snapshot. The channel
// closes when the subscription ends.
func (s *InboxSubscription) Updates() <-chan []ConversationSummary {
	return s.updates
}

// Err reports why the subscription ended, nil after a clean Close.
func (s *InboxSubscription) Err() error {
	return s.stream.Err()
}

func (s *InboxSubscription) Close() {
	s.once.Do(func() {
		close(s.done)
		s.stream.Stop()
	})
}
