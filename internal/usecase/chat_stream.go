package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

// StreamState is the lifecycle of one MessageStreamController. Transitions:
// Idle -> Loading (Open), Loading -> Streaming (first snapshot),
// Loading/Streaming -> Error (stream failure), any -> Closed (Close).
type StreamState int

const (
	StateIdle StreamState = iota
	StateLoading
	StateStreaming
	StateError
	StateClosed
)

func (s StreamState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateStreaming:
		return "streaming"
	case StateError:
		return "error"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// ChatView is the view model handed to the presentation surface. Loading
// distinguishes "still waiting for the first snapshot" from "connected but
// empty": once State is streaming, an empty Messages slice means no history.
type ChatView struct {
	ConversationID string            `json:"conversation_id"`
	Messages       []*entity.Message `json:"messages"`
	Loading        bool              `json:"loading"`
	State          string            `json:"state"`
	Error          string            `json:"error,omitempty"`
}

// MessageStreamController owns the live subscription to one conversation's
// messages. Each snapshot from the store wholly replaces the in-memory list;
// the store's timestamp ordering is trusted as delivered, never re-derived
// from arrival order. A controller is single-use: Open once, Close once;
// switching conversations means closing this controller and opening a new one.
type MessageStreamController struct {
	repo repository.ConversationRepository

	mu             sync.Mutex
	state          StreamState
	conversationID string
	messages       []*entity.Message
	stream         repository.MessageStream
	sendInFlight   bool
	lastErr        error

	onUpdate func(ChatView)
}

func NewMessageStreamController(repo repository.ConversationRepository, onUpdate func(ChatView)) *MessageStreamController {
	return &MessageStreamController{
		repo:     repo,
		state:    StateIdle,
		onUpdate: onUpdate,
	}
}

// Open begins the live subscription. Valid only from Idle.
func (c *MessageStreamController) Open(ctx context.Context, conversationID string) error {
	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return errors.BadRequest("Stream controller is already in use", nil)
	}
	c.state = StateLoading
	c.conversationID = conversationID
	view := c.viewLocked()
	c.mu.Unlock()

	c.emit(view)

	stream, err := c.repo.WatchMessages(ctx, conversationID)
	if err != nil {
		logger.Error("Error loading messages for conversation %s: %v", conversationID, err)
		c.mu.Lock()
		c.state = StateError
		c.lastErr = err
		view := c.viewLocked()
		c.mu.Unlock()
		c.emit(view)
		return err
	}

	c.mu.Lock()
	if c.state == StateClosed {
		// Closed while the watch was being established; release it now.
		c.mu.Unlock()
		stream.Stop()
		return nil
	}
	c.stream = stream
	c.mu.Unlock()

	go c.consume(stream)
	return nil
}

func (c *MessageStreamController) consume(stream repository.MessageStream) {
	for messages := range stream.Snapshots() {
		c.mu.Lock()
		if c.state == StateClosed {
			// A snapshot raced with Close; never apply it to view state.
			c.mu.Unlock()
			return
		}
		if c.state == StateLoading {
			c.state = StateStreaming
		}
		c.messages = messages
		view := c.viewLocked()
		c.mu.Unlock()

		c.emit(view)
	}

	// Snapshot channel closed: either Stop (clean) or a stream failure.
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	if err := stream.Err(); err != nil {
		logger.Error("Message stream failed for conversation %s: %v", c.conversationID, err)
		c.state = StateError
		c.lastErr = err
		view := c.viewLocked()
		c.mu.Unlock()
		c.emit(view)
		return
	}
	c.mu.Unlock()
}

// Close cancels the subscription. Idempotent, and required on every exit
// path; snapshots delivered after Close are discarded, not applied.
func (c *MessageStreamController) Close() {
	c.mu.Lock()
	if c.state == StateClosed {
		c.mu.Unlock()
		return
	}
	c.state = StateClosed
	stream := c.stream
	c.stream = nil
	c.mu.Unlock()

	if stream != nil {
		stream.Stop()
	}
}

// Send appends one message and then patches the conversation preview
// metadata. The two writes are deliberately not a transactional unit: if the
// patch fails after the insert succeeded, the message is durable and only the
// preview is stale until the next successful send.
//
// Empty (post-trim) text is rejected before any store call. At most one send
// may be outstanding per controller; a second concurrent send is rejected,
// not queued.
func (c *MessageStreamController) Send(ctx context.Context, senderID, senderName, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return errors.BadRequest("Message text must not be empty", nil)
	}

	c.mu.Lock()
	if c.state == StateIdle || c.state == StateClosed {
		c.mu.Unlock()
		return errors.BadRequest("Conversation is not open", nil)
	}
	if c.sendInFlight {
		c.mu.Unlock()
		return errors.TooManyRequests("A message send is already in progress")
	}
	c.sendInFlight = true
	conversationID := c.conversationID
	c.mu.Unlock()

	// Release the flag on every outcome so a failed send never locks the
	// controller out of further attempts.
	defer func() {
		c.mu.Lock()
		c.sendInFlight = false
		c.mu.Unlock()
	}()

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		SenderName:     senderName,
		Text:           text,
		Type:           entity.MessageTypeText,
	}

	if err := c.repo.CreateMessage(ctx, message); err != nil {
		logger.Error("Failed to send message in conversation %s: %v", conversationID, err)
		return err
	}

	if err := c.repo.UpdateLastMessage(ctx, conversationID, text, senderID); err != nil {
		logger.Warn("Message %s delivered but conversation %s preview is stale: %v", message.ID, conversationID, err)
	}

	return nil
}

// View returns the current view model. The message slice is shared read-only
// with the presentation layer; snapshots replace it wholesale, so it is never
// mutated in place.
func (c *MessageStreamController) View() ChatView {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *MessageStreamController) State() StreamState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *MessageStreamController) viewLocked() ChatView {
	view := ChatView{
		ConversationID: c.conversationID,
		Messages:       c.messages,
		Loading:        c.state == StateLoading,
		State:          c.state.String(),
	}
	if c.lastErr != nil {
		view.Error = c.lastErr.Error()
	}
	if view.Messages == nil {
		view.Messages = []*entity.Message{}
	}
	return view
}

func (c *MessageStreamController) emit(view ChatView) {
	if c.onUpdate != nil {
		c.onUpdate(view)
	}
}
