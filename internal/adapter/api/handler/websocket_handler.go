package handler

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	gorillaws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/adapter/api/middleware"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/repository"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/infrastructure/realtime"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/usecase"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/logger"
)

// Frame types exchanged over the chat WebSocket.
const (
	frameTypePing           = "ping"
	frameTypePong           = "pong"
	frameTypeOpenChat       = "open_chat"
	frameTypeCloseChat      = "close_chat"
	frameTypeSendMessage    = "send_message"
	frameTypeChatView       = "chat_view"
	frameTypeSubscribeInbox = "subscribe_inbox"
	frameTypeInbox          = "inbox"
	frameTypeMarkRead       = "mark_read"
	frameTypeError          = "error"
)

type wsFrame struct {
	Type           string          `json:"type"`
	ConversationID string          `json:"conversation_id,omitempty"`
	Data           json.RawMessage `json:"data,omitempty"`
	Timestamp      string          `json:"timestamp,omitempty"`
}

type wsOutFrame struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp string      `json:"timestamp"`
}

type WebSocketHandler struct {
	hub            *realtime.Hub
	chatUseCase    *usecase.ChatUseCase
	userRepo       repository.UserRepository
	shelterRepo    repository.ShelterRepository
	authMiddleware *middleware.AuthMiddleware
}

var upgrader = gorillaws.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Restrict in production deployments.
	},
}

func NewWebSocketHandler(
	hub *realtime.Hub,
	chatUseCase *usecase.ChatUseCase,
	userRepo repository.UserRepository,
	shelterRepo repository.ShelterRepository,
	authMiddleware *middleware.AuthMiddleware,
) *WebSocketHandler {
	return &WebSocketHandler{
		hub:            hub,
		chatUseCase:    chatUseCase,
		userRepo:       userRepo,
		shelterRepo:    shelterRepo,
		authMiddleware: authMiddleware,
	}
}

// HandleWebSocket authenticates the handshake (token query param, since
// browsers cannot set headers on WebSocket upgrades) and runs the connection.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return errors.Unauthorized("Authentication token required", nil)
	}

	userID, err := h.authMiddleware.GetUIDFromToken(c.Request().Context(), token)
	if err != nil {
		return errors.Unauthorized("Invalid or expired token", err)
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return errors.Internal("Failed to upgrade connection", err)
	}

	client := realtime.NewClient(userID, conn)
	h.hub.Register <- client

	session := newChatSession(h, client)

	go client.WritePump()
	go func() {
		defer session.teardown()
		client.ReadPump(h.hub, session.handleFrame)
	}()

	return nil
}

// chatSession owns the live chat resources of one connection: at most one
// open message stream and at most one inbox subscription. Both are torn down
// when the connection drops.
type chatSession struct {
	handler *handlerRefs
	client  *realtime.Client

	ctx    context.Context
	cancel context.CancelFunc

	controller *usecase.MessageStreamController
	inbox      *usecase.InboxSubscription
}

// handlerRefs keeps chatSession decoupled from echo.Context lifetimes.
type handlerRefs struct {
	hub         *realtime.Hub
	chatUseCase *usecase.ChatUseCase
	userRepo    repository.UserRepository
	shelterRepo repository.ShelterRepository
}

func newChatSession(h *WebSocketHandler, client *realtime.Client) *chatSession {
	ctx, cancel := context.WithCancel(context.Background())
	return &chatSession{
		handler: &handlerRefs{
			hub:         h.hub,
			chatUseCase: h.chatUseCase,
			userRepo:    h.userRepo,
			shelterRepo: h.shelterRepo,
		},
		client: client,
		ctx:    ctx,
		cancel: cancel,
	}
}

func (s *chatSession) handleFrame(raw []byte) {
	var frame wsFrame
	if err := json.Unmarshal(raw, &frame); err != nil {
		s.sendError("Invalid frame format")
		return
	}

	switch frame.Type {
	case frameTypePing:
		s.send(frameTypePong, map[string]string{"status": "alive"})

	case frameTypeOpenChat:
		s.openChat(frame.ConversationID)

	case frameTypeCloseChat:
		s.closeChat()

	case frameTypeSendMessage:
		s.sendMessage(frame)

	case frameTypeSubscribeInbox:
		s.subscribeInbox()

	case frameTypeMarkRead:
		s.markRead(frame.ConversationID)

	default:
		logger.Debug("Unknown frame type %q from client %s", frame.Type, s.client.UserID)
		s.sendError("Unknown frame type")
	}
}

// openChat switches the connection onto a conversation. Any previously open
// stream is closed first; one connection views one conversation at a time.
func (s *chatSession) openChat(conversationID string) {
	if conversationID == "" {
		s.sendError("Missing conversation_id")
		return
	}

	if _, err := s.handler.chatUseCase.GetConversation(s.ctx, s.client.UserID, conversationID); err != nil {
		s.sendError(userMessage(err))
		return
	}

	if s.controller != nil {
		s.controller.Close()
	}

	s.controller = s.handler.chatUseCase.NewMessageStream(func(view usecase.ChatView) {
		s.send(frameTypeChatView, view)
	})
	s.handler.hub.JoinRoom(s.client, conversationID)

	if err := s.controller.Open(s.ctx, conversationID); err != nil {
		s.sendError(userMessage(err))
	}
}

func (s *chatSession) closeChat() {
	if s.controller == nil {
		return
	}

	view := s.controller.View()
	if view.ConversationID != "" {
		s.handler.hub.LeaveRoom(s.client, view.ConversationID)
	}
	s.controller.Close()
	s.controller = nil
}

func (s *chatSession) sendMessage(frame wsFrame) {
	if s.controller == nil {
		s.sendError("No conversation is open")
		return
	}

	var data struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(frame.Data, &data); err != nil {
		s.sendError("Invalid send_message data")
		return
	}

	senderName := s.displayName(s.client.UserID)

	if err := s.controller.Send(s.ctx, s.client.UserID, senderName, data.Text); err != nil {
		s.sendError(userMessage(err))
	}
}

func (s *chatSession) subscribeInbox() {
	if s.inbox != nil {
		return
	}

	inbox, err := s.handler.chatUseCase.SubscribeInbox(s.ctx, s.client.UserID)
	if err != nil {
		s.sendError(userMessage(err))
		return
	}
	s.inbox = inbox

	go func() {
		for summaries := range inbox.Updates() {
			s.send(frameTypeInbox, summaries)
		}
		if err := inbox.Err(); err != nil {
			logger.Warn("Inbox subscription for %s ended: %v", s.client.UserID, err)
			s.sendError("Inbox subscription lost")
		}
	}()
}

func (s *chatSession) markRead(conversationID string) {
	if conversationID == "" {
		s.sendError("Missing conversation_id")
		return
	}

	if err := s.handler.chatUseCase.MarkConversationRead(s.ctx, s.client.UserID, conversationID); err != nil {
		s.sendError(userMessage(err))
	}
}

func (s *chatSession) teardown() {
	s.closeChat()
	if s.inbox != nil {
		s.inbox.Close()
		s.inbox = nil
	}
	s.cancel()
}

func (s *chatSession) displayName(id string) string {
	if user, err := s.handler.userRepo.GetByID(s.ctx, id); err == nil {
		return user.DisplayName
	}
	if shelter, err := s.handler.shelterRepo.GetByID(s.ctx, id); err == nil {
		return shelter.Name
	}
	return "Unknown participant"
}

func (s *chatSession) send(frameType string, data interface{}) {
	payload, err := json.Marshal(wsOutFrame{
		Type:      frameType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Error("Failed to marshal %s frame for %s: %v", frameType, s.client.UserID, err)
		return
	}

	s.handler.hub.SendToClient(s.client, payload)
}

func (s *chatSession) sendError(message string) {
	s.send(frameTypeError, map[string]string{"error": message})
}

// userMessage strips internal detail before an error crosses the socket.
func userMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) {
		return appErr.Message
	}
	return "Something went wrong"
}
