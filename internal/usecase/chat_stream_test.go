package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/internal/domain/entity"
	"github.com/shaikh-arish-iqbal/pawthway-pet-adoption-system-sub000/pkg/errors"
)

// viewRecorder collects emitted views so tests can wait for them without
// racing the consume goroutine.
type viewRecorder struct {
	mu    sync.Mutex
	views []ChatView
	ch    chan ChatView
}

func newViewRecorder() *viewRecorder {
	return &viewRecorder{ch: make(chan ChatView, 16)}
}

func (r *viewRecorder) record(view ChatView) {
	r.mu.Lock()
	r.views = append(r.views, view)
	r.mu.Unlock()
	r.ch <- view
}

func (r *viewRecorder) next(t *testing.T) ChatView {
	t.Helper()
	select {
	case view := <-r.ch:
		return view
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a view update")
		return ChatView{}
	}
}

func (r *viewRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.views)
}

func testMessages(texts ...string) []*entity.Message {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	messages := make([]*entity.Message, 0, len(texts))
	for i, text := range texts {
		messages = append(messages, &entity.Message{
			ID:        fmt.Sprintf("m%d", i+1),
			SenderID:  "u1",
			Text:      text,
			Type:      entity.MessageTypeText,
			Timestamp: base.Add(time.Duration(i) * time.Second),
		})
	}
	return messages
}

func TestStreamControllerLoadingThenStreaming(t *testing.T) {
	repo := newFakeConversationRepo()
	recorder := newViewRecorder()
	controller := NewMessageStreamController(repo, recorder.record)

	require.NoError(t, controller.Open(context.Background(), "c1"))

	loading := recorder.next(t)
	assert.True(t, loading.Loading)
	assert.Equal(t, "loading", loading.State)
	assert.Empty(t, loading.Messages)

	repo.stream.push(testMessages("hello"))

	streaming := recorder.next(t)
	assert.False(t, streaming.Loading)
	assert.Equal(t, "streaming", streaming.State)
	require.Len(t, streaming.Messages, 1)
	assert.Equal(t, "hello", streaming.Messages[0].Text)
}

func TestStreamControllerSnapshotReplacesWholeList(t *testing.T) {
	repo := newFakeConversationRepo()
	recorder := newViewRecorder()
	controller := NewMessageStreamController(repo, recorder.record)

	require.NoError(t, controller.Open(context.Background(), "c1"))
	recorder.next(t) // loading

	repo.stream.push(testMessages("a", "b", "c"))
	first := recorder.next(t)
	require.Len(t, first.Messages, 3)

	// The next snapshot is smaller; the list must shrink, not merge.
	repo.stream.push(testMessages("a", "b"))
	second := recorder.next(t)
	require.Len(t, second.Messages, 2)
	assert.Equal(t, "a", second.Messages[0].Text)
	assert.Equal(t, "b", second.Messages[1].Text)

	// Delivered order is trusted as-is: timestamps ascend within a snapshot.
	for i := 1; i < len(second.Messages); i++ {
		assert.True(t, second.Messages[i].Timestamp.After(second.Messages[i-1].Timestamp))
	}
}

func TestStreamControllerOpenTwiceRejected(t *testing.T) {
	repo := newFakeConversationRepo()
	controller := NewMessageStreamController(repo, nil)

	require.NoError(t, controller.Open(context.Background(), "c1"))
	err := controller.Open(context.Background(), "c1")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestSendRejectsEmptyText(t *testing.T) {
	repo := newFakeConversationRepo()
	controller := NewMessageStreamController(repo, nil)
	require.NoError(t, controller.Open(context.Background(), "c1"))

	for _, text := range []string{"", "   ", "\n\t "} {
		err := controller.Send(context.Background(), "u1", "Ana", text)
		assert.True(t, errors.Is(err, "BAD_REQUEST"), "text %q must be rejected", text)
	}

	assert.Equal(t, 0, repo.createMessageCalls, "the store must not be invoked for empty text")
}

func TestSendRejectsWhenNotOpen(t *testing.T) {
	repo := newFakeConversationRepo()
	controller := NewMessageStreamController(repo, nil)

	err := controller.Send(context.Background(), "u1", "Ana", "hi")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	assert.Equal(t, 0, repo.createMessageCalls)
}

func TestSendSingleInFlight(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.createMessageEntered = make(chan struct{}, 1)
	repo.createMessageGate = make(chan struct{})

	controller := NewMessageStreamController(repo, nil)
	require.NoError(t, controller.Open(context.Background(), "c1"))

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- controller.Send(context.Background(), "u1", "Ana", "first")
	}()

	// Wait until the first send is inside the store call, then try a second.
	<-repo.createMessageEntered
	err := controller.Send(context.Background(), "u1", "Ana", "second")
	assert.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))

	close(repo.createMessageGate)
	require.NoError(t, <-firstDone)

	assert.Equal(t, 1, repo.messageCount("c1"), "the rejected send must not create a message")

	// The flag is released; a later send goes through.
	require.NoError(t, controller.Send(context.Background(), "u1", "Ana", "third"))
	assert.Equal(t, 2, repo.messageCount("c1"))
}

func TestSendReleasesFlagAfterFailure(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.createMessageErr = errors.Internal("store down", nil)

	controller := NewMessageStreamController(repo, nil)
	require.NoError(t, controller.Open(context.Background(), "c1"))

	err := controller.Send(context.Background(), "u1", "Ana", "hi")
	require.Error(t, err)

	repo.mu.Lock()
	repo.createMessageErr = nil
	repo.mu.Unlock()

	assert.NoError(t, controller.Send(context.Background(), "u1", "Ana", "hi again"))
}

func TestSendSucceedsWhenPreviewPatchFails(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.updateLastMessageErr = errors.Internal("patch failed", nil)

	controller := NewMessageStreamController(repo, nil)
	require.NoError(t, controller.Open(context.Background(), "c1"))

	assert.NoError(t, controller.Send(context.Background(), "u1", "Ana", "hi"))
	assert.Equal(t, 1, repo.messageCount("c1"), "the message insert must survive a preview patch failure")
}

func TestCloseDiscardsLateSnapshots(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.stream = newFakeMessageStream()
	// Keep the channel open after Stop so a post-close snapshot can be
	// injected.
	repo.stream.closeOnStop = false

	recorder := newViewRecorder()
	controller := NewMessageStreamController(repo, recorder.record)

	require.NoError(t, controller.Open(context.Background(), "c1"))
	recorder.next(t) // loading

	repo.stream.push(testMessages("hello"))
	recorder.next(t)

	controller.Close()
	emitted := recorder.count()

	repo.stream.push(testMessages("hello", "late"))
	close(repo.stream.ch)

	// Give the consume goroutine a chance to misbehave.
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, emitted, recorder.count(), "no view may be emitted after Close")
	view := controller.View()
	assert.Equal(t, "closed", view.State)
	assert.Len(t, view.Messages, 1, "a post-close snapshot must not be applied")
}

func TestCloseIsIdempotent(t *testing.T) {
	repo := newFakeConversationRepo()
	controller := NewMessageStreamController(repo, nil)
	require.NoError(t, controller.Open(context.Background(), "c1"))

	controller.Close()
	controller.Close()
	assert.Equal(t, StateClosed, controller.State())
}

func TestStreamFailureMovesToError(t *testing.T) {
	repo := newFakeConversationRepo()
	repo.stream = newFakeMessageStream()

	recorder := newViewRecorder()
	controller := NewMessageStreamController(repo, recorder.record)

	require.NoError(t, controller.Open(context.Background(), "c1"))
	recorder.next(t) // loading

	repo.stream.fail(errors.Internal("listener lost", nil))

	view := recorder.next(t)
	assert.Equal(t, "error", view.State)
	assert.NotEmpty(t, view.Error)
	assert.Equal(t, StateError, controller.State())
}
