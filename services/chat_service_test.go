package services

import (
	"log/slog"
	"testing"
	"time"

	"chat-relay/domain"
	"chat-relay/errors"
	"chat-relay/mocks"
	"chat-relay/observability"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestChatService_PostMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should append and count an accepted message", func(t *testing.T) {
		req := require.New(t)
		mockStore := mocks.NewMockIMessageRepository(ctrl)
		metrics := observability.NewMetrics()
		svc := NewChatService(slog.Default(), mockStore, metrics)

		stored := domain.Message{Index: 0, Username: "alice", Text: "hello", CreatedAt: time.Now()}
		mockStore.EXPECT().
			Append("alice", "hello").
			Return(stored, nil).
			Times(1)

		message, err := svc.PostMessage(domain.PostMessageCommand{Username: "alice", Text: "hello"})

		req.NoError(err)
		req.Equal(stored, message)
		req.Equal(uint64(1), metrics.Snapshot().MessagesAppended)
		req.Equal(uint64(0), metrics.Snapshot().MessagesRejected)
	})

	t.Run("should propagate a rejection and count it", func(t *testing.T) {
		req := require.New(t)
		mockStore := mocks.NewMockIMessageRepository(ctrl)
		metrics := observability.NewMetrics()
		svc := NewChatService(slog.Default(), mockStore, metrics)

		mockStore.EXPECT().
			Append("", "hello").
			Return(domain.Message{}, errors.ErrEmptyUsername).
			Times(1)

		_, err := svc.PostMessage(domain.PostMessageCommand{Username: "", Text: "hello"})

		req.ErrorIs(err, errors.ErrEmptyUsername)
		req.Equal(uint64(1), metrics.Snapshot().MessagesRejected)
		req.Equal(uint64(0), metrics.Snapshot().MessagesAppended)
	})
}

func TestChatService_ListMessages(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should delegate the cursor and count the poll", func(t *testing.T) {
		req := require.New(t)
		mockStore := mocks.NewMockIMessageRepository(ctrl)
		metrics := observability.NewMetrics()
		svc := NewChatService(slog.Default(), mockStore, metrics)

		window := []domain.Message{{Index: 3, Username: "bob", Text: "later"}}
		mockStore.EXPECT().
			ListSince(2).
			Return(window, 4).
			Times(1)

		messages, count := svc.ListMessages(domain.ListMessagesCommand{Cursor: 2})

		req.Equal(window, messages)
		req.Equal(4, count)
		req.Equal(uint64(1), metrics.Snapshot().PollsServed)
	})
}

func TestChatService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should report online with the current count", func(t *testing.T) {
		req := require.New(t)
		mockStore := mocks.NewMockIMessageRepository(ctrl)
		metrics := observability.NewMetrics()
		svc := NewChatService(slog.Default(), mockStore, metrics)

		mockStore.EXPECT().Count().Return(0).Times(1)

		status, count := svc.Status()

		req.Equal(StatusOnline, status)
		req.Equal(0, count)
		req.Equal(uint64(1), metrics.Snapshot().StatusChecks)
	})
}
