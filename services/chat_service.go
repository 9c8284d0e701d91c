//go:generate go run go.uber.org/mock/mockgen -source=chat_service.go -destination=../mocks/mock_chat_service.go -package=mocks
package services

import (
	"fmt"
	"log/slog"
	"time"

	"chat-relay/domain"
	"chat-relay/observability"
	"chat-relay/repositories"
)

const StatusOnline = "online"

type IChatService interface {
	PostMessage(cmd domain.PostMessageCommand) (domain.Message, error)
	ListMessages(cmd domain.ListMessagesCommand) ([]domain.Message, int)
	Status() (string, int)
}

// ChatService is the application layer between transport and the log.
// It owns traffic accounting and the console echo; the repository stays
// silent and the handlers stay thin.
type ChatService struct {
	log     *slog.Logger
	store   repositories.IMessageRepository
	metrics *observability.Metrics
}

func NewChatService(log *slog.Logger, store repositories.IMessageRepository,
	metrics *observability.Metrics) *ChatService {
	return &ChatService{log: log, store: store, metrics: metrics}
}

func (s *ChatService) PostMessage(cmd domain.PostMessageCommand) (domain.Message, error) {
	message, err := s.store.Append(cmd.Username, cmd.Text)
	if err != nil {
		s.metrics.IncrMessagesRejected()
		return domain.Message{}, err
	}

	s.metrics.IncrMessagesAppended()
	s.log.Info(fmt.Sprintf("[%s] %s: %s",
		message.CreatedAt.Format(time.DateTime), message.Username, message.Text))
	return message, nil
}

func (s *ChatService) ListMessages(cmd domain.ListMessagesCommand) ([]domain.Message, int) {
	s.metrics.IncrPollsServed()
	return s.store.ListSince(cmd.Cursor)
}

func (s *ChatService) Status() (string, int) {
	s.metrics.IncrStatusChecks()
	return StatusOnline, s.store.Count()
}
