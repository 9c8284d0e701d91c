//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"sync"
	"time"

	"chat-relay/domain"
)

type IMessageRepository interface {
	Append(username, text string) (domain.Message, error)
	ListSince(cursor int) ([]domain.Message, int)
	Count() int
}

// MessageRepository is the in-memory, append-only message log.
// One RWMutex guards the backing slice: writers take the write lock for the
// whole index-assign-and-append step, readers copy under the read lock.
// The message at position i always carries Index == i.
type MessageRepository struct {
	mu  sync.RWMutex
	log []domain.Message
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

// Append validates the author and text, then stores the message with the
// next contiguous index and a server-side timestamp. A rejected message
// leaves the log untouched.
func (m *MessageRepository) Append(username, text string) (domain.Message, error) {
	cmd := domain.PostMessageCommand{Username: username, Text: text}.Normalized()
	if err := domain.ValidatePost(cmd); err != nil {
		return domain.Message{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	message := domain.Message{
		Index:     len(m.log),
		Username:  cmd.Username,
		Text:      cmd.Text,
		CreatedAt: time.Now(),
	}
	m.log = append(m.log, message)
	return message, nil
}

// ListSince returns a copy of every message with an index greater than
// cursor, oldest first, plus the current log length. Any negative cursor
// means "from the beginning". The copy shares no memory with the log, so
// callers can hold the result while writers keep appending.
func (m *MessageRepository) ListSince(cursor int) ([]domain.Message, int) {
	if cursor < -1 {
		cursor = -1
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	count := len(m.log)
	start := cursor + 1
	// cursor+1 overflows to a negative start when cursor is math.MaxInt,
	// which reads the same as a cursor past the end: nothing new.
	if start < 0 || start > count {
		start = count
	}
	window := make([]domain.Message, count-start)
	copy(window, m.log[start:])
	return window, count
}

func (m *MessageRepository) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.log)
}
