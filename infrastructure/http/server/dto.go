package server

import (
	"time"

	"chat-relay/domain"

	"github.com/samber/lo"
)

type MessageDTO struct {
	Index     int    `json:"index"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type SendRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type PollResponse struct {
	Messages []MessageDTO `json:"messages"`
	Count    int          `json:"count"`
}

type StatusResponse struct {
	Status       string `json:"status"`
	MessageCount int    `json:"message_count"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func toMessageDTO(message domain.Message) MessageDTO {
	return MessageDTO{
		Index:     message.Index,
		Username:  message.Username,
		Message:   message.Text,
		Timestamp: message.CreatedAt.Format(time.DateTime),
	}
}

func toMessageDTOs(messages []domain.Message) []MessageDTO {
	return lo.Map(messages, func(message domain.Message, _ int) MessageDTO {
		return toMessageDTO(message)
	})
}
