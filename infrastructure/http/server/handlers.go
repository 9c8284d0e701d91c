package server

import (
	_ "embed"
	"strconv"

	"chat-relay/domain"
	"chat-relay/errors"

	"github.com/gofiber/fiber/v2"
)

// defaultCursor selects the whole log when the caller sends no cursor.
const defaultCursor = -1

//go:embed chat.html
var chatPage string

func (s *Server) handleHome(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(chatPage)
}

func (s *Server) handleMessages(c *fiber.Ctx) error {
	cursor := defaultCursor
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return errors.ErrInvalidCursor
		}
		cursor = parsed
	}

	messages, count := s.chatService.ListMessages(domain.ListMessagesCommand{Cursor: cursor})
	return c.JSON(PollResponse{Messages: toMessageDTOs(messages), Count: count})
}

func (s *Server) handleStatus(c *fiber.Ctx) error {
	status, count := s.chatService.Status()
	return c.JSON(StatusResponse{Status: status, MessageCount: count})
}

func (s *Server) handleSend(c *fiber.Ctx) error {
	var req SendRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.ErrInvalidBody
	}

	message, err := s.chatService.PostMessage(domain.PostMessageCommand{
		Username: req.Username,
		Text:     req.Message,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(toMessageDTO(message))
}

func (s *Server) handleUnknownRoute(_ *fiber.Ctx) error {
	return errors.ErrRouteNotFound
}

// renderError is the fiber error handler: every failure becomes an
// {"error": ...} body with the mapped status code.
func (s *Server) renderError(c *fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		// The router answers 405 on a method mismatch; the original
		// surface knows only 404 for anything outside the route table.
		if fiberErr.Code == fiber.StatusMethodNotAllowed || fiberErr.Code == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: messageNotFound})
		}
		return c.Status(fiberErr.Code).JSON(ErrorResponse{Error: fiberErr.Message})
	}

	message := err.Error()
	switch err {
	case errors.ErrRouteNotFound:
		message = messageNotFound
	case errors.ErrInvalidBody:
		message = messageInvalidJSON
	}
	status := errors.HTTPStatus(err)
	if status == fiber.StatusInternalServerError {
		// Internal detail goes to the log, never onto the wire.
		s.log.Error("Unhandled error", "error", err, "path", c.Path())
		message = messageInternal
	}
	return c.Status(status).JSON(ErrorResponse{Error: message})
}

const (
	messageNotFound    = "Not found"
	messageInvalidJSON = "Invalid JSON"
	messageInternal    = "Internal server error"
)
