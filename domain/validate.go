package domain

import (
	"strings"

	"chat-relay/errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type postMessageRules struct {
	Username string `validate:"required"`
	Text     string `validate:"required"`
}

// Normalized returns the command with surrounding whitespace trimmed.
// Trimming is the only transformation ever applied to user content.
func (p PostMessageCommand) Normalized() PostMessageCommand {
	return PostMessageCommand{
		Username: strings.TrimSpace(p.Username),
		Text:     strings.TrimSpace(p.Text),
	}
}

// ValidatePost checks a normalized command. Content is otherwise opaque:
// duplicates, any unicode and any length are accepted.
func ValidatePost(cmd PostMessageCommand) error {
	err := validate.Struct(postMessageRules(cmd))
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	for _, fieldErr := range fieldErrs {
		switch fieldErr.Field() {
		case "Username":
			return errors.ErrEmptyUsername
		case "Text":
			return errors.ErrEmptyMessage
		}
	}
	return err
}
