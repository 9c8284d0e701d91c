package domain

import (
	"testing"

	"chat-relay/errors"

	"github.com/stretchr/testify/require"
)

func TestValidatePost(t *testing.T) {
	tests := []struct {
		name     string
		username string
		text     string
		expected error
	}{
		{
			name:     "Valid command",
			username: "alice",
			text:     "hello",
			expected: nil,
		},
		{
			name:     "Empty username",
			username: "",
			text:     "hello",
			expected: errors.ErrEmptyUsername,
		},
		{
			name:     "Whitespace only username",
			username: "   \t",
			text:     "hello",
			expected: errors.ErrEmptyUsername,
		},
		{
			name:     "Empty message",
			username: "alice",
			text:     "",
			expected: errors.ErrEmptyMessage,
		},
		{
			name:     "Whitespace only message",
			username: "alice",
			text:     " \n ",
			expected: errors.ErrEmptyMessage,
		},
		{
			name:     "Both empty reports username first",
			username: " ",
			text:     " ",
			expected: errors.ErrEmptyUsername,
		},
		{
			name:     "Unicode content is opaque",
			username: "Żółć",
			text:     "héllo 👋 世界",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			cmd := PostMessageCommand{Username: tt.username, Text: tt.text}.Normalized()
			err := ValidatePost(cmd)
			if tt.expected == nil {
				req.NoError(err)
				return
			}
			req.ErrorIs(err, tt.expected)
		})
	}
}

func TestNormalized_TrimsSurroundingWhitespaceOnly(t *testing.T) {
	req := require.New(t)

	cmd := PostMessageCommand{Username: "  bob \t", Text: "  keep   inner   spacing  "}.Normalized()

	req.Equal("bob", cmd.Username)
	req.Equal("keep   inner   spacing", cmd.Text)
}
