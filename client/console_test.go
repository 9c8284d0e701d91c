package main

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"chat-relay/infrastructure/http/client"

	"github.com/stretchr/testify/require"
)

// newTestConsole feeds the console from a scripted stdin. The returned
// context is the one the console cancels on /quit or EOF.
func newTestConsole(api chatAPI, input string, out *bytes.Buffer) (*Console, *Cursor, context.Context) {
	ctx, cancel := context.WithCancel(context.Background())
	cursor := NewCursor()
	renderer := NewRenderer(out, "alice", "http://localhost:8080")
	scanner := bufio.NewScanner(strings.NewReader(input))
	return NewConsole(api, cursor, renderer, scanner, cancel), cursor, ctx
}

func Test_Console_SendsPlainTextWithCurrentName(t *testing.T) {
	req := require.New(t)
	var gotUsername, gotText string
	api := &fakeAPI{
		send: func(username, text string) (client.ChatMessage, error) {
			gotUsername, gotText = username, text
			return client.ChatMessage{Index: 0, Username: username, Message: text}, nil
		},
	}
	console, _, ctx := newTestConsole(api, "hello there\n", &bytes.Buffer{})

	req.NoError(console.Run(ctx))

	req.Equal("alice", gotUsername)
	req.Equal("hello there", gotText)
	// Stdin closing behaves like /quit and stops the poller too.
	req.ErrorIs(ctx.Err(), context.Canceled)
}

func Test_Console_NameChangeAppliesToNextSend(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}
	var gotUsername string
	api := &fakeAPI{
		send: func(username, text string) (client.ChatMessage, error) {
			gotUsername = username
			return client.ChatMessage{}, nil
		},
	}
	console, _, ctx := newTestConsole(api, "/name bob\nhello\n", out)

	req.NoError(console.Run(ctx))

	req.Equal("bob", gotUsername)
	req.Contains(out.String(), "You are now bob")
}

func Test_Console_NameWithoutArgumentKeepsCurrent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "bare command", input: "/name\nhello\n"},
		{name: "spaces only", input: "/name   \nhello\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			out := &bytes.Buffer{}
			var gotUsername string
			api := &fakeAPI{
				send: func(username, text string) (client.ChatMessage, error) {
					gotUsername = username
					return client.ChatMessage{}, nil
				},
			}
			console, _, ctx := newTestConsole(api, tt.input, out)

			req.NoError(console.Run(ctx))

			req.Contains(out.String(), "Usage: /name")
			req.Equal("alice", gotUsername)
		})
	}
}

func Test_Console_QuitCommandsStopEverything(t *testing.T) {
	for _, command := range []string{"/quit", "/exit"} {
		t.Run(command, func(t *testing.T) {
			req := require.New(t)
			out := &bytes.Buffer{}
			sent := false
			api := &fakeAPI{
				send: func(username, text string) (client.ChatMessage, error) {
					sent = true
					return client.ChatMessage{}, nil
				},
			}
			console, _, ctx := newTestConsole(api, command+"\nnever sent\n", out)

			req.NoError(console.Run(ctx))

			req.ErrorIs(ctx.Err(), context.Canceled)
			req.False(sent)
			req.Contains(out.String(), "Bye!")
		})
	}
}

func Test_Console_HistoryReplaysAndAdvancesCursor(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}
	var asked int
	api := &fakeAPI{
		poll: func(since int) (client.PollResult, error) {
			asked = since
			return client.PollResult{
				Messages: []client.ChatMessage{
					{Index: 0, Username: "alice", Message: "first", Timestamp: "2025-03-01 12:00:00"},
					{Index: 1, Username: "bob", Message: "second", Timestamp: "2025-03-01 12:00:02"},
					{Index: 2, Username: "bob", Message: "third", Timestamp: "2025-03-01 12:00:04"},
				},
				Count: 3,
			}, nil
		},
	}
	console, cursor, ctx := newTestConsole(api, "/history\n", out)

	req.NoError(console.Run(ctx))

	// History always replays from the beginning, own messages included.
	req.Equal(-1, asked)
	req.Contains(out.String(), "first")
	req.Contains(out.String(), "third")
	req.Equal(2, cursor.Current())
}

func Test_Console_StatusPrintsServerReport(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}
	api := &fakeAPI{
		status: func() (client.StatusResult, error) {
			return client.StatusResult{Status: "online", MessageCount: 7}, nil
		},
	}
	console, _, ctx := newTestConsole(api, "/status\n", out)

	req.NoError(console.Run(ctx))

	req.Contains(out.String(), "online")
	req.Contains(out.String(), "7 messages")
}

func Test_Console_SendFailureIsNotFatal(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}
	attempts := 0
	api := &fakeAPI{
		send: func(username, text string) (client.ChatMessage, error) {
			attempts++
			return client.ChatMessage{}, fmt.Errorf("connection refused")
		},
	}
	console, _, ctx := newTestConsole(api, "hello\nworld\n", out)

	req.NoError(console.Run(ctx))

	req.Equal(2, attempts)
	req.Contains(out.String(), "Send failed")
}

func Test_Console_UnknownCommandWarns(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}
	sent := false
	api := &fakeAPI{
		send: func(username, text string) (client.ChatMessage, error) {
			sent = true
			return client.ChatMessage{}, nil
		},
	}
	console, _, ctx := newTestConsole(api, "/frobnicate\n", out)

	req.NoError(console.Run(ctx))

	req.Contains(out.String(), "Unknown command /frobnicate")
	req.False(sent)
}

func Test_Console_BlankLinesAreIgnored(t *testing.T) {
	req := require.New(t)
	api := &fakeAPI{
		send: func(username, text string) (client.ChatMessage, error) {
			t.Error("blank input must never be sent")
			return client.ChatMessage{}, nil
		},
	}
	console, _, ctx := newTestConsole(api, "\n   \n\t\n", &bytes.Buffer{})

	req.NoError(console.Run(ctx))
}

func Test_Console_ClearRedrawsBanner(t *testing.T) {
	req := require.New(t)
	out := &bytes.Buffer{}
	console, _, ctx := newTestConsole(&fakeAPI{}, "/clear\n", out)

	req.NoError(console.Run(ctx))

	req.Contains(out.String(), "\033[2J")
	req.Contains(out.String(), "Server: http://localhost:8080")
}
