package main

import (
	"context"
	"time"

	"chat-relay/infrastructure/http/client"
)

// chatAPI is the server surface the client workers rely on.
type chatAPI interface {
	Poll(since int) (client.PollResult, error)
	Send(username, text string) (client.ChatMessage, error)
	Status() (client.StatusResult, error)
}

// Poller fetches new messages on a fixed interval and prints everything
// posted by other participants. A failed poll is a warning, never an exit:
// the next tick simply tries again with the same cursor.
type Poller struct {
	api      chatAPI
	cursor   *Cursor
	renderer *Renderer
	interval time.Duration
}

func NewPoller(api chatAPI, cursor *Cursor, renderer *Renderer, interval time.Duration) *Poller {
	return &Poller{api: api, cursor: cursor, renderer: renderer, interval: interval}
}

func (p *Poller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.pollOnce()
		}
	}
}

func (p *Poller) pollOnce() {
	result, err := p.api.Poll(p.cursor.Current())
	if err != nil {
		p.renderer.AsyncWarnf("Cannot reach server: %v", err)
		return
	}

	// The author already sees their own line where they typed it.
	me := p.renderer.Username()
	incoming := make([]client.ChatMessage, 0, len(result.Messages))
	for _, message := range result.Messages {
		if message.Username == me {
			continue
		}
		incoming = append(incoming, message)
	}

	if len(incoming) > 0 {
		p.renderer.PrintIncoming(incoming)
	}
	p.cursor.AdvanceTo(result.Count - 1)
}
