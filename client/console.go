package main

import (
	"bufio"
	"context"
	"strings"
)

// Console owns the terminal input: plain lines are sent as messages,
// slash commands are handled locally. The actual reading happens in a
// feeder goroutine so a shutdown never blocks on a pending read.
type Console struct {
	api      chatAPI
	cursor   *Cursor
	renderer *Renderer
	scanner  *bufio.Scanner
	quit     context.CancelFunc
}

func NewConsole(api chatAPI, cursor *Cursor, renderer *Renderer,
	scanner *bufio.Scanner, quit context.CancelFunc) *Console {
	return &Console{api: api, cursor: cursor, renderer: renderer, scanner: scanner, quit: quit}
}

func (c *Console) Run(ctx context.Context) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		for c.scanner.Scan() {
			select {
			case lines <- c.scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	c.renderer.Prompt()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				// EOF on stdin behaves like /quit.
				c.quit()
				return nil
			}
			if leaving := c.handleLine(line); leaving {
				c.quit()
				return nil
			}
			c.renderer.Prompt()
		}
	}
}

// handleLine dispatches one input line and reports whether the user left.
func (c *Console) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return false
	case strings.HasPrefix(line, "/"):
		return c.handleCommand(line)
	default:
		c.send(line)
		return false
	}
}

func (c *Console) handleCommand(line string) bool {
	command := strings.Fields(line)[0]
	switch command {
	case "/quit", "/exit":
		c.renderer.Infof("Bye!")
		return true
	case "/name":
		c.switchName(strings.TrimSpace(strings.TrimPrefix(line, "/name")))
	case "/status":
		c.showStatus()
	case "/history":
		c.showHistory()
	case "/clear":
		c.renderer.Clear()
	default:
		c.renderer.Warnf("Unknown command %s (try /name, /status, /history, /clear, /quit)", command)
	}
	return false
}

func (c *Console) switchName(newName string) {
	if newName == "" {
		c.renderer.Warnf("Usage: /name <newname>")
		return
	}
	c.renderer.SetUsername(newName)
	c.renderer.Infof("You are now %s", newName)
}

func (c *Console) send(text string) {
	if _, err := c.api.Send(c.renderer.Username(), text); err != nil {
		c.renderer.Warnf("Send failed: %v", err)
	}
}

func (c *Console) showStatus() {
	status, err := c.api.Status()
	if err != nil {
		c.renderer.Warnf("Status failed: %v", err)
		return
	}
	c.renderer.PrintStatus(status)
}

// showHistory replays the whole log, own messages included, as a one-off
// full fetch. Advancing the cursor afterwards keeps the poller from
// printing the same backlog again.
func (c *Console) showHistory() {
	result, err := c.api.Poll(-1)
	if err != nil {
		c.renderer.Warnf("History failed: %v", err)
		return
	}
	c.renderer.PrintHistory(result.Messages)
	c.cursor.AdvanceTo(result.Count - 1)
}
