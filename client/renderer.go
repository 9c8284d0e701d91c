package main

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"chat-relay/infrastructure/http/client"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

// Renderer serializes all terminal output so an arriving message never
// tears a half-typed prompt. It also owns the display name, which is
// shown in the prompt and used to filter own messages out of polls.
type Renderer struct {
	mu        sync.Mutex
	out       io.Writer
	username  string
	serverURL string
}

func NewRenderer(out io.Writer, username, serverURL string) *Renderer {
	return &Renderer{out: out, username: username, serverURL: serverURL}
}

func (r *Renderer) Username() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.username
}

func (r *Renderer) SetUsername(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.username = username
}

func (r *Renderer) Banner() {
	r.mu.Lock()
	defer r.mu.Unlock()
	header := color.New(color.BgBlack, color.FgGreen).Render("  ====== CHAT RELAY ======  ")
	fmt.Fprintln(r.out, header)
	fmt.Fprintf(r.out, "Server: %s\n", r.serverURL)
	fmt.Fprintln(r.out, "Commands: /name <newname>  /status  /history  /clear  /quit")
}

// Clear wipes the terminal and reprints the banner.
func (r *Renderer) Clear() {
	r.mu.Lock()
	fmt.Fprint(r.out, "\033[2J\033[H")
	r.mu.Unlock()
	r.Banner()
}

// PrintIncoming renders messages from other participants arriving mid-input
// and restores the prompt afterwards.
func (r *Renderer) PrintIncoming(messages []client.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out)
	for _, message := range messages {
		fmt.Fprintf(r.out, "[%s] %s: %s\n",
			message.Timestamp, color.Cyan.Render(message.Username), message.Message)
	}
	r.printPrompt()
}

// PrintHistory renders a full log window as a borderless table.
func (r *Renderer) PrintHistory(messages []client.ChatMessage) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"#", "Time", "User", "Message"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, message := range messages {
		table.Append([]string{
			strconv.Itoa(message.Index),
			message.Timestamp,
			message.Username,
			message.Message,
		})
	}
	table.Render()
}

func (r *Renderer) PrintStatus(status client.StatusResult) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "Server is %s, %d messages\n",
		color.Green.Render(status.Status), status.MessageCount)
}

func (r *Renderer) Infof(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, format+"\n", args...)
}

func (r *Renderer) Warnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, color.Yellow.Render(fmt.Sprintf(format, args...)))
}

// AsyncWarnf is Warnf for output racing the prompt, from the poller.
func (r *Renderer) AsyncWarnf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, color.Yellow.Render(fmt.Sprintf(format, args...)))
	r.printPrompt()
}

func (r *Renderer) Prompt() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.printPrompt()
}

func (r *Renderer) printPrompt() {
	fmt.Fprint(r.out, color.Green.Render(r.username+"> "))
}
