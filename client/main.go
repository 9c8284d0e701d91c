package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"chat-relay/infrastructure/http/client"
	"chat-relay/runtime/workers"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes for the client application.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const (
	defaultUsername    = "Anonymous"
	recentPreviewLimit = 10
)

func main() {
	// The main function manages the OS exit code based on run()'s return.
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the two client activities, polling and reading input, under
// one supervisor. Either /quit or a termination signal stops both.
func run() (int, error) {
	// 1. Load configuration from environment variables, flag wins over env.
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	serverFlag := flag.String("server", "", "chat server base URL (overrides CHAT_SERVER_URL)")
	flag.Parse()
	if *serverFlag != "" {
		config.ServerURL = *serverFlag
	}

	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Setup context to handle termination signals (Ctrl+C).
	// quit gives the console a way to stop everything on /quit.
	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(signalCtx)
	defer quit()

	api := client.NewAPI(config.ServerURL, config.HTTPTimeout)
	scanner := bufio.NewScanner(os.Stdin)
	renderer := NewRenderer(os.Stdout, defaultUsername, config.ServerURL)

	// 3. Check the server once. A dead server is only a warning here,
	// the poller keeps retrying on its own.
	renderer.Banner()
	if status, err := api.Status(); err != nil {
		renderer.Warnf("Server unreachable at %s, will keep retrying: %v", config.ServerURL, err)
	} else {
		renderer.Infof("Connected, %d messages so far", status.MessageCount)
	}

	// 4. Ask for a display name before the workers own the terminal.
	renderer.SetUsername(promptUsername(scanner))

	// 5. Show the tail of the room before going live.
	cursor := NewCursor()
	showRecent(api, renderer, cursor)

	// 6. Poll and read input as two independent supervised workers.
	poller := NewPoller(api, cursor, renderer, config.PollInterval)
	console := NewConsole(api, cursor, renderer, scanner, quit)

	supervisor := workers.NewSupervisor(log)
	supervisor.Add(poller, console).Run(ctx)

	return exitOK, nil
}

func promptUsername(scanner *bufio.Scanner) string {
	fmt.Printf("Enter your name (default %s): ", defaultUsername)
	if !scanner.Scan() {
		return defaultUsername
	}
	name := strings.TrimSpace(scanner.Text())
	if name == "" {
		return defaultUsername
	}
	return name
}

// showRecent previews the last few messages so a joining user has context.
func showRecent(api *client.API, renderer *Renderer, cursor *Cursor) {
	result, err := api.Poll(cursor.Current())
	if err != nil {
		renderer.Warnf("Could not fetch history: %v", err)
		return
	}

	messages := result.Messages
	if len(messages) > recentPreviewLimit {
		messages = messages[len(messages)-recentPreviewLimit:]
	}
	if len(messages) > 0 {
		renderer.Infof("Recent messages:")
		renderer.PrintHistory(messages)
	}
	cursor.AdvanceTo(result.Count - 1)
}
