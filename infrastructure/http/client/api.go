// Package client is the typed HTTP client for the chat server.
// Transport failures come back wrapped in ErrServerUnreachable so callers
// can treat them as transient and keep polling.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chat-relay/errors"
)

// ChatMessage mirrors the wire shape of one log entry.
type ChatMessage struct {
	Index     int    `json:"index"`
	Username  string `json:"username"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

type PollResult struct {
	Messages []ChatMessage `json:"messages"`
	Count    int           `json:"count"`
}

type StatusResult struct {
	Status       string `json:"status"`
	MessageCount int    `json:"message_count"`
}

type sendRequest struct {
	Username string `json:"username"`
	Message  string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type API struct {
	baseURL    string
	httpClient *http.Client
}

func NewAPI(baseURL string, timeout time.Duration) *API {
	return &API{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Poll fetches every message with an index greater than since,
// plus the current log length.
func (a *API) Poll(since int) (PollResult, error) {
	resp, err := a.httpClient.Get(fmt.Sprintf("%s/messages?since=%d", a.baseURL, since))
	if err != nil {
		return PollResult{}, fmt.Errorf("%w: %v", errors.ErrServerUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result PollResult
	if err := decodeSuccess(resp, &result); err != nil {
		return PollResult{}, err
	}
	return result, nil
}

// Send appends one message and returns the stored entry.
// A rejection by the server comes back as ErrMessageRejected carrying
// the server's reason.
func (a *API) Send(username, text string) (ChatMessage, error) {
	payload, err := json.Marshal(sendRequest{Username: username, Message: text})
	if err != nil {
		return ChatMessage{}, err
	}

	resp, err := a.httpClient.Post(a.baseURL+"/send", "application/json", bytes.NewReader(payload))
	if err != nil {
		return ChatMessage{}, fmt.Errorf("%w: %v", errors.ErrServerUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusBadRequest {
		return ChatMessage{}, fmt.Errorf("%w: %s", errors.ErrMessageRejected, remoteReason(resp))
	}

	var message ChatMessage
	if err := decodeSuccess(resp, &message); err != nil {
		return ChatMessage{}, err
	}
	return message, nil
}

// Status asks the server whether it is alive and how long the log is.
func (a *API) Status() (StatusResult, error) {
	resp, err := a.httpClient.Get(a.baseURL + "/status")
	if err != nil {
		return StatusResult{}, fmt.Errorf("%w: %v", errors.ErrServerUnreachable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	var result StatusResult
	if err := decodeSuccess(resp, &result); err != nil {
		return StatusResult{}, err
	}
	return result, nil
}

func decodeSuccess(resp *http.Response, out any) error {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %d %s", errors.ErrUnexpectedStatus, resp.StatusCode, remoteReason(resp))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrBadResponse, err)
	}
	return nil
}

func remoteReason(resp *http.Response) string {
	var remote errorResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil || remote.Error == "" {
		return resp.Status
	}
	return remote.Error
}
