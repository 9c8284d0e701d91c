// Package domain contains core concepts of the chat system.
// This file defines Message entries and related rules.
// Messages are immutable once appended to the log.
package domain

import (
	"time"
)

// Message represents one immutable entry of the chat log.
// Index is the 0-based position assigned at append time, never reused.
type Message struct {
	Index     int
	Username  string
	Text      string
	CreatedAt time.Time
}
