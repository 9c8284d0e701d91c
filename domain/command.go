package domain

// PostMessageCommand carries a request to append one message to the log.
type PostMessageCommand struct {
	Username string
	Text     string
}

// ListMessagesCommand carries a read request.
// Cursor is the index of the last message already seen, -1 for nothing seen.
type ListMessagesCommand struct {
	Cursor int
}
