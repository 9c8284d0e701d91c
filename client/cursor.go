package main

import "sync"

// Cursor tracks the index of the last message this client has seen,
// -1 when nothing has been seen yet. Both the poller and the console
// touch it, so it carries its own lock.
type Cursor struct {
	mu   sync.Mutex
	last int
}

func NewCursor() *Cursor {
	return &Cursor{last: -1}
}

func (c *Cursor) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// AdvanceTo moves the cursor forward, never backward.
func (c *Cursor) AdvanceTo(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index > c.last {
		c.last = index
	}
}
