package observability

import (
	"sync/atomic"
)

// MetricsSnapshot is a point-in-time view of the traffic counters.
type MetricsSnapshot struct {
	MessagesAppended uint64 `json:"messages_appended"`
	MessagesRejected uint64 `json:"messages_rejected"`
	PollsServed      uint64 `json:"polls_served"`
	StatusChecks     uint64 `json:"status_checks"`
}

// Metrics keeps process-internal traffic counters.
// Counters are atomic so handlers never contend on a lock for accounting.
type Metrics struct {
	messagesAppended uint64
	messagesRejected uint64
	pollsServed      uint64
	statusChecks     uint64
}

func NewMetrics() *Metrics {
	return &Metrics{}
}

func (m *Metrics) IncrMessagesAppended() {
	atomic.AddUint64(&m.messagesAppended, 1)
}

func (m *Metrics) IncrMessagesRejected() {
	atomic.AddUint64(&m.messagesRejected, 1)
}

func (m *Metrics) IncrPollsServed() {
	atomic.AddUint64(&m.pollsServed, 1)
}

func (m *Metrics) IncrStatusChecks() {
	atomic.AddUint64(&m.statusChecks, 1)
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		MessagesAppended: atomic.LoadUint64(&m.messagesAppended),
		MessagesRejected: atomic.LoadUint64(&m.messagesRejected),
		PollsServed:      atomic.LoadUint64(&m.pollsServed),
		StatusChecks:     atomic.LoadUint64(&m.statusChecks),
	}
}
