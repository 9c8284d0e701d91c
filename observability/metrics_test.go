package observability

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMetrics_Snapshot_Counts_Concurrent_Increments(t *testing.T) {
	req := require.New(t)
	metrics := NewMetrics()

	const goroutines = 10
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				metrics.IncrMessagesAppended()
				metrics.IncrPollsServed()
			}
			metrics.IncrMessagesRejected()
			metrics.IncrStatusChecks()
		}()
	}
	wg.Wait()

	snapshot := metrics.Snapshot()
	req.Equal(uint64(goroutines*perGoroutine), snapshot.MessagesAppended)
	req.Equal(uint64(goroutines*perGoroutine), snapshot.PollsServed)
	req.Equal(uint64(goroutines), snapshot.MessagesRejected)
	req.Equal(uint64(goroutines), snapshot.StatusChecks)
}

func TestMetrics_Snapshot_Starts_At_Zero(t *testing.T) {
	req := require.New(t)
	req.Equal(MetricsSnapshot{}, NewMetrics().Snapshot())
}
