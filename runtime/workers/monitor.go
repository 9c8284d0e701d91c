package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"chat-relay/observability"
	"chat-relay/repositories"

	"github.com/shirou/gopsutil/process"
)

// RuntimeMonitor periodically logs process health (CPU, RAM, status)
// together with the traffic counters and the current log size.
// The interval comes from config; the worker is simply not added
// when monitoring is disabled.
type RuntimeMonitor struct {
	log      *slog.Logger
	interval time.Duration
	metrics  *observability.Metrics
	store    repositories.IMessageRepository
}

func NewRuntimeMonitor(
	log *slog.Logger,
	interval time.Duration,
	metrics *observability.Metrics,
	store repositories.IMessageRepository,
) *RuntimeMonitor {
	return &RuntimeMonitor{
		log:      log,
		interval: interval,
		metrics:  metrics,
		store:    store,
	}
}

func (w *RuntimeMonitor) Run(ctx context.Context) error {
	w.log.Info("Starting runtime monitor worker", "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			rss, cpu, status, err := getSelfStats(p)
			if err != nil {
				w.log.Error("Failed to collect self stats", "err", err)
				continue
			}

			snapshot := w.metrics.Snapshot()
			w.log.Info("Runtime status",
				"pid_status", status,
				"cpu_percent", cpu,
				"ram_mb", rss/1024/1024,
				"message_count", w.store.Count(),
				"appended", snapshot.MessagesAppended,
				"rejected", snapshot.MessagesRejected,
				"polls", snapshot.PollsServed,
				"status_checks", snapshot.StatusChecks,
			)
		}
	}
}

// getSelfStats retrieves technical metrics (Memory, CPU, and OS Status) for the given process.
func getSelfStats(p *process.Process) (uint64, float64, string, error) {
	memInfo, err := p.MemoryInfo()
	if err != nil {
		return 0, 0, "", err
	}

	cpuPercent, err := p.CPUPercent()
	if err != nil {
		return 0, 0, "", err
	}

	status, err := p.Status()
	if err != nil {
		return 0, 0, "", err
	}
	return memInfo.RSS, cpuPercent, status, nil
}
