package workers

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/process"
)

// SelfStatsWorker periodically logs process health (RSS, CPU, goroutine
// count) so operators can spot leaks without external tooling.
type SelfStatsWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewSelfStatsWorker(log *slog.Logger, interval time.Duration) *SelfStatsWorker {
	return &SelfStatsWorker{log: log, interval: interval}
}

func (w *SelfStatsWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping self stats")
			return nil
		case <-ticker.C:
			memory, err := p.MemoryInfo()
			if err != nil {
				w.log.Debug("Failed to collect memory stats", "err", err)
				continue
			}
			cpu, err := p.CPUPercent()
			if err != nil {
				w.log.Debug("Failed to collect cpu stats", "err", err)
				continue
			}
			w.log.Info("Relay self stats",
				"rss_mb", memory.RSS/(1<<20),
				"cpu_percent", cpu,
				"goroutines", runtime.NumGoroutine(),
			)
		}
	}
}
