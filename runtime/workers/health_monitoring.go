package workers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"

	"chat-hub/observability"
)

// HealthWorker samples the server's own resource usage on a fixed
// interval and publishes it as metrics.
type HealthWorker struct {
	log      *slog.Logger
	interval time.Duration
}

func NewHealthWorker(log *slog.Logger, interval time.Duration) *HealthWorker {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &HealthWorker{log: log, interval: interval}
}

func (w *HealthWorker) Run(ctx context.Context) error {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return err
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			memInfo, err := p.MemoryInfo()
			if err != nil {
				w.log.Warn("Failed to collect memory stats", "error", err)
				continue
			}
			cpuPercent, err := p.CPUPercent()
			if err != nil {
				w.log.Warn("Failed to collect cpu stats", "error", err)
				continue
			}

			observability.ProcessRSSBytes.Set(float64(memInfo.RSS))
			observability.ProcessCPUPercent.Set(cpuPercent)
		}
	}
}
