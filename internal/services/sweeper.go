package services

import (
	"fmt"
	"sync"
	"time"

	"prohub/internal/utils"
)

// SweepService runs the warning-expiry sweep in the background. The
// sweep is monotonic and idempotent, so the interval only affects how
// promptly expired warnings stop counting.
type SweepService struct {
	interval time.Duration
	stop     chan struct{}
}

var (
	sweepService *SweepService
	sweepOnce    sync.Once
)

// GetSweepService starts the singleton sweeper on first call.
func GetSweepService() *SweepService {
	sweepOnce.Do(func() {
		sweepService = &SweepService{
			interval: time.Hour,
			stop:     make(chan struct{}),
		}
		go sweepService.run()
	})
	return sweepService
}

func (s *SweepService) run() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			count, err := SweepExpirations(time.Now())
			if err != nil {
				utils.LogError(err, "Warning expiry sweep failed")
				continue
			}
			if count > 0 {
				utils.LogInfo(fmt.Sprintf("Expired %d warnings", count))
			}
		case <-s.stop:
			return
		}
	}
}

// Stop terminates the background loop.
func (s *SweepService) Stop() {
	close(s.stop)
}
