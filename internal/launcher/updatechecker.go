package launcher

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type updateChecker struct {
	control        adapter.ControlPlaneAdapter
	publisher      EventPublisher
	channel        string
	currentVersion string
	interval       time.Duration
	log            *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewUpdateChecker creates the background service that periodically fetches
// the update manifest for channel and publishes an update-state event when
// the advertised version differs from currentVersion. The service is idle
// until Start is called.
func NewUpdateChecker(control adapter.ControlPlaneAdapter, publisher EventPublisher, channel, currentVersion string, interval time.Duration, log *logger.Logger) Service {
	if interval <= 0 {
		interval = 6 * time.Hour
	}
	return &updateChecker{
		control:        control,
		publisher:      publisher,
		channel:        channel,
		currentVersion: currentVersion,
		interval:       interval,
		log:            log,
	}
}

func (u *updateChecker) Name() string { return "update-checker" }

// Start implements Service. It launches a background goroutine that checks
// the manifest every interval. The goroutine exits when ctx is cancelled or
// Stop is called.
func (u *updateChecker) Start(ctx context.Context) error {
	u.Stop()

	u.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	u.cancel = cancel
	u.wg.Add(1)
	u.mu.Unlock()

	go func() {
		defer u.wg.Done()
		t := time.NewTicker(u.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				u.check(jobCtx)
			}
		}
	}()

	return nil
}

// check fetches the manifest once. Transport failures are logged only; the
// next tick retries by nature.
func (u *updateChecker) check(ctx context.Context) {
	manifest, err := u.control.GetUpdateManifest(ctx, u.channel)
	if err != nil {
		u.log.Warn().Err(err).Msg("update manifest fetch failed")
		return
	}

	manifest.Available = manifest.Version != "" && manifest.Version != u.currentVersion
	u.publisher.Publish(models.NewUpdateStateChangedEvent(manifest))
}

// Stop implements Service. Safe to call when the checker is not running.
func (u *updateChecker) Stop() {
	u.mu.Lock()
	cancel := u.cancel
	u.cancel = nil
	u.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	u.wg.Wait()
}
