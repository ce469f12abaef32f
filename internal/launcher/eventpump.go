package launcher

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-tunnel-keeper/internal/adapter"
	"github.com/MKhiriev/go-tunnel-keeper/internal/logger"
	"github.com/MKhiriev/go-tunnel-keeper/models"
)

type daemonEventPump struct {
	daemon    adapter.DaemonAdapter
	publisher EventPublisher
	log       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDaemonEventPump creates the background service that subscribes to the
// connection daemon's websocket event feed and republishes every
// connection-state change onto the event hub. If the feed drops, the pump
// re-dials with capped fibonacci backoff until its context is cancelled.
func NewDaemonEventPump(daemon adapter.DaemonAdapter, publisher EventPublisher, log *logger.Logger) Service {
	return &daemonEventPump{daemon: daemon, publisher: publisher, log: log}
}

func (p *daemonEventPump) Name() string { return "connd-events" }

// Start implements Service. The initial dial happens inline so a daemon that
// is down at boot is reported as a start failure; afterwards the pump keeps
// itself alive in the background.
func (p *daemonEventPump) Start(ctx context.Context) error {
	p.Stop()

	p.mu.Lock()
	pumpCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.mu.Unlock()

	feed, err := p.daemon.StreamEvents(pumpCtx)
	if err != nil {
		cancel()
		p.mu.Lock()
		p.cancel = nil
		p.mu.Unlock()
		return err
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.run(pumpCtx, feed)
	}()

	return nil
}

// run drains the feed and re-dials whenever it closes.
func (p *daemonEventPump) run(ctx context.Context, feed <-chan models.Event) {
	for {
		p.drain(ctx, feed)

		if ctx.Err() != nil {
			return
		}

		var err error
		feed, err = p.redial(ctx)
		if err != nil {
			// Only a cancelled context ends the retry loop.
			return
		}
		p.log.Info().Msg("daemon event feed restored")
	}
}

func (p *daemonEventPump) drain(ctx context.Context, feed <-chan models.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, open := <-feed:
			if !open {
				return
			}
			p.publisher.Publish(event)
		}
	}
}

// redial reconnects to the feed with capped fibonacci backoff and jitter.
func (p *daemonEventPump) redial(ctx context.Context) (<-chan models.Event, error) {
	var feed <-chan models.Event

	backoff := retry.NewFibonacci(time.Second)
	backoff = retry.WithCappedDuration(30*time.Second, backoff)
	backoff = retry.WithJitterPercent(10, backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var dialErr error
		feed, dialErr = p.daemon.StreamEvents(ctx)
		if dialErr != nil {
			p.log.Debug().Err(dialErr).Msg("daemon event feed re-dial failed")
			return retry.RetryableError(dialErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return feed, nil
}

// Stop implements Service. Safe to call when the pump is not running.
func (p *daemonEventPump) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
