package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-cred-store/internal/logger"
)

type clientRefreshJob struct {
	credentials ClientCredentialService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that re-fetches every locally
// cached credential on a ticker, so sealed copies do not go stale while the
// server is reachable. The job is idle until Start is called.
func NewClientRefreshJob(credentials ClientCredentialService) ClientRefreshJob {
	return &clientRefreshJob{credentials: credentials}
}

// Start implements ClientRefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes the cache every interval. If
// interval is zero or negative it defaults to 5 minutes. The goroutine exits
// when ctx is cancelled or Stop is called.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx)
			}
		}
	}()
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// refresh re-reads every cached credential from the server. Get refreshes the
// sealed copy as a side effect, so failures for individual names are logged
// and skipped rather than aborting the sweep.
func (j *clientRefreshJob) refresh(ctx context.Context) {
	log := logger.FromContext(ctx)

	cached, err := j.credentials.ListCached(ctx)
	if err != nil {
		log.Err(err).Str("func", "clientRefreshJob.refresh").Msg("listing cached credentials")
		return
	}

	for _, cred := range cached {
		if ctx.Err() != nil {
			return
		}
		if _, err := j.credentials.Get(ctx, cred.Name); err != nil {
			log.Warn().Err(err).Str("func", "clientRefreshJob.refresh").Str("name", cred.Name).Msg("refreshing cached credential")
		}
	}
}
