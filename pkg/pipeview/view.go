package pipeview

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ferama/rospo-pipes/pkg/logger"
)

var viewLog = logger.NewLogger("[VIEW] ", logger.Cyan)

type snapshot struct {
	pipes []DisplayPipe
	at    time.Time
}

// View holds the ordered pipes list shown to the user. The list is only
// written by Refresh, which replaces it as a whole on every successful
// fetch. Readers always get a complete, sorted list.
type View struct {
	fetcher PipeFetcher
	log     *log.Logger

	current atomic.Pointer[snapshot]

	// serializes overlapping refreshes
	refreshMu sync.Mutex

	mu       sync.Mutex
	mounted  bool
	cancel   context.CancelFunc
	done     chan struct{}
	mountErr error
}

// NewView creates a view with an empty pipes list
func NewView(fetcher PipeFetcher) *View {
	v := &View{
		fetcher: fetcher,
		log:     viewLog,
	}
	v.current.Store(&snapshot{pipes: []DisplayPipe{}})
	return v
}

// Mount schedules the initial asynchronous fetch. Only the first call
// has effect. Use Wait to get the fetch result and Close to cancel it
func (v *View) Mount(ctx context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.mounted {
		return
	}
	v.mounted = true

	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.done = make(chan struct{})

	go func() {
		defer close(v.done)
		_, err := v.Refresh(ctx)

		v.mu.Lock()
		v.mountErr = err
		v.mu.Unlock()
	}()
}

// Wait blocks until the mount fetch completes and returns its error
func (v *View) Wait() error {
	v.mu.Lock()
	done := v.done
	v.mu.Unlock()

	if done == nil {
		return nil
	}
	<-done

	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mountErr
}

// Close cancels the mount fetch if still pending and waits for it
func (v *View) Close() {
	v.mu.Lock()
	cancel := v.cancel
	v.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	v.Wait()
}

// Refresh fetches the pipes list and, on success, replaces the current
// one. updated is false if the api returned no data or on error: in
// both cases the previous list is left untouched.
// Concurrent calls are serialized.
func (v *View) Refresh(ctx context.Context) (updated bool, err error) {
	v.refreshMu.Lock()
	defer v.refreshMu.Unlock()

	records, ok, err := v.fetcher.FetchAll(ctx)
	if err != nil {
		v.log.Printf("refresh failed: %s", err)
		return false, err
	}
	if !ok {
		return false, nil
	}

	v.current.Store(&snapshot{
		pipes: Normalize(records),
		at:    time.Now(),
	})
	return true, nil
}

// Pipes returns the current ordered list. It must be treated as read only
func (v *View) Pipes() []DisplayPipe {
	return v.current.Load().pipes
}

// LastUpdate returns when the list was last replaced. It is the zero
// time until the first successful fetch
func (v *View) LastUpdate() time.Time {
	return v.current.Load().at
}
