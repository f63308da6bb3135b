// Package draft buffers partial service-request input per logical key and
// flushes a batched submission after an inactivity window, so a visitor
// typing into a form does not trigger a storage write per keystroke.
package draft

import (
	"log"
	"sync"
	"time"

	"github.com/zeelpatel7113/bytewave-sub001/internal/models"
)

// DefaultDelay is the inactivity window before buffered drafts flush
const DefaultDelay = 15 * time.Second

// FlushFunc persists one buffered draft. Flush failures are logged and
// swallowed: abandoned drafts are acceptable loss, there is no retry.
type FlushFunc func(key string, req *models.ServiceRequest) error

// Aggregator coalesces drafts per key behind a single shared inactivity
// timer. It is an explicitly constructed, explicitly owned object; callers
// hold the only reference.
type Aggregator struct {
	mu     sync.Mutex
	delay  time.Duration
	flush  FlushFunc
	drafts map[string]*models.ServiceRequest
	timer  *time.Timer
	gen    uint64
}

// New creates an aggregator. A non-positive delay falls back to
// DefaultDelay.
func New(delay time.Duration, flush FlushFunc) *Aggregator {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Aggregator{
		delay:  delay,
		flush:  flush,
		drafts: make(map[string]*models.ServiceRequest),
	}
}

// UpdateData overwrites the buffered draft for key and resets the shared
// inactivity timer. Concurrent updates to the same key race last-write-wins,
// which is fine: they model one user's keystrokes, not concurrent writers.
func (a *Aggregator) UpdateData(key string, req *models.ServiceRequest) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if len(req.StatusHistory) == 0 {
		req.StatusHistory = models.NewStatusHistory(models.StatusPartial, "draft buffered", "")
	}
	a.drafts[key] = req

	if a.timer != nil {
		a.timer.Stop()
	}
	// Stop() cannot cancel a timer that already fired and is waiting on the
	// mutex; the generation counter lets flushAll detect it lost the race.
	a.gen++
	gen := a.gen
	a.timer = time.AfterFunc(a.delay, func() { a.flushAll(gen) })
}

// ClearSession drops one buffered draft without flushing it
func (a *Aggregator) ClearSession(key string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.drafts, key)
}

// ClearAllSessions drops every buffered draft and cancels the pending timer
func (a *Aggregator) ClearAllSessions() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.drafts = make(map[string]*models.ServiceRequest)
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
}

// Len returns the number of buffered drafts
func (a *Aggregator) Len() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.drafts)
}

// flushAll flushes every buffered key concurrently and clears the buffer.
// The buffer is swapped out under the lock first, so updates arriving during
// the flush start a fresh batch. A failed key does not block or roll back
// the others. A stale gen means a newer update re-armed the timer while this
// fire was pending; that window owns the flush.
func (a *Aggregator) flushAll(gen uint64) {
	a.mu.Lock()
	if gen != a.gen {
		a.mu.Unlock()
		return
	}
	batch := a.drafts
	a.drafts = make(map[string]*models.ServiceRequest)
	a.timer = nil
	a.mu.Unlock()

	if len(batch) == 0 {
		return
	}

	var wg sync.WaitGroup
	for key, req := range batch {
		wg.Add(1)
		go func(key string, req *models.ServiceRequest) {
			defer wg.Done()
			if err := a.flush(key, req); err != nil {
				log.Printf("draft flush failed for %s: %v", key, err)
			}
		}(key, req)
	}
	wg.Wait()
}
