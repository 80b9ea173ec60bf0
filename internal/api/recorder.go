package api

import (
	"context"
	"log"
	"time"
)

// Recorder applies engagement events without making the HTTP caller wait.
// Delivery is best-effort: a failed write is logged and the event is lost.
// There is no retry and no acknowledgement loop; the pixel bytes returned to
// the browser are cosmetic, not a delivery receipt.
type Recorder struct {
	store   CounterStore
	timeout time.Duration

	// sync forces in-request application. Tests use it to make counter
	// state observable without polling.
	sync bool
}

// NewRecorder creates a fire-and-forget event recorder.
func NewRecorder(store CounterStore, timeout time.Duration) *Recorder {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Recorder{store: store, timeout: timeout}
}

// NewSyncRecorder creates a recorder that applies events before returning.
func NewSyncRecorder(store CounterStore) *Recorder {
	return &Recorder{store: store, timeout: 5 * time.Second, sync: true}
}

// Record classifies and applies one event. The write detaches from the
// request's own context: the browser may abort the pixel request as the page
// unloads, and that must not cancel the counter update.
func (rec *Recorder) Record(adID, event string) {
	if rec.sync {
		rec.apply(adID, event)
		return
	}
	go rec.apply(adID, event)
}

func (rec *Recorder) apply(adID, event string) {
	ctx, cancel := context.WithTimeout(context.Background(), rec.timeout)
	defer cancel()

	if err := rec.store.Apply(ctx, adID, event); err != nil {
		log.Printf("ERROR recording %s event for ad %s: %v", event, adID, err)
	}
}
