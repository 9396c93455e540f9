package convo

import (
	"context"
	"fmt"
	"os"
	"time"
)

// defaultFlushDelay is the debounce window for snapshot writes.
const defaultFlushDelay = 2 * time.Second

// persistState is the dirty-flag + flush abstraction: mutations mark
// dirty, a debounce timer flushes in the background, and critical
// transitions flush synchronously so the process can never end with an
// unlock silently lost. The owning Manager's lock guards all fields; the
// timer callback re-enters through onTimer, which the manager wires to
// take its lock first.
type persistState struct {
	persister Persister
	delay     time.Duration
	snapshot  func() (conversationID string, data []byte, err error)
	onTimer   func()

	dirty bool
	timer *time.Timer
}

func (ps *persistState) init(p Persister, delay time.Duration, snapshot func() (string, []byte, error), onTimer func()) {
	if delay <= 0 {
		delay = defaultFlushDelay
	}
	ps.persister = p
	ps.delay = delay
	ps.snapshot = snapshot
	ps.onTimer = onTimer
}

// markDirty schedules a debounced flush. Repeated marks within the window
// coalesce into one write; the snapshot is taken at flush time, not here.
func (ps *persistState) markDirty() {
	if ps.persister == nil {
		return
	}
	ps.dirty = true
	if ps.timer != nil {
		return
	}
	ps.timer = time.AfterFunc(ps.delay, ps.onTimer)
}

// flushNowLocked writes the snapshot immediately if dirty.
func (ps *persistState) flushNowLocked(ctx context.Context) error {
	if ps.persister == nil || !ps.dirty {
		return nil
	}

	id, data, err := ps.snapshot()
	if err != nil {
		return fmt.Errorf("snapshot for flush: %w", err)
	}
	if err := ps.persister.Save(ctx, id, data); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}

	ps.dirty = false
	if ps.timer != nil {
		ps.timer.Stop()
		ps.timer = nil
	}
	return nil
}

func (ps *persistState) closeLocked(ctx context.Context) error {
	if ps.timer != nil {
		ps.timer.Stop()
		ps.timer = nil
	}
	if err := ps.flushNowLocked(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: final flush failed: %v\n", err)
		return err
	}
	return nil
}
