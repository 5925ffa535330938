//go:build unit

package outbox

import (
	"context"
	"sync"
	"testing"
	"time"

	"vista-ecoupon/internal/domain/usage"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLedger fails the first failures calls to Append, then succeeds.
type fakeLedger struct {
	mu       sync.Mutex
	failures int
	appended []usage.Record
}

func (f *fakeLedger) Append(_ context.Context, rec usage.Record) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failures > 0 {
		f.failures--
		return errors.New("ledger unavailable")
	}
	f.appended = append(f.appended, rec)
	return nil
}

func (f *fakeLedger) records() []usage.Record {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]usage.Record(nil), f.appended...)
}

func record() usage.Record {
	return usage.Record{
		ID:         uuid.New(),
		Identifier: "0812345678",
		CouponID:   uuid.NewString(),
		CouponCode: "MC1502-4821",
		Status:     usage.StatusUsed,
		Timestamp:  time.Now(),
	}
}

func TestOutbox_AppendsEnqueuedRecords(t *testing.T) {
	ledger := &fakeLedger{}
	o := New(ledger, 8)
	go o.Run()

	rec := record()
	o.Enqueue(rec)
	o.Stop()

	appended := ledger.records()
	require.Len(t, appended, 1)
	assert.Equal(t, rec.ID, appended[0].ID)
}

func TestOutbox_RetriesTransientFailure(t *testing.T) {
	ledger := &fakeLedger{failures: 2}
	o := New(ledger, 8)
	go o.Run()

	o.Enqueue(record())
	o.Stop()

	assert.Len(t, ledger.records(), 1, "third attempt should succeed")
}

func TestOutbox_DropsAfterExhaustedRetries(t *testing.T) {
	ledger := &fakeLedger{failures: maxAttempts}
	o := New(ledger, 8)
	go o.Run()

	o.Enqueue(record())
	o.Stop()

	assert.Empty(t, ledger.records())
}

func TestOutbox_DrainsQueueOnStop(t *testing.T) {
	ledger := &fakeLedger{}
	o := New(ledger, 8)
	go o.Run()

	for i := 0; i < 5; i++ {
		o.Enqueue(record())
	}
	o.Stop()

	assert.Len(t, ledger.records(), 5)
}

func TestOutbox_FullQueueDropsWithoutBlocking(t *testing.T) {
	ledger := &fakeLedger{}
	o := New(ledger, 1)
	// worker not running, so the buffer fills immediately

	done := make(chan struct{})
	go func() {
		o.Enqueue(record())
		o.Enqueue(record())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
