package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"vista-ecoupon/internal/domain/usage"
)

// Ledger is the durable append target.
type Ledger interface {
	Append(ctx context.Context, rec usage.Record) error
}

const (
	maxAttempts = 3
	baseBackoff = 100 * time.Millisecond
)

// Outbox decouples redemption finalization from ledger durability: terminal
// transitions enqueue their usage record and return immediately, a background
// worker flushes with retries. Append failure never blocks the state
// transition; exhausted retries are logged and the record is dropped, which
// is the accepted data-loss bound.
type Outbox struct {
	ledger Ledger
	ch     chan usage.Record

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(ledger Ledger, queueSize int) *Outbox {
	return &Outbox{
		ledger: ledger,
		ch:     make(chan usage.Record, queueSize),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Enqueue hands a record to the worker without blocking. A full queue drops
// the record with a log line rather than stalling the caller.
func (o *Outbox) Enqueue(rec usage.Record) {
	select {
	case o.ch <- rec:
	default:
		slog.Error("usage outbox full, dropping record",
			"coupon_id", rec.CouponID, "coupon_code", rec.CouponCode, "status", string(rec.Status))
	}
}

// Run is the worker loop. It exits after Stop once the queue is drained.
func (o *Outbox) Run() {
	defer close(o.done)
	for {
		select {
		case rec := <-o.ch:
			o.flush(rec)
		case <-o.stop:
			o.drain()
			return
		}
	}
}

// Stop signals shutdown and waits for the drain to finish.
func (o *Outbox) Stop() {
	o.stopOnce.Do(func() { close(o.stop) })
	<-o.done
}

func (o *Outbox) drain() {
	for {
		select {
		case rec := <-o.ch:
			o.flush(rec)
		default:
			return
		}
	}
}

func (o *Outbox) flush(rec usage.Record) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(baseBackoff << (attempt - 1))
		}
		if err = o.ledger.Append(ctx, rec); err == nil {
			return
		}
	}

	slog.Error("usage record lost after retries",
		"coupon_id", rec.CouponID, "coupon_code", rec.CouponCode,
		"status", string(rec.Status), "error", err)
}
