package irq

import "sync/atomic"

// Latch tells the idle loop that a new frame is ready.
//
// Handlers call Notify after changing anything visible. The idle loop keeps
// the last sequence it rendered and redraws only when Seq moves. Wake never
// blocks the notifier: pending wakeups collapse into one.
type Latch struct {
	seq  atomic.Uint32
	wake chan struct{}
}

// NewLatch returns a latch with sequence 0.
func NewLatch() *Latch {
	return &Latch{wake: make(chan struct{}, 1)}
}

// Notify bumps the sequence and wakes the idle loop.
func (l *Latch) Notify() uint32 {
	seq := l.seq.Add(1)
	select {
	case l.wake <- struct{}{}:
	default:
	}
	return seq
}

// Seq returns the current sequence number.
func (l *Latch) Seq() uint32 { return l.seq.Load() }

// Wake returns the channel signalled by Notify.
func (l *Latch) Wake() <-chan struct{} { return l.wake }

// Changed reports whether the sequence moved past last, and returns the
// current sequence.
func (l *Latch) Changed(last uint32) (uint32, bool) {
	seq := l.seq.Load()
	return seq, seq != last
}
