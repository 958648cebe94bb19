package client

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/Dario48true/nvrpc/rpc/common"
)

// --------------------------------------------------------------------------
// Pending-Call Table
// --------------------------------------------------------------------------

// callWaiter is the wait-flag a blocked caller parks on until the reader
// loop signals that its response has arrived.
type callWaiter struct {
	ch chan struct{}
}

func newCallWaiter() *callWaiter {
	return &callWaiter{ch: make(chan struct{}, 1)}
}

// signal sets the flag. Signaling an already-set flag is a no-op.
func (w *callWaiter) signal() {
	select {
	case w.ch <- struct{}{}:
	default:
	}
}

// wait blocks until the flag is set. There is no timeout: a call without a
// response blocks its caller indefinitely.
func (w *callWaiter) wait() {
	<-w.ch
}

// pendingTable maps outstanding request IDs to their wait-flags. At most
// one entry exists per ID; entries never outlive their originating call.
type pendingTable struct {
	waiters *xsync.MapOf[uint64, *callWaiter]
}

func newPendingTable() *pendingTable {
	return &pendingTable{
		waiters: xsync.NewMapOf[uint64, *callWaiter](),
	}
}

// register creates and inserts a fresh wait-flag for id.
func (t *pendingTable) register(id uint64) (*callWaiter, error) {
	w := newCallWaiter()
	if _, loaded := t.waiters.LoadOrStore(id, w); loaded {
		return nil, ErrDuplicateRequestID
	}
	return w, nil
}

// signal sets the wait-flag for id if one is registered. It does not remove
// the entry; removal is the caller's responsibility after waking.
func (t *pendingTable) signal(id uint64) {
	if w, ok := t.waiters.Load(id); ok {
		w.signal()
	}
}

// remove deletes the entry for id.
func (t *pendingTable) remove(id uint64) {
	t.waiters.Delete(id)
}

// size returns the number of outstanding entries.
func (t *pendingTable) size() int {
	return t.waiters.Size()
}

// --------------------------------------------------------------------------
// Inbound Response Buffer
// --------------------------------------------------------------------------

// responseBuffer holds decoded response frames not yet claimed by their
// caller. Unmatched entries (responses whose caller is gone, or spurious
// ones) stay buffered until the client is closed.
type responseBuffer struct {
	mu     sync.Mutex
	frames []*common.Frame
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{}
}

// push appends a response frame.
func (b *responseBuffer) push(f *common.Frame) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.frames = append(b.frames, f)
}

// takeMatching scans from the front, popping each entry: a frame with the
// wanted ID is returned, every other frame is re-appended to the back so a
// miss leaves the buffer's length and relative order unchanged. The scan is
// O(n), acceptable since a caller's own response is typically at or near
// the front.
func (b *responseBuffer) takeMatching(id uint64) (*common.Frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := len(b.frames); i > 0; i-- {
		f := b.frames[0]
		b.frames = b.frames[1:]
		if f.ID == id {
			return f, true
		}
		b.frames = append(b.frames, f)
	}
	return nil, false
}

// size returns the number of buffered responses.
func (b *responseBuffer) size() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.frames)
}

// drain empties the buffer and returns what was left, for shutdown
// accounting.
func (b *responseBuffer) drain() []*common.Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	frames := b.frames
	b.frames = nil
	return frames
}
