package webhook

import "sync"

// voteQueue is an unbounded FIFO between the HTTP handlers and the consumer.
// Push never blocks; a background pump feeds the out channel. Order is the
// order pushes acquire the lock, which for the listener is the order requests
// finish validation.
type voteQueue struct {
	mu     sync.Mutex
	buf    []Vote
	closed bool

	wake chan struct{}
	out  chan Vote
}

func newVoteQueue() *voteQueue {
	q := &voteQueue{
		wake: make(chan struct{}, 1),
		out:  make(chan Vote),
	}
	go q.pump()
	return q
}

// Push appends a vote. Safe for concurrent use; drops only after Close.
func (q *voteQueue) Push(v Vote) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.buf = append(q.buf, v)
	q.mu.Unlock()
	q.signal()
}

// Out returns the consumer side of the queue. The channel closes after Close
// once the buffer drains.
func (q *voteQueue) Out() <-chan Vote { return q.out }

// Close stops accepting pushes. Already-queued votes are still delivered.
func (q *voteQueue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()
	q.signal()
}

func (q *voteQueue) signal() {
	select {
	case q.wake <- struct{}{}:
	default:
	}
}

func (q *voteQueue) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		for len(q.buf) == 0 {
			closed := q.closed
			q.mu.Unlock()
			if closed {
				return
			}
			<-q.wake
			q.mu.Lock()
		}
		v := q.buf[0]
		q.buf = q.buf[1:]
		q.mu.Unlock()

		q.out <- v
	}
}
