package network

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrClosed is returned by Poll once the subscription is closed and
	// its queue is empty, and by Publish on a closed bus.
	ErrClosed = errors.New("channel closed")
	// ErrNoSubscribers is returned by Publish when nobody can receive.
	ErrNoSubscribers = errors.New("no live receivers")
	// ErrQueueFull is returned by Publish when a subscriber's queue is full.
	ErrQueueFull = errors.New("subscriber queue full")
)

// Bus is a multi-producer, multi-consumer broadcast channel. It is safe for
// concurrent use.
type Bus[M any] struct {
	mu        sync.Mutex
	queueSize int
	nextID    int
	subs      map[int]*Subscription[M]
	closed    bool
}

// NewBus creates an open bus with no subscribers.
func NewBus[M any](opts ...Option) *Bus[M] {
	cfg := busConfig{queueSize: DefaultQueueSize}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	return &Bus[M]{
		queueSize: cfg.queueSize,
		subs:      make(map[int]*Subscription[M]),
	}
}

// Subscribe registers a new consumer. It only receives messages published
// after this call. Subscribing to a closed bus yields a closed subscription.
func (b *Bus[M]) Subscribe() *Subscription[M] {
	b.mu.Lock()
	defer b.mu.Unlock()

	s := &Subscription[M]{
		bus:   b,
		id:    b.nextID,
		queue: make(chan M, b.queueSize),
	}
	b.nextID++
	if b.closed {
		close(s.queue)
		return s
	}
	b.subs[s.id] = s
	return s
}

// Publish appends m to the queue of every live subscriber. The bus lock is
// held for the whole fan-out, so all subscribers see the same global order.
func (b *Bus[M]) Publish(m M) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrClosed
	}
	if len(b.subs) == 0 {
		return ErrNoSubscribers
	}
	var errs []error
	for id, s := range b.subs {
		select {
		case s.queue <- m:
		default:
			errs = append(errs, fmt.Errorf("%w: subscriber %d", ErrQueueFull, id))
		}
	}
	return errors.Join(errs...)
}

// Subscribers returns the number of live subscriptions.
func (b *Bus[M]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs)
}

// Close closes every subscription. Messages already queued can still be
// drained before Poll reports ErrClosed.
func (b *Bus[M]) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	for id, s := range b.subs {
		close(s.queue)
		delete(b.subs, id)
	}
	return nil
}

func (b *Bus[M]) unsubscribe(s *Subscription[M]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.subs[s.id]; !ok {
		return
	}
	delete(b.subs, s.id)
	close(s.queue)
}

// Subscription is one consumer's queue on a Bus.
type Subscription[M any] struct {
	bus   *Bus[M]
	id    int
	queue chan M
}

// Poll takes the next message without blocking. It returns ok == false with
// a nil error when the queue is currently empty, and ErrClosed once the
// subscription is closed and fully drained.
func (s *Subscription[M]) Poll() (m M, ok bool, err error) {
	select {
	case m, open := <-s.queue:
		if !open {
			return m, false, ErrClosed
		}
		return m, true, nil
	default:
		return m, false, nil
	}
}

// Pending returns the number of queued messages.
func (s *Subscription[M]) Pending() int {
	return len(s.queue)
}

// Close detaches the subscription from its bus.
func (s *Subscription[M]) Close() error {
	s.bus.unsubscribe(s)
	return nil
}
