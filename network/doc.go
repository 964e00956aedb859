// Package network provides the in-process broadcast channel that nodes use
// to exchange messages.
//
// # Core Components
//
// Bus: A fan-out dispatcher. Every published message is copied into the
// queue of every live subscriber.
//
// Subscription: One consumer's view of the stream, with its own FIFO queue
// and its own read position.
//
// # Delivery Guarantees
//
// Messages are observed by each subscriber in the order they were published.
// Publishing never blocks: a message that cannot be queued because a
// subscriber's queue is full is reported to the publisher instead.
//
// # Draining
//
// Poll is non-blocking. An empty queue is a normal state, not an error; the
// only error a subscriber sees is ErrClosed, once the subscription or the
// whole bus has been closed and its queue drained.
package network
