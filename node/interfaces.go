package node

// Broadcaster is the send handle a node publishes its messages on.
// *network.Bus[Message] implements it.
type Broadcaster interface {
	// Publish delivers m to every live receiver, or fails without blocking.
	Publish(m Message) error
}

// Inbox is a node's own view of the message stream.
// *network.Subscription[Message] implements it.
type Inbox interface {
	// Poll returns the next message without blocking. ok is false when the
	// inbox is currently empty; err is network.ErrClosed once it is closed.
	Poll() (m Message, ok bool, err error)
}

// Observer consumes the outcome of every processed message.
type Observer interface {
	Observe(nodeID string, r Report)
}
