package node

import (
	"log/slog"

	"github.com/luca-patrignani/cairn/ledger"
)

// Report is the outcome of processing one message.
type Report struct {
	MessageID string
	Kind      Kind
	// Hash is the transaction content hash or the block hash.
	Hash ledger.Hash
	// Index is the block index, for NewBlock messages.
	Index uint64
	// Confirmed counts the pooled transactions an accepted block removed.
	Confirmed int
	// Err is nil when the message was applied.
	Err error
}

// Accepted reports whether the message changed the node's state.
func (r Report) Accepted() bool {
	return r.Err == nil
}

// LogObserver writes one structured record per report.
type LogObserver struct {
	Logger *slog.Logger
}

func (o LogObserver) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Observe implements Observer.
func (o LogObserver) Observe(nodeID string, r Report) {
	attrs := []any{
		slog.String("node", nodeID),
		slog.String("message_id", r.MessageID),
		slog.String("kind", r.Kind.String()),
	}
	switch r.Kind {
	case KindNewTransaction:
		attrs = append(attrs, slog.String("tx", r.Hash.Short()))
	case KindNewBlock:
		attrs = append(attrs,
			slog.Uint64("index", r.Index),
			slog.String("hash", r.Hash.Short()),
		)
	}
	if r.Err != nil {
		o.logger().Warn("message discarded", append(attrs, slog.Any("err", r.Err))...)
		return
	}
	if r.Kind == KindNewBlock {
		o.logger().Info("block added", append(attrs, slog.Int("confirmed", r.Confirmed))...)
		return
	}
	o.logger().Info("transaction pooled", attrs...)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(nodeID string, r Report)

// Observe implements Observer.
func (f ObserverFunc) Observe(nodeID string, r Report) {
	f(nodeID, r)
}
