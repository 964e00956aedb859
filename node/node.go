package node

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.dedis.ch/kyber/v4"

	"github.com/luca-patrignani/cairn/ledger"
	"github.com/luca-patrignani/cairn/mempool"
)

// Node is a ledger peer. Its chain and pool are exclusively owned; the
// outbox is the only thing it shares with other nodes.
type Node struct {
	id       string
	keys     ledger.KeyPair
	chain    *ledger.Blockchain
	pool     *mempool.Pool
	outbox   Broadcaster
	observer Observer
	now      func() time.Time
}

// Option configures a Node.
type Option func(Node) Node

// WithID overrides the generated node ID.
func WithID(id string) Option {
	return func(n Node) Node {
		n.id = id
		return n
	}
}

// WithLogger sends reports to a LogObserver writing to logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n Node) Node {
		n.observer = LogObserver{Logger: logger}
		return n
	}
}

// WithObserver replaces the report observer.
func WithObserver(o Observer) Option {
	return func(n Node) Node {
		n.observer = o
		return n
	}
}

// WithClock replaces time.Now as the source of transaction and block
// timestamps.
func WithClock(now func() time.Time) Option {
	return func(n Node) Node {
		n.now = now
		return n
	}
}

// New creates a node with a fresh blockchain and an empty pool. keys is the
// node's signing identity; outbox is where it broadcasts.
func New(keys ledger.KeyPair, outbox Broadcaster, opts ...Option) *Node {
	n := Node{
		id:       uuid.NewString(),
		keys:     keys,
		chain:    ledger.NewBlockchain(),
		pool:     mempool.New(),
		outbox:   outbox,
		observer: LogObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		n = opt(n)
	}
	return &n
}

// ID returns the node identifier used in reports.
func (n *Node) ID() string {
	return n.id
}

// PublicKey returns the node's public key. The private key never leaves the
// node.
func (n *Node) PublicKey() kyber.Point {
	return n.keys.Public
}

// Tip returns the last block of the local chain.
func (n *Node) Tip() ledger.Block {
	return n.chain.Latest()
}

// ChainLen returns the number of blocks in the local chain.
func (n *Node) ChainLen() int {
	return n.chain.Len()
}

// Blocks returns a copy of the local chain.
func (n *Node) Blocks() []ledger.Block {
	return n.chain.Blocks()
}

// VerifyChain re-validates the local chain from genesis.
func (n *Node) VerifyChain() error {
	return n.chain.Verify()
}

// Pending returns the pooled transactions in insertion order.
func (n *Node) Pending() []ledger.Transaction {
	return n.pool.Transactions()
}

// PendingCount returns the number of pooled transactions.
func (n *Node) PendingCount() int {
	return n.pool.Len()
}

// HasPending reports whether the transaction with hash h is pooled.
func (n *Node) HasPending(h ledger.Hash) bool {
	return n.pool.Has(h)
}
