package node

import (
	"errors"
	"fmt"
	"time"

	"go.dedis.ch/kyber/v4"

	"github.com/luca-patrignani/cairn/ledger"
	"github.com/luca-patrignani/cairn/network"
)

// CreateAndBroadcast signs a transfer of amount from this node to receiver
// and broadcasts it. A broadcast failure is returned along with the signed
// transaction.
func (n *Node) CreateAndBroadcast(receiver kyber.Point, amount uint64) (ledger.Transaction, error) {
	tx := ledger.NewTransactionAt(n.keys.Public, receiver, amount, n.now())
	if err := tx.Sign(n.keys.Private); err != nil {
		return tx, err
	}
	if err := n.outbox.Publish(NewTransactionMessage(tx)); err != nil {
		return tx, fmt.Errorf("broadcast transaction %s: %w", tx.ContentHash().Short(), err)
	}
	return tx, nil
}

// MineAndBroadcast assembles a block from a snapshot of the pool, in
// insertion order, on top of the local tip and broadcasts it. The pool is
// not touched: confirmed transactions leave it only when the block comes
// back through Drain.
func (n *Node) MineAndBroadcast() (ledger.Block, error) {
	tip := n.chain.Latest()
	ts := n.now()
	if ts.UnixMilli() <= tip.Timestamp {
		ts = tip.Time().Add(time.Millisecond)
	}
	blk := ledger.NewBlockAt(tip.Index+1, n.pool.Transactions(), tip.Hash, ts)
	if err := n.outbox.Publish(NewBlockMessage(blk)); err != nil {
		return blk, fmt.Errorf("broadcast block %d: %w", blk.Index, err)
	}
	return blk, nil
}

// Drain processes every message currently queued in inbox and returns one
// report per message. An empty inbox ends the cycle with a nil error; a
// closed one ends it with ErrChannelClosed.
func (n *Node) Drain(inbox Inbox) ([]Report, error) {
	var reports []Report
	for {
		msg, ok, err := inbox.Poll()
		if err != nil {
			if errors.Is(err, network.ErrClosed) {
				return reports, ErrChannelClosed
			}
			return reports, err
		}
		if !ok {
			return reports, nil
		}
		r := n.Handle(msg)
		if n.observer != nil {
			n.observer.Observe(n.id, r)
		}
		reports = append(reports, r)
	}
}

// Handle applies a single message to the node's state.
func (n *Node) Handle(msg Message) Report {
	switch msg.Kind {
	case KindNewTransaction:
		return n.onTransaction(msg)
	case KindNewBlock:
		return n.onBlock(msg)
	default:
		return Report{
			MessageID: msg.ID,
			Kind:      msg.Kind,
			Err:       fmt.Errorf("%w: %d", ErrUnknownMessage, int(msg.Kind)),
		}
	}
}

func (n *Node) onTransaction(msg Message) Report {
	tx := msg.Transaction
	r := Report{MessageID: msg.ID, Kind: msg.Kind, Hash: tx.ContentHash()}
	if err := tx.VerifySignature(); err != nil {
		r.Err = fmt.Errorf("%w: %w", ErrUnverifiedTransaction, err)
		return r
	}
	if !n.pool.Add(tx) {
		r.Err = ErrDuplicateTransaction
	}
	return r
}

func (n *Node) onBlock(msg Message) Report {
	blk := msg.Block
	r := Report{MessageID: msg.ID, Kind: msg.Kind, Hash: blk.Hash, Index: blk.Index}
	if err := n.chain.Append(blk); err != nil {
		r.Err = fmt.Errorf("block %d rejected: %w", blk.Index, err)
		return r
	}
	r.Confirmed = n.pool.RemoveConfirmed(blk)
	return r
}
