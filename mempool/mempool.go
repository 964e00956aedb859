// Package mempool holds the transactions a node has verified but not yet
// seen confirmed in a block.
package mempool

import "github.com/luca-patrignani/cairn/ledger"

// Pool is an insertion-ordered set of pending transactions keyed by content
// hash. It has a single owner and is not safe for concurrent use.
type Pool struct {
	txs   map[ledger.Hash]ledger.Transaction
	order []ledger.Hash
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{
		txs: make(map[ledger.Hash]ledger.Transaction),
	}
}

// Add inserts tx under its content hash. It returns false, leaving the pool
// unchanged, when a transaction with the same hash is already pending.
func (p *Pool) Add(tx ledger.Transaction) bool {
	h := tx.ContentHash()
	if _, exists := p.txs[h]; exists {
		return false
	}
	p.txs[h] = tx.Clone()
	p.order = append(p.order, h)
	return true
}

// Remove drops the transaction with hash h, if present.
func (p *Pool) Remove(h ledger.Hash) bool {
	if _, exists := p.txs[h]; !exists {
		return false
	}
	delete(p.txs, h)
	for i, id := range p.order {
		if id == h {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	return true
}

// RemoveConfirmed drops every pending transaction included in b and returns
// how many were removed. Transactions of b that are not pending are ignored.
func (p *Pool) RemoveConfirmed(b ledger.Block) int {
	confirmed := make(map[ledger.Hash]struct{}, len(b.Transactions))
	for _, h := range b.TransactionHashes() {
		confirmed[h] = struct{}{}
	}
	removed := 0
	kept := p.order[:0]
	for _, h := range p.order {
		if _, ok := confirmed[h]; ok {
			delete(p.txs, h)
			removed++
			continue
		}
		kept = append(kept, h)
	}
	p.order = kept
	return removed
}

// Get returns the pending transaction with hash h.
func (p *Pool) Get(h ledger.Hash) (ledger.Transaction, bool) {
	tx, ok := p.txs[h]
	if !ok {
		return ledger.Transaction{}, false
	}
	return tx.Clone(), true
}

// Has reports whether a transaction with hash h is pending.
func (p *Pool) Has(h ledger.Hash) bool {
	_, ok := p.txs[h]
	return ok
}

// Len returns the number of pending transactions.
func (p *Pool) Len() int {
	return len(p.txs)
}

// Transactions returns a snapshot of the pool in insertion order.
func (p *Pool) Transactions() []ledger.Transaction {
	txs := make([]ledger.Transaction, 0, len(p.order))
	for _, h := range p.order {
		txs = append(txs, p.txs[h].Clone())
	}
	return txs
}

// Hashes returns the pending hashes in insertion order.
func (p *Pool) Hashes() []ledger.Hash {
	return append([]ledger.Hash(nil), p.order...)
}
