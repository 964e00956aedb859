package ledger

import (
	"fmt"
	"time"
)

// Block is an ordered batch of transactions chained to its predecessor.
// Hash is computed once at construction; any later change to the other
// fields makes the block self-inconsistent and Blockchain.Append rejects it.
type Block struct {
	Index        uint64
	Transactions []Transaction
	PreviousHash Hash
	Timestamp    int64  // milliseconds since the Unix epoch
	Nonce        uint64 // reserved for a future proof of work, always 0
	Hash         Hash
}

// NewBlock builds a block stamped with the current time. Transactions keep
// the order in which they are given.
func NewBlock(index uint64, txs []Transaction, previousHash Hash) Block {
	return NewBlockAt(index, txs, previousHash, time.Now())
}

// NewBlockAt is NewBlock with an explicit timestamp.
func NewBlockAt(index uint64, txs []Transaction, previousHash Hash, ts time.Time) Block {
	b := Block{
		Index:        index,
		Transactions: cloneTransactions(txs),
		PreviousHash: previousHash,
		Timestamp:    ts.UnixMilli(),
		Nonce:        0,
	}
	b.Hash = b.ComputeHash()
	return b
}

// ComputeHash hashes the block contents, excluding the stored Hash field.
// Each transaction contributes its ContentHash, in block order.
func (b *Block) ComputeHash() Hash {
	var w hashWriter
	w.uint64(b.Index)
	for i := range b.Transactions {
		h := b.Transactions[i].ContentHash()
		w.bytes(h[:])
	}
	w.bytes(b.PreviousHash[:])
	w.timestamp(b.Timestamp)
	w.uint64(b.Nonce)
	return w.sum()
}

// VerifyTransactions fails on the first transaction that does not verify.
func (b *Block) VerifyTransactions() error {
	for i := range b.Transactions {
		if err := b.Transactions[i].VerifySignature(); err != nil {
			return fmt.Errorf("%w: transaction %d: %v", ErrTransactionInvalid, i, err)
		}
	}
	return nil
}

// Contains reports whether a transaction with the given content hash is in
// the block.
func (b *Block) Contains(h Hash) bool {
	for i := range b.Transactions {
		if b.Transactions[i].ContentHash() == h {
			return true
		}
	}
	return false
}

// TransactionHashes returns the content hash of every transaction, in order.
func (b *Block) TransactionHashes() []Hash {
	hashes := make([]Hash, len(b.Transactions))
	for i := range b.Transactions {
		hashes[i] = b.Transactions[i].ContentHash()
	}
	return hashes
}

// Time returns the block timestamp as a time.Time.
func (b *Block) Time() time.Time {
	return time.UnixMilli(b.Timestamp)
}

// Clone returns a deep copy of the block.
func (b Block) Clone() Block {
	b.Transactions = cloneTransactions(b.Transactions)
	return b
}

func cloneTransactions(txs []Transaction) []Transaction {
	if txs == nil {
		return nil
	}
	out := make([]Transaction, len(txs))
	for i, t := range txs {
		out[i] = t.Clone()
	}
	return out
}
