package ledger

import (
	"fmt"
	"sync"
	"time"
)

// Blockchain is a linear, append-only sequence of validated blocks. It is
// never empty: NewBlockchain inserts the genesis block.
type Blockchain struct {
	mu     sync.RWMutex
	blocks []Block
}

// GenesisBlock returns the root block shared by every chain: index 0, no
// transactions, an all-zero previous hash and the Unix epoch as timestamp.
// Independent nodes must agree on it for their blocks to link.
func GenesisBlock() Block {
	return NewBlockAt(0, nil, ZeroHash, time.UnixMilli(0))
}

// NewBlockchain creates a blockchain holding only the genesis block.
func NewBlockchain() *Blockchain {
	return &Blockchain{
		blocks: []Block{GenesisBlock()},
	}
}

// Append validates candidate against the current tip and appends it.
// The checks run in a fixed order and the first failure is returned:
// index, timestamp, hash link, block hash, then transaction signatures.
// Structural checks come first because the transactions of a misplaced block
// are irrelevant. On error the chain is left unchanged.
func (bc *Blockchain) Append(candidate Block) error {
	bc.mu.Lock()
	defer bc.mu.Unlock()

	latest := bc.blocks[len(bc.blocks)-1]
	if err := validateBlock(candidate, latest); err != nil {
		return err
	}
	bc.blocks = append(bc.blocks, candidate.Clone())
	return nil
}

// Latest returns a copy of the chain tip.
func (bc *Blockchain) Latest() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[len(bc.blocks)-1].Clone()
}

// Genesis returns a copy of the first block.
func (bc *Blockchain) Genesis() Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return bc.blocks[0].Clone()
}

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	return len(bc.blocks)
}

// GetByIndex retrieves a copy of the block at index.
func (bc *Blockchain) GetByIndex(index uint64) (Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	if index >= uint64(len(bc.blocks)) {
		return Block{}, fmt.Errorf("index %d out of range", index)
	}
	return bc.blocks[index].Clone(), nil
}

// Blocks returns a copy of the whole chain.
func (bc *Blockchain) Blocks() []Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	out := make([]Block, len(bc.blocks))
	for i, b := range bc.blocks {
		out[i] = b.Clone()
	}
	return out
}

// Verify re-validates the entire chain from genesis.
func (bc *Blockchain) Verify() error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()

	genesis := bc.blocks[0]
	if genesis.Index != 0 || !genesis.PreviousHash.IsZero() || len(genesis.Transactions) != 0 {
		return fmt.Errorf("invalid genesis block")
	}
	if genesis.Hash != genesis.ComputeHash() {
		return fmt.Errorf("genesis: %w", ErrHashMismatch)
	}
	for i := 1; i < len(bc.blocks); i++ {
		if err := validateBlock(bc.blocks[i], bc.blocks[i-1]); err != nil {
			return fmt.Errorf("block %d invalid: %w", i, err)
		}
	}
	return nil
}

// validateBlock checks that current may follow previous.
func validateBlock(current, previous Block) error {
	if current.Index != previous.Index+1 {
		return fmt.Errorf("%w: expected %d, got %d", ErrIndexMismatch, previous.Index+1, current.Index)
	}
	if current.Timestamp <= previous.Timestamp {
		return fmt.Errorf("%w: %s is not after %s", ErrTimeWentBackwards,
			time.UnixMilli(current.Timestamp).Format(time.RFC3339Nano),
			time.UnixMilli(previous.Timestamp).Format(time.RFC3339Nano))
	}
	if current.PreviousHash != previous.Hash {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashLinkMismatch, previous.Hash.Short(), current.PreviousHash.Short())
	}
	if expected := current.ComputeHash(); current.Hash != expected {
		return fmt.Errorf("%w: expected %s, got %s", ErrHashMismatch, expected.Short(), current.Hash.Short())
	}
	return current.VerifyTransactions()
}
