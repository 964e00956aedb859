package node

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/luca-patrignani/cairn/ledger"
)

// Kind tells which variant a Message carries.
type Kind int

const (
	KindNewTransaction Kind = iota + 1
	KindNewBlock
)

func (k Kind) String() string {
	switch k {
	case KindNewTransaction:
		return "NewTransaction"
	case KindNewBlock:
		return "NewBlock"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Message is the union of events a node may broadcast. Exactly one of
// Transaction and Block is meaningful, as selected by Kind.
type Message struct {
	ID          string
	Kind        Kind
	Transaction ledger.Transaction
	Block       ledger.Block
}

// NewTransactionMessage wraps a copy of tx.
func NewTransactionMessage(tx ledger.Transaction) Message {
	return Message{
		ID:          uuid.NewString(),
		Kind:        KindNewTransaction,
		Transaction: tx.Clone(),
	}
}

// NewBlockMessage wraps a copy of b.
func NewBlockMessage(b ledger.Block) Message {
	return Message{
		ID:    uuid.NewString(),
		Kind:  KindNewBlock,
		Block: b.Clone(),
	}
}
