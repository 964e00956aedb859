package node

import (
	"errors"

	"github.com/luca-patrignani/cairn/network"
)

var (
	// ErrDuplicateTransaction marks a transaction that is already pooled.
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	// ErrUnverifiedTransaction marks a transaction whose signature does not
	// verify. Redelivery cannot fix it.
	ErrUnverifiedTransaction = errors.New("unverified transaction")
	// ErrUnknownMessage marks a message of an unknown kind.
	ErrUnknownMessage = errors.New("unknown message kind")
	// ErrChannelClosed ends a drain cycle and the node's messaging lifecycle.
	ErrChannelClosed = network.ErrClosed
)
