// Package node implements a ledger peer: an actor that owns one Blockchain
// replica, one pool of pending transactions and one signing identity, and
// that talks to other peers only through broadcast messages.
//
// # Core Components
//
// Node: Creates and signs transactions, assembles blocks from its pool and
// reconciles its state with the messages it drains.
//
// Message: The wire-level union a node may broadcast, either NewTransaction
// or NewBlock. Payloads travel as whole values.
//
// Observer: Receives one Report per processed message. The default observer
// writes structured log records; processing itself never does I/O.
//
// # Message Handling
//
// A drain cycle polls the inbox until it is empty:
//  1. NewTransaction: the signature is verified and the transaction is
//     pooled under its content hash; forged and duplicate transactions are
//     discarded
//  2. NewBlock: the block is appended to the local chain and every pooled
//     transaction it confirms is removed; an invalid block is discarded
//
// Failures are reported and never stop the cycle. Only a closed inbox ends
// it early, with ErrChannelClosed.
//
// # Ownership
//
// A Node is a sequential actor and is not safe for concurrent use. Nodes
// never share chains or pools; the broadcast channel is their only shared
// structure.
package node
