// Package ledger implements the append-only chain of signed value transfers
// that every node replicates.
//
// # Core Components
//
// Transaction: A signed transfer of an amount from a sender key to a receiver
// key. Its content hash is both the signing payload and the pool key.
//
// Block: An ordered batch of transactions bound to its predecessor through a
// SHA-256 hash pointer.
//
// Blockchain: The validated sequence of blocks, rooted at a fixed genesis
// block. Append is the only way to extend it.
//
// # Security Properties
//
// The blockchain provides:
//   - Immutability: blocks are never removed or reordered
//   - Verifiability: the whole chain can be re-validated from genesis
//   - Tamper detection: changing any field of a block or of one of its
//     transactions breaks either the block hash or a signature
//
// # Hash Layout
//
// Hashes are computed over a fixed big-endian byte layout, so two nodes
// always agree on the hash of identical field values:
//
//	transaction: sender ‖ receiver ‖ amount(8) ‖ timestamp(16)
//	block:       index(8) ‖ tx hashes... ‖ previous hash(32) ‖ timestamp(16) ‖ nonce(8)
//
// Public keys are written in their 32-byte compressed Ed25519 encoding.
package ledger
