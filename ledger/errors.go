package ledger

import "errors"

// Append failures, in the order Blockchain.Append checks them.
var (
	ErrIndexMismatch      = errors.New("indexes mismatch")
	ErrTimeWentBackwards  = errors.New("time goes backwards")
	ErrHashLinkMismatch   = errors.New("hashes link mismatch")
	ErrHashMismatch       = errors.New("hash error")
	ErrTransactionInvalid = errors.New("error in transactions")
)

// Signing and verification failures.
var (
	ErrKeyMismatch      = errors.New("signing key does not belong to sender")
	ErrMissingSignature = errors.New("missing signature")
	ErrBadSignature     = errors.New("bad signature")
)
