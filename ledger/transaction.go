package ledger

import (
	"fmt"
	"time"

	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/sign/schnorr"
)

// Transaction moves Amount from Sender to Receiver. The signature covers the
// content hash only, so any field change after signing invalidates it.
type Transaction struct {
	Sender    kyber.Point
	Receiver  kyber.Point
	Amount    uint64
	Timestamp int64 // milliseconds since the Unix epoch
	Signature []byte
}

// NewTransaction builds an unsigned transaction stamped with the current time.
// Amounts are not validated: zero and very large values are both accepted.
func NewTransaction(sender, receiver kyber.Point, amount uint64) Transaction {
	return NewTransactionAt(sender, receiver, amount, time.Now())
}

// NewTransactionAt is NewTransaction with an explicit timestamp.
func NewTransactionAt(sender, receiver kyber.Point, amount uint64, ts time.Time) Transaction {
	return Transaction{
		Sender:    sender,
		Receiver:  receiver,
		Amount:    amount,
		Timestamp: ts.UnixMilli(),
	}
}

// ContentHash hashes sender, receiver, amount and timestamp. It is the
// signing payload and the key under which pools store the transaction.
func (t *Transaction) ContentHash() Hash {
	var w hashWriter
	w.point(t.Sender)
	w.point(t.Receiver)
	w.uint64(t.Amount)
	w.timestamp(t.Timestamp)
	return w.sum()
}

// Sign signs the content hash with priv. Only the sender may sign: if priv
// does not match Sender, ErrKeyMismatch is returned and the transaction stays
// as it was.
func (t *Transaction) Sign(priv kyber.Scalar) error {
	if priv == nil || !sameKey(PublicKeyOf(priv), t.Sender) {
		return ErrKeyMismatch
	}
	h := t.ContentHash()
	sig, err := schnorr.Sign(suite, priv, h[:])
	if err != nil {
		return fmt.Errorf("sign transaction: %w", err)
	}
	t.Signature = sig
	return nil
}

// VerifySignature checks the signature against Sender and says why it fails.
func (t *Transaction) VerifySignature() error {
	if len(t.Signature) == 0 {
		return ErrMissingSignature
	}
	if t.Sender == nil {
		return fmt.Errorf("%w: no sender key", ErrBadSignature)
	}
	h := t.ContentHash()
	if err := schnorr.Verify(suite, t.Sender, h[:], t.Signature); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSignature, err)
	}
	return nil
}

// Verify reports whether the transaction carries a valid sender signature.
func (t *Transaction) Verify() bool {
	return t.VerifySignature() == nil
}

// IsSigned reports whether a signature is attached, valid or not.
func (t *Transaction) IsSigned() bool {
	return len(t.Signature) > 0
}

// Clone returns a copy that shares no mutable memory with t.
func (t Transaction) Clone() Transaction {
	if t.Signature != nil {
		t.Signature = append([]byte(nil), t.Signature...)
	}
	return t
}
