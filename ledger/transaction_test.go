package ledger

import (
	"errors"
	"math"
	"testing"
	"time"
)

func signedTransaction(t *testing.T, sender, receiver KeyPair, amount uint64) Transaction {
	t.Helper()
	tx := NewTransaction(sender.Public, receiver.Public, amount)
	if err := tx.Sign(sender.Private); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	return tx
}

func TestNewTransactionIsUnsigned(t *testing.T) {
	a, b := NewKeyPair(), NewKeyPair()
	before := time.Now().UnixMilli()
	tx := NewTransaction(a.Public, b.Public, 10)
	after := time.Now().UnixMilli()

	if tx.IsSigned() {
		t.Fatalf("new transaction should not carry a signature")
	}
	if tx.Verify() {
		t.Fatalf("unsigned transaction should not verify")
	}
	if !errors.Is(tx.VerifySignature(), ErrMissingSignature) {
		t.Fatalf("expected ErrMissingSignature, got %v", tx.VerifySignature())
	}
	if tx.Timestamp < before || tx.Timestamp > after {
		t.Fatalf("timestamp %d outside [%d, %d]", tx.Timestamp, before, after)
	}
}

func TestSignAndVerify(t *testing.T) {
	a, b := NewKeyPair(), NewKeyPair()
	for _, amount := range []uint64{0, 1, 42, math.MaxUint64} {
		tx := signedTransaction(t, a, b, amount)
		if !tx.Verify() {
			t.Fatalf("signed transaction with amount %d should verify", amount)
		}
	}
}

func TestSignWithForeignKeyFails(t *testing.T) {
	a, b := NewKeyPair(), NewKeyPair()
	tx := NewTransaction(a.Public, b.Public, 5)

	err := tx.Sign(b.Private)
	if !errors.Is(err, ErrKeyMismatch) {
		t.Fatalf("expected ErrKeyMismatch, got %v", err)
	}
	if tx.IsSigned() {
		t.Fatalf("transaction must stay unsigned after a rejected Sign")
	}
	if tx.Verify() {
		t.Fatalf("transaction must not verify after a rejected Sign")
	}
}

func TestVerifyFailsIfTampered(t *testing.T) {
	a, b, c := NewKeyPair(), NewKeyPair(), NewKeyPair()
	tests := []struct {
		name   string
		tamper func(tx *Transaction)
	}{
		{"sender", func(tx *Transaction) { tx.Sender = c.Public }},
		{"receiver", func(tx *Transaction) { tx.Receiver = c.Public }},
		{"amount", func(tx *Transaction) { tx.Amount++ }},
		{"timestamp", func(tx *Transaction) { tx.Timestamp-- }},
		{"signature", func(tx *Transaction) { tx.Signature[0] ^= 0xff }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := signedTransaction(t, a, b, 100)
			tt.tamper(&tx)
			if tx.Verify() {
				t.Fatalf("tampered %s should not verify", tt.name)
			}
			if !errors.Is(tx.VerifySignature(), ErrBadSignature) {
				t.Fatalf("expected ErrBadSignature, got %v", tx.VerifySignature())
			}
		})
	}
}

func TestContentHashIgnoresSignature(t *testing.T) {
	a, b := NewKeyPair(), NewKeyPair()
	tx := NewTransaction(a.Public, b.Public, 7)
	unsigned := tx.ContentHash()
	if err := tx.Sign(a.Private); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if tx.ContentHash() != unsigned {
		t.Fatalf("signing must not change the content hash")
	}
}

func TestContentHashDeterministic(t *testing.T) {
	a, b := NewKeyPair(), NewKeyPair()
	ts := time.UnixMilli(1_700_000_000_000)
	t1 := NewTransactionAt(a.Public, b.Public, 3, ts)
	t2 := NewTransactionAt(a.Public, b.Public, 3, ts)
	if err := t1.Sign(a.Private); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if err := t2.Sign(a.Private); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if t1.ContentHash() != t2.ContentHash() {
		t.Fatalf("equal transactions must hash equally")
	}

	t3 := NewTransactionAt(a.Public, b.Public, 4, ts)
	if t1.ContentHash() == t3.ContentHash() {
		t.Fatalf("different amounts must hash differently")
	}
	t4 := NewTransactionAt(b.Public, a.Public, 3, ts)
	if t1.ContentHash() == t4.ContentHash() {
		t.Fatalf("swapped keys must hash differently")
	}
}

func TestCloneDoesNotShareSignature(t *testing.T) {
	a, b := NewKeyPair(), NewKeyPair()
	tx := signedTransaction(t, a, b, 1)
	c := tx.Clone()
	c.Signature[0] ^= 0xff
	if !tx.Verify() {
		t.Fatalf("mutating the clone must not affect the original")
	}
}
