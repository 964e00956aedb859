package mempool

import (
	"testing"
	"time"

	"github.com/luca-patrignani/cairn/ledger"
)

func makeTx(t *testing.T, sender, receiver ledger.KeyPair, amount uint64) ledger.Transaction {
	t.Helper()
	tx := ledger.NewTransactionAt(sender.Public, receiver.Public, amount, time.UnixMilli(1_000))
	if err := tx.Sign(sender.Private); err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	return tx
}

func TestAddAndDeduplicate(t *testing.T) {
	a, b := ledger.NewKeyPair(), ledger.NewKeyPair()
	p := New()
	tx := makeTx(t, a, b, 1)

	if !p.Add(tx) {
		t.Fatal("failed to add tx")
	}
	if p.Add(tx) {
		t.Fatal("duplicate tx should not be added")
	}
	if p.Len() != 1 {
		t.Fatalf("expected 1 pending tx, got %d", p.Len())
	}
	if !p.Has(tx.ContentHash()) {
		t.Fatal("pool should have tx")
	}
}

func TestInsertionOrder(t *testing.T) {
	a, b := ledger.NewKeyPair(), ledger.NewKeyPair()
	p := New()
	var want []ledger.Hash
	for _, amount := range []uint64{5, 1, 9, 3} {
		tx := makeTx(t, a, b, amount)
		p.Add(tx)
		want = append(want, tx.ContentHash())
	}
	for run := 0; run < 3; run++ {
		txs := p.Transactions()
		if len(txs) != len(want) {
			t.Fatalf("expected %d txs, got %d", len(want), len(txs))
		}
		for i, tx := range txs {
			if tx.ContentHash() != want[i] {
				t.Fatalf("position %d out of insertion order", i)
			}
		}
	}

	p.Remove(want[1])
	hashes := p.Hashes()
	if len(hashes) != 3 || hashes[0] != want[0] || hashes[1] != want[2] || hashes[2] != want[3] {
		t.Fatalf("order not preserved after removal: %v", hashes)
	}
}

func TestRemove(t *testing.T) {
	a, b := ledger.NewKeyPair(), ledger.NewKeyPair()
	p := New()
	tx := makeTx(t, a, b, 1)
	p.Add(tx)
	if !p.Remove(tx.ContentHash()) {
		t.Fatal("remove should report the pending tx")
	}
	if p.Remove(tx.ContentHash()) {
		t.Fatal("second remove should report nothing")
	}
	if _, ok := p.Get(tx.ContentHash()); ok {
		t.Fatal("tx should have been removed")
	}
}

func TestRemoveConfirmed(t *testing.T) {
	a, b := ledger.NewKeyPair(), ledger.NewKeyPair()
	p := New()
	t1, t2, t3 := makeTx(t, a, b, 1), makeTx(t, a, b, 2), makeTx(t, a, b, 3)
	outsider := makeTx(t, b, a, 4)
	p.Add(t1)
	p.Add(t2)
	p.Add(t3)

	blk := ledger.NewBlock(1, []ledger.Transaction{t1, t3, outsider}, ledger.ZeroHash)
	if n := p.RemoveConfirmed(blk); n != 2 {
		t.Fatalf("expected 2 removals, got %d", n)
	}
	if p.Len() != 1 || !p.Has(t2.ContentHash()) {
		t.Fatalf("only t2 should remain pending")
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	a, b := ledger.NewKeyPair(), ledger.NewKeyPair()
	p := New()
	tx := makeTx(t, a, b, 1)
	p.Add(tx)
	txs := p.Transactions()
	txs[0].Signature[0] ^= 0xff
	got, _ := p.Get(tx.ContentHash())
	if !got.Verify() {
		t.Fatal("snapshot mutation leaked into the pool")
	}
}
