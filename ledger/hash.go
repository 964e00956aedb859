package ledger

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"

	"go.dedis.ch/kyber/v4"
)

// HashSize is the length in bytes of every hash in the ledger.
const HashSize = sha256.Size

// Hash is a SHA-256 digest.
type Hash [HashSize]byte

// ZeroHash is the previous hash of the genesis block.
var ZeroHash Hash

// IsZero reports whether h is all zero bytes.
func (h Hash) IsZero() bool {
	return h == ZeroHash
}

// String returns the hex encoding of the hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Short returns the first 8 hex characters, used in logs.
func (h Hash) Short() string {
	return h.String()[:8]
}

// hashWriter accumulates the canonical byte layout of a ledger value.
type hashWriter struct {
	buf []byte
}

func (w *hashWriter) bytes(b []byte) {
	w.buf = append(w.buf, b...)
}

func (w *hashWriter) uint64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// timestamp writes a millisecond timestamp as a 128-bit big-endian integer.
func (w *hashWriter) timestamp(ms int64) {
	var high uint64
	if ms < 0 {
		high = ^uint64(0)
	}
	w.uint64(high)
	w.uint64(uint64(ms))
}

func (w *hashWriter) point(p kyber.Point) {
	if p == nil {
		return
	}
	b, err := p.MarshalBinary()
	if err != nil {
		return
	}
	w.bytes(b)
}

func (w *hashWriter) sum() Hash {
	return sha256.Sum256(w.buf)
}
