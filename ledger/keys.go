package ledger

import (
	"go.dedis.ch/kyber/v4"
	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/key"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// KeyPair is a signing identity. Only the node that owns it should ever
// hold Private.
type KeyPair struct {
	Public  kyber.Point
	Private kyber.Scalar
}

// NewKeyPair draws a fresh random key pair on the Ed25519 suite.
func NewKeyPair() KeyPair {
	p := key.NewKeyPair(suite)
	return KeyPair{Public: p.Public, Private: p.Private}
}

// PublicKeyOf derives the public key matching a private scalar.
func PublicKeyOf(priv kyber.Scalar) kyber.Point {
	return suite.Point().Mul(priv, nil)
}

// sameKey reports whether two public keys are equal, treating nil as
// different from everything.
func sameKey(a, b kyber.Point) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Equal(b)
}
