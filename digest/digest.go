// Package digest maps application-level values into the accumulator's
// scalar field through a deterministic, collision-resistant digest. It is
// intentionally the thinnest layer in the repository: the accumulator only
// ever consumes field elements, and how an application arrives at one is its
// own concern.
package digest

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Digest is a fixed-size collision-resistant digest of an application value.
type Digest [32]byte

// Digestible is implemented by any application value that can produce its
// own digest. The accumulator's public API accepts Digestible values rather
// than raw field elements so callers never need to reason about field
// reduction themselves.
type Digestible interface {
	ToDigest() Digest
}

// ToField reduces a digest into the scalar field. SetBytes performs the
// modular reduction, so every digest maps to exactly one field element,
// though the map is not injective: this is the same caveat any
// hash-to-field construction carries, and is inherited, not introduced,
// here.
func ToField(d Digest) fr.Element {
	var e fr.Element
	e.SetBytes(d[:])
	return e
}

// Int64 is a convenience Digestible for integer-keyed test and demo data.
type Int64 int64

// ToDigest implements Digestible.
func (v Int64) ToDigest() Digest {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(v))
	return sha256.Sum256(buf[:])
}

// Bytes is a convenience Digestible for arbitrary byte-slice keyed data.
type Bytes []byte

// ToDigest implements Digestible.
func (b Bytes) ToDigest() Digest {
	return sha256.Sum256(b)
}
