package accumulator

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// term is one factor e(p, q) of a pairing product equality check.
type term struct {
	p bls12381.G1Affine
	q bls12381.G2Affine
}

// productsEqual reports whether prod(lhs) == prod(rhs) in GT, checked via a
// single multi-pairing call: prod(lhs) * prod(rhs)^-1 == 1, implemented by
// negating every G2 element on the right-hand side before the pairing
// check. Every proof verifier in this package is built from one or more
// calls to this function.
func productsEqual(lhs, rhs []term) bool {
	ps := make([]bls12381.G1Affine, 0, len(lhs)+len(rhs))
	qs := make([]bls12381.G2Affine, 0, len(lhs)+len(rhs))

	for _, t := range lhs {
		ps = append(ps, t.p)
		qs = append(qs, t.q)
	}
	for _, t := range rhs {
		var negQ bls12381.G2Affine
		negQ.Neg(&t.q)
		ps = append(ps, t.p)
		qs = append(qs, negQ)
	}

	ok, err := bls12381.PairingCheck(ps, qs)
	if err != nil {
		return false
	}
	return ok
}

// pairEqual is the common two-term case: e(p1,q1) == e(p2,q2).
func pairEqual(p1 bls12381.G1Affine, q1 bls12381.G2Affine, p2 bls12381.G1Affine, q2 bls12381.G2Affine) bool {
	return productsEqual([]term{{p1, q1}}, []term{{p2, q2}})
}
