// Package accumulator implements a dynamic cryptographic accumulator over
// the BLS12-381 pairing: a constant-size commitment to a set of field
// elements supporting succinct membership, non-membership, and
// set-relational proofs, and incremental updates as elements are added or
// removed.
package accumulator

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kazmiller0/esa-go/digest"
	"github.com/kazmiller0/esa-go/poly"
	"github.com/kazmiller0/esa-go/setup"
)

// Accumulator commits to a finite set of field elements S as
// acc = g1^{P(s)}, where P(X) = prod_{e in S} (X - e). It is not safe for
// concurrent use: callers synchronize externally if multiple goroutines
// mutate the same instance.
type Accumulator struct {
	params   *setup.Params
	value    bls12381.G1Affine
	elements mapset.Set[fr.Element]
}

// New returns an empty accumulator bound to the given trusted-setup
// parameters. The empty accumulator's value is g1^1 (the generator), per
// the empty-product convention P(X) = 1.
func New(params *setup.Params) *Accumulator {
	return &Accumulator{
		params:   params,
		value:    params.G1Generator(),
		elements: mapset.NewThreadUnsafeSet[fr.Element](),
	}
}

// Len returns the number of elements currently committed to.
func (a *Accumulator) Len() int { return a.elements.Cardinality() }

// Value returns the accumulator's current committed value.
func (a *Accumulator) Value() bls12381.G1Affine { return a.value }

// Params returns the trusted-setup parameters this accumulator is bound to.
func (a *Accumulator) Params() *setup.Params { return a.params }

// Add inserts x into the set, returning a transition proof. It fails with
// ErrDuplicateElement if x is already a member.
func (a *Accumulator) Add(x digest.Digestible) (*AddProof, error) {
	fx := digest.ToField(x.ToDigest())
	if a.elements.Contains(fx) {
		return nil, fmt.Errorf("add %v: %w", fx, ErrDuplicateElement)
	}

	old := a.value
	newValue := a.params.AdvanceG1(old, fx)

	a.value = newValue
	a.elements.Add(fx)

	return &AddProof{OldAcc: old, NewAcc: newValue, Element: fx}, nil
}

// AddBatch applies Add to each element in order. On the first failure, the
// prior successes in this call are retained (the accumulator is not rolled
// back); the returned proofs cover exactly the successful prefix, and the
// error identifies which element failed.
func (a *Accumulator) AddBatch(xs []digest.Digestible) ([]*AddProof, error) {
	proofs := make([]*AddProof, 0, len(xs))
	for i, x := range xs {
		p, err := a.Add(x)
		if err != nil {
			return proofs, fmt.Errorf("add_batch: element %d: %w", i, err)
		}
		proofs = append(proofs, p)
	}
	return proofs, nil
}

// Delete removes x from the set, returning a transition proof. It fails
// with ErrElementNotFound if x is not a member, or ErrArithmeticDomain in
// the negligible-probability case that x's field encoding equals the
// trusted setup's secret scalar.
func (a *Accumulator) Delete(x digest.Digestible) (*DeleteProof, error) {
	fx := digest.ToField(x.ToDigest())
	if !a.elements.Contains(fx) {
		return nil, fmt.Errorf("delete %v: %w", fx, ErrElementNotFound)
	}

	old := a.value
	newValue, err := a.params.RetreatG1(old, fx)
	if err != nil {
		return nil, fmt.Errorf("delete %v: %w", fx, ErrArithmeticDomain)
	}

	a.value = newValue
	a.elements.Remove(fx)

	return &DeleteProof{OldAcc: old, NewAcc: newValue, Element: fx}, nil
}

// Update removes oldX and inserts newX, equivalent to Delete followed by
// Add. It is NOT atomic: if the Add step fails (e.g. newX duplicates an
// existing element), the Delete has already taken effect and is not rolled
// back. Callers that need atomicity should snapshot the accumulator's
// element list beforehand.
func (a *Accumulator) Update(oldX, newX digest.Digestible) (*DeleteProof, *AddProof, error) {
	del, err := a.Delete(oldX)
	if err != nil {
		return nil, nil, err
	}
	add, err := a.Add(newX)
	if err != nil {
		return del, nil, err
	}
	return del, add, nil
}

// buildPolynomial returns P(X) = prod_{e in S} (X - e) for the
// accumulator's current element set.
func (a *Accumulator) buildPolynomial() poly.Poly {
	return poly.FromRoots(a.elements.ToSlice())
}
