package accumulator

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/logger"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kazmiller0/esa-go/poly"
	"github.com/kazmiller0/esa-go/setup"
)

// IntersectionProof attests that AccIntersection commits to S1 n S2 for two
// accumulators committing to S1, S2. Q1AtS and Q2AtS are g2 raised to
// (P_S1/P_I)(s) and (P_S2/P_I)(s) respectively, certifying I is a subset of
// each; BezoutU and BezoutV are g1 raised to the Bezout coefficients of
// those two quotients, certifying the quotients are coprime (so I could not
// be made any larger while staying a subset of both).
type IntersectionProof struct {
	AccIntersection bls12381.G1Affine
	Q1AtS           bls12381.G2Affine
	Q2AtS           bls12381.G2Affine
	BezoutU         bls12381.G1Affine
	BezoutV         bls12381.G1Affine
}

// UnionProof attests that AccUnion commits to S1 u S2, building on an
// embedded IntersectionProof that binds and certifies I = S1 n S2. R1AtS
// and R2AtS are g2 raised to (P_{S2\I})(s) and (P_{S1\I})(s), certifying
// S1 and S2 are each a subset of the union.
type UnionProof struct {
	AccUnion bls12381.G1Affine
	Inter    IntersectionProof
	R1AtS    bls12381.G2Affine
	R2AtS    bls12381.G2Affine
}

// buildIntersectionProof computes I = a.elements n other.elements and the
// witnesses certifying it, without requiring deg(g) == 0 to hold trivially:
// it fails with ErrCoprimalityFailed if the computed complements are not
// coprime, which would mean the intersection was computed incorrectly.
func buildIntersectionProof(a, other *Accumulator) (intersection mapset.Set[fr.Element], proof IntersectionProof, err error) {
	intersection = a.elements.Intersect(other.elements)

	pI := poly.FromRoots(intersection.ToSlice())
	p1 := a.buildPolynomial()
	p2 := other.buildPolynomial()

	q1, r1, err := p1.DivMod(pI)
	if err != nil || !r1.IsZero() {
		logger.Logger().Error().Msg("accumulator: intersection polynomial does not divide first accumulator's polynomial")
		return nil, IntersectionProof{}, fmt.Errorf("prove_intersection: %w", ErrCoprimalityFailed)
	}
	q2, r2, err := p2.DivMod(pI)
	if err != nil || !r2.IsZero() {
		logger.Logger().Error().Msg("accumulator: intersection polynomial does not divide second accumulator's polynomial")
		return nil, IntersectionProof{}, fmt.Errorf("prove_intersection: %w", ErrCoprimalityFailed)
	}

	g, u, v, err := poly.XGCD(q1, q2)
	if err != nil {
		return nil, IntersectionProof{}, fmt.Errorf("prove_intersection: %w", ErrCoprimalityFailed)
	}
	if g.Degree() != 0 {
		logger.Logger().Error().Msg("accumulator: intersection complements are not coprime")
		return nil, IntersectionProof{}, fmt.Errorf("prove_intersection: %w", ErrCoprimalityFailed)
	}

	c := g.ConstantCoefficient()
	var cInv fr.Element
	cInv.Inverse(&c)
	u = u.Scale(cInv)
	v = v.Scale(cInv)

	accI := a.params.G1PowerAtSecret(pI)
	proof = IntersectionProof{
		AccIntersection: accI,
		Q1AtS:           a.params.G2PowerAtSecret(q1),
		Q2AtS:           a.params.G2PowerAtSecret(q2),
		BezoutU:         a.params.G1PowerAtSecret(u),
		BezoutV:         a.params.G1PowerAtSecret(v),
	}
	return intersection, proof, nil
}

// ProveIntersection returns an accumulator committing to a.elements n
// other.elements, together with a proof of that relation, as group elements
// only: no element values are disclosed.
func (a *Accumulator) ProveIntersection(other *Accumulator) (*Accumulator, *IntersectionProof, error) {
	intersection, proof, err := buildIntersectionProof(a, other)
	if err != nil {
		return nil, nil, err
	}
	accI := &Accumulator{params: a.params, value: proof.AccIntersection, elements: intersection}
	return accI, &proof, nil
}

// ProveIntersectionWithValues behaves like ProveIntersection but also
// discloses the intersection's plaintext element list, for verifiers that
// hold trusted-setup capability and want to check the claimed commitment
// directly (see VerifyIntersectionWithValues).
func (a *Accumulator) ProveIntersectionWithValues(other *Accumulator) (*Accumulator, *IntersectionProof, []fr.Element, error) {
	accI, proof, err := a.ProveIntersection(other)
	if err != nil {
		return nil, nil, nil, err
	}
	return accI, proof, accI.elements.ToSlice(), nil
}

// VerifyIntersection is a fully public, static verifier: given only the two
// source accumulator values, a claimed intersection accumulator value, and
// a proof, it checks the relation using pairings alone.
func VerifyIntersection(acc1, acc2, accIntersection bls12381.G1Affine, proof *IntersectionProof) bool {
	if !accIntersection.Equal(&proof.AccIntersection) {
		return false
	}
	g1, g2 := defaultGenerators()
	if !pairEqual(accIntersection, proof.Q1AtS, acc1, g2) {
		return false
	}
	if !pairEqual(accIntersection, proof.Q2AtS, acc2, g2) {
		return false
	}
	return productsEqual(
		[]term{{proof.BezoutU, proof.Q1AtS}, {proof.BezoutV, proof.Q2AtS}},
		[]term{{g1, g2}},
	)
}

// VerifyIntersectionWithValues additionally takes the disclosed plaintext
// intersection elements and the trusted-setup parameters, and checks the
// claimed commitment directly against the disclosed roots, forgoing
// pairings for that part of the check.
func VerifyIntersectionWithValues(params *setup.Params, acc1, acc2, accIntersection bls12381.G1Affine, elements []fr.Element, proof *IntersectionProof) bool {
	pI := poly.FromRoots(elements)
	if !params.VerifyCommitment(pI, accIntersection) {
		return false
	}
	return VerifyIntersection(acc1, acc2, accIntersection, proof)
}

// ProveUnion returns an accumulator committing to a.elements u
// other.elements, together with a proof of that relation.
func (a *Accumulator) ProveUnion(other *Accumulator) (*Accumulator, *UnionProof, error) {
	intersection, interProof, err := buildIntersectionProof(a, other)
	if err != nil {
		return nil, nil, err
	}

	union := a.elements.Clone()
	union = union.Union(other.elements)

	complementOfS1 := other.elements.Difference(intersection) // S2 \ I, witnesses S1 subseteq U
	complementOfS2 := a.elements.Difference(intersection)     // S1 \ I, witnesses S2 subseteq U

	r1 := poly.FromRoots(complementOfS1.ToSlice())
	r2 := poly.FromRoots(complementOfS2.ToSlice())

	pU := poly.FromRoots(union.ToSlice())
	accU := a.params.G1PowerAtSecret(pU)

	proof := &UnionProof{
		AccUnion: accU,
		Inter:    interProof,
		R1AtS:    a.params.G2PowerAtSecret(r1),
		R2AtS:    a.params.G2PowerAtSecret(r2),
	}
	accUnion := &Accumulator{params: a.params, value: accU, elements: union}
	return accUnion, proof, nil
}

// ProveUnionWithValues behaves like ProveUnion but also discloses the
// plaintext union and intersection element lists.
func (a *Accumulator) ProveUnionWithValues(other *Accumulator) (accUnion *Accumulator, proof *UnionProof, unionValues, intersectionValues []fr.Element, err error) {
	accUnion, proof, err = a.ProveUnion(other)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	intersectionValues = a.elements.Intersect(other.elements).ToSlice()
	return accUnion, proof, accUnion.elements.ToSlice(), intersectionValues, nil
}

// VerifyUnion is a fully public, static verifier for union proofs.
func VerifyUnion(acc1, acc2, accUnion bls12381.G1Affine, proof *UnionProof) bool {
	if !accUnion.Equal(&proof.AccUnion) {
		return false
	}
	if !VerifyIntersection(acc1, acc2, proof.Inter.AccIntersection, &proof.Inter) {
		return false
	}
	// R1 = P_{S2\I} = Q2 and R2 = P_{S1\I} = Q1, so the union witnesses must
	// be the same group elements the coprime intersection quotients are.
	if !proof.R1AtS.Equal(&proof.Inter.Q2AtS) || !proof.R2AtS.Equal(&proof.Inter.Q1AtS) {
		return false
	}
	_, g2 := defaultGenerators()
	if !pairEqual(acc1, proof.R1AtS, accUnion, g2) {
		return false
	}
	return pairEqual(acc2, proof.R2AtS, accUnion, g2)
}

// VerifyUnionWithValues additionally checks the disclosed plaintext union
// and intersection element lists directly against the claimed commitments.
func VerifyUnionWithValues(params *setup.Params, acc1, acc2, accUnion bls12381.G1Affine, unionValues, intersectionValues []fr.Element, proof *UnionProof) bool {
	pU := poly.FromRoots(unionValues)
	if !params.VerifyCommitment(pU, accUnion) {
		return false
	}
	pI := poly.FromRoots(intersectionValues)
	if !params.VerifyCommitment(pI, proof.Inter.AccIntersection) {
		return false
	}
	return VerifyUnion(acc1, acc2, accUnion, proof)
}

func defaultGenerators() (bls12381.G1Affine, bls12381.G2Affine) {
	_, _, g1, g2 := bls12381.Generators()
	return g1, g2
}
