package accumulator

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/logger"

	"github.com/kazmiller0/esa-go/digest"
	"github.com/kazmiller0/esa-go/poly"
	"github.com/kazmiller0/esa-go/setup"
)

// AddProof attests the transition S -> S u {element}: NewAcc = OldAcc^(s-element).
type AddProof struct {
	OldAcc  bls12381.G1Affine
	NewAcc  bls12381.G1Affine
	Element fr.Element
}

// Verify re-checks the transition using only the pairing and the given
// trusted-setup parameters, independent of any particular accumulator's
// in-memory state. Useful for an auditor that only ever sees proofs.
func (p *AddProof) Verify(params *setup.Params) bool {
	g2sx := params.G2PowerSMinus(p.Element)
	return pairEqual(p.NewAcc, params.G2Generator(), p.OldAcc, g2sx)
}

// DeleteProof attests the transition S -> S \ {element}: NewAcc = OldAcc^((s-element)^-1).
type DeleteProof struct {
	OldAcc  bls12381.G1Affine
	NewAcc  bls12381.G1Affine
	Element fr.Element
}

// Verify re-checks the transition using only the pairing.
func (p *DeleteProof) Verify(params *setup.Params) bool {
	g2sx := params.G2PowerSMinus(p.Element)
	return pairEqual(p.NewAcc, g2sx, p.OldAcc, params.G2Generator())
}

// MembershipProof attests that Element is a member of the set committed to
// by some accumulator value: Witness = acc^{(s-element)^-1}.
type MembershipProof struct {
	Witness bls12381.G1Affine
	Element fr.Element
}

func (*MembershipProof) isQueryResult() {}

// Verify reports whether the proof is valid against the given accumulator
// value. A proof remains valid against any accumulator value equal to the
// one it was issued against, and only that one: this is how the scheme
// detects staleness after a later mutation.
func (p *MembershipProof) Verify(params *setup.Params, acc bls12381.G1Affine) bool {
	g2sx := params.G2PowerSMinus(p.Element)
	return pairEqual(p.Witness, g2sx, acc, params.G2Generator())
}

// NonMembershipProof attests that Element is absent from the set committed
// to by some accumulator value, via Bezout coefficients A, B satisfying
// A(X)(X-element) + B(X)P(X) = 1: G1A = g1^{A(s)}, WitnessB = g2^{B(s)}.
type NonMembershipProof struct {
	Element  fr.Element
	WitnessB bls12381.G2Affine
	G1A      bls12381.G1Affine
}

func (*NonMembershipProof) isQueryResult() {}

// Verify reports whether the proof is valid against the given accumulator
// value: e(acc, WitnessB) * e(G1A, g2^(s-element)) == e(g1, g2).
func (p *NonMembershipProof) Verify(params *setup.Params, acc bls12381.G1Affine) bool {
	g2sx := params.G2PowerSMinus(p.Element)
	lhs := []term{{acc, p.WitnessB}, {p.G1A, g2sx}}
	rhs := []term{{params.G1Generator(), params.G2Generator()}}
	return productsEqual(lhs, rhs)
}

// QueryResult is the outcome of Query: exactly one of MembershipProof or
// NonMembershipProof, depending on whether the queried element is a member.
// Callers discriminate with a type switch.
type QueryResult interface {
	isQueryResult()
}

// ProveMembership returns a proof that x is a member of the set. It fails
// with ErrElementNotFound if x is absent.
func (a *Accumulator) ProveMembership(x digest.Digestible) (*MembershipProof, error) {
	fx := digest.ToField(x.ToDigest())
	if !a.elements.Contains(fx) {
		return nil, fmt.Errorf("prove_membership %v: %w", fx, ErrElementNotFound)
	}
	witness, err := a.params.RetreatG1(a.value, fx)
	if err != nil {
		return nil, fmt.Errorf("prove_membership %v: %w", fx, ErrArithmeticDomain)
	}
	return &MembershipProof{Witness: witness, Element: fx}, nil
}

// VerifyMembership checks proof against this accumulator's current value.
func (a *Accumulator) VerifyMembership(proof *MembershipProof) bool {
	return proof.Verify(a.params, a.value)
}

// ProveNonMembership returns a proof that x is absent from the set. It
// fails with ErrElementPresent if x is a member, or
// ErrNonMembershipInfeasible if the extended Euclidean algorithm
// unexpectedly fails to certify coprimality (an internal invariant
// violation: it can only happen if x actually is a member).
func (a *Accumulator) ProveNonMembership(x digest.Digestible) (*NonMembershipProof, error) {
	fx := digest.ToField(x.ToDigest())
	if a.elements.Contains(fx) {
		return nil, fmt.Errorf("prove_non_membership %v: %w", fx, ErrElementPresent)
	}

	p := a.buildPolynomial()
	q := poly.FromRoot(fx)

	g, u, v, err := poly.XGCD(q, p)
	if err != nil {
		logger.Logger().Error().Err(err).Msg("accumulator: xgcd failed during non-membership proof")
		return nil, fmt.Errorf("prove_non_membership %v: %w", fx, ErrNonMembershipInfeasible)
	}
	if g.Degree() != 0 {
		logger.Logger().Error().Msg("accumulator: non-membership gcd has positive degree for an absent element")
		return nil, fmt.Errorf("prove_non_membership %v: %w", fx, ErrNonMembershipInfeasible)
	}

	c := g.ConstantCoefficient()
	var cInv fr.Element
	cInv.Inverse(&c)
	aPoly := u.Scale(cInv)
	bPoly := v.Scale(cInv)

	g1A := a.params.G1PowerAtSecret(aPoly)
	witnessB := a.params.G2PowerAtSecret(bPoly)

	return &NonMembershipProof{Element: fx, WitnessB: witnessB, G1A: g1A}, nil
}

// VerifyNonMembership checks proof against this accumulator's current
// value.
func (a *Accumulator) VerifyNonMembership(proof *NonMembershipProof) bool {
	return proof.Verify(a.params, a.value)
}

// Query returns a MembershipProof or a NonMembershipProof depending on
// whether x is currently a member; it has no error return, since exactly one
// branch always applies. If the chosen branch's proof cannot be built (an
// internal invariant violation), it logs the error and panics.
func (a *Accumulator) Query(x digest.Digestible) QueryResult {
	fx := digest.ToField(x.ToDigest())
	if a.elements.Contains(fx) {
		proof, err := a.ProveMembership(x)
		if err != nil {
			logger.Logger().Error().Err(err).Msg("accumulator: membership proof failed during query for a known member")
			panic(fmt.Sprintf("accumulator: invariant violated: %v", err))
		}
		return proof
	}
	proof, err := a.ProveNonMembership(x)
	if err != nil {
		logger.Logger().Error().Err(err).Msg("accumulator: non-membership proof failed during query for a known non-member")
		panic(fmt.Sprintf("accumulator: invariant violated: %v", err))
	}
	return proof
}
