// Package setup holds the trusted-setup parameters for the accumulator: the
// secret scalar s and the handful of composed group operations built on top
// of it. Every exported method takes public inputs and returns public group
// elements; s itself, and any bare scalar derived from it such as s-x,
// never cross this package's boundary. This mirrors the teacher's own
// Trusted/TestOnly setup split, replacing a PLONK structured reference
// string with the single secret scalar this accumulator scheme evaluates
// polynomials against directly.
package setup

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark/logger"

	"github.com/kazmiller0/esa-go/poly"
)

// Params is a process-wide trusted-setup instance. The zero value is not
// usable; construct with New or NewTestOnly.
type Params struct {
	s     fr.Element
	g1Gen bls12381.G1Affine
	g2Gen bls12381.G2Affine
}

// New samples a fresh secret scalar s uniformly at random. This is the
// production constructor: s is generated once per process and never
// persisted.
func New() (*Params, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return nil, fmt.Errorf("setup: sampling secret scalar: %w", err)
	}
	return newWithSecret(s), nil
}

// NewTestOnly builds a Params instance from a caller-supplied scalar. It
// exists for deterministic tests that need to reproduce a specific
// accumulator state or check a proof against hand-computed values; it must
// never be used outside test code, since the caller necessarily knows s.
func NewTestOnly(s fr.Element) *Params {
	return newWithSecret(s)
}

func newWithSecret(s fr.Element) *Params {
	_, _, g1Gen, g2Gen := bls12381.Generators()
	return &Params{s: s, g1Gen: g1Gen, g2Gen: g2Gen}
}

// G1Generator returns the public G1 generator.
func (p *Params) G1Generator() bls12381.G1Affine { return p.g1Gen }

// G2Generator returns the public G2 generator.
func (p *Params) G2Generator() bls12381.G2Affine { return p.g2Gen }

// G2Power returns g2^x for an arbitrary, caller-supplied x. This needs no
// secret at all: it is a plain fixed-base scalar multiplication. The proof
// code does not call it; G2PowerSMinus performs the same multiplication with
// the exponent s-x computed internally.
func (p *Params) G2Power(x fr.Element) bls12381.G2Affine {
	var out bls12381.G2Affine
	out.ScalarMultiplication(&p.g2Gen, scalarToBigInt(x))
	return out
}

// G2PowerSMinus returns g2^(s-x). This is the one operation every
// membership/non-membership/transition proof's verifier needs. The
// subtraction and the exponentiation both happen inside this call (as they
// do in AdvanceG1 and RetreatG1 for G1), so only the resulting group element - which
// reveals nothing about s under the discrete log assumption - leaves the
// package.
func (p *Params) G2PowerSMinus(x fr.Element) bls12381.G2Affine {
	var diff fr.Element
	diff.Sub(&p.s, &x)
	var out bls12381.G2Affine
	out.ScalarMultiplication(&p.g2Gen, scalarToBigInt(diff))
	return out
}

// AdvanceG1 returns point^(s-x), the operation backing add(): multiplying
// the accumulator's committed value by the new factor (s-x).
func (p *Params) AdvanceG1(point bls12381.G1Affine, x fr.Element) bls12381.G1Affine {
	var diff fr.Element
	diff.Sub(&p.s, &x)
	var out bls12381.G1Affine
	out.ScalarMultiplication(&point, scalarToBigInt(diff))
	return out
}

// RetreatG1 returns point^((s-x)^-1), the operation backing delete() and
// the construction of membership witnesses. It fails if s == x, which would
// require x to equal the secret scalar - astronomically unlikely, and
// logged as an invariant violation rather than a routine error.
func (p *Params) RetreatG1(point bls12381.G1Affine, x fr.Element) (bls12381.G1Affine, error) {
	var diff fr.Element
	diff.Sub(&p.s, &x)
	if diff.IsZero() {
		logger.Logger().Warn().Msg("setup: element equals the secret scalar, inverse undefined")
		return bls12381.G1Affine{}, fmt.Errorf("setup: (s-x) has no inverse")
	}
	var inv fr.Element
	inv.Inverse(&diff)
	var out bls12381.G1Affine
	out.ScalarMultiplication(&point, scalarToBigInt(inv))
	return out, nil
}

// G1PowerAtSecret returns g1^{p(s)}: the polynomial p evaluated at the
// secret and projected into G1. Used to build accumulator commitments and
// non-membership A-side witnesses directly from a polynomial, rather than
// incrementally via AdvanceG1.
func (p *Params) G1PowerAtSecret(pl poly.Poly) bls12381.G1Affine {
	a := pl.Eval(p.s)
	var out bls12381.G1Affine
	out.ScalarMultiplication(&p.g1Gen, scalarToBigInt(a))
	return out
}

// G2PowerAtSecret returns g2^{p(s)}.
func (p *Params) G2PowerAtSecret(pl poly.Poly) bls12381.G2Affine {
	b := pl.Eval(p.s)
	var out bls12381.G2Affine
	out.ScalarMultiplication(&p.g2Gen, scalarToBigInt(b))
	return out
}

// VerifyCommitment reports whether claimed equals g1^{pl(s)}. It exists for
// verifiers that hold (or are loaned) trusted-setup capability - e.g. the
// accumulator operator auditing its own prover's output against a disclosed
// element list - and lets them check a claimed commitment directly, without
// any pairing.
func (p *Params) VerifyCommitment(pl poly.Poly, claimed bls12381.G1Affine) bool {
	got := p.G1PowerAtSecret(pl)
	return got.Equal(&claimed)
}

func scalarToBigInt(x fr.Element) *big.Int {
	return x.BigInt(new(big.Int))
}
