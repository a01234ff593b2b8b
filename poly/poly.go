// Package poly implements dense univariate polynomial arithmetic over the
// BLS12-381 scalar field, including the extended Euclidean algorithm used to
// build non-membership witnesses for the accumulator.
package poly

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Poly is a dense univariate polynomial with coefficients in fr, stored
// low-degree first: c[i] is the coefficient of X^i. A nil or empty Poly is
// the zero polynomial. Values are immutable once constructed; every method
// returns a new Poly rather than mutating the receiver.
type Poly struct {
	c []fr.Element
}

// New builds a Poly from coefficients given low-degree first, trimming any
// trailing zero coefficients so the representation is canonical.
func New(coeffs []fr.Element) Poly {
	return Poly{c: trim(coeffs)}
}

// Zero returns the zero polynomial.
func Zero() Poly { return Poly{} }

// One returns the constant polynomial 1.
func One() Poly {
	var one fr.Element
	one.SetOne()
	return Poly{c: []fr.Element{one}}
}

// FromRoot returns the monic linear polynomial (X - root).
func FromRoot(root fr.Element) Poly {
	var negRoot, one fr.Element
	negRoot.Neg(&root)
	one.SetOne()
	return Poly{c: []fr.Element{negRoot, one}}
}

// FromRoots returns the monic polynomial whose roots are exactly the given
// elements, i.e. the product of (X - r) over every r in roots. An empty
// roots slice yields the constant polynomial 1, matching the accumulator's
// empty-set convention.
func FromRoots(roots []fr.Element) Poly {
	p := One()
	for _, r := range roots {
		p = p.Mul(FromRoot(r))
	}
	return p
}

// Coefficients returns the polynomial's coefficients, low-degree first. The
// returned slice is a copy and safe for the caller to retain or mutate.
func (p Poly) Coefficients() []fr.Element {
	out := make([]fr.Element, len(p.c))
	copy(out, p.c)
	return out
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial.
func (p Poly) Degree() int { return len(p.c) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.c) == 0 }

// LeadingCoefficient returns the coefficient of the highest-degree term.
// Panics on the zero polynomial, matching gnark-crypto's own convention of
// panicking rather than silently producing a zero element for
// caller-confused inputs.
func (p Poly) LeadingCoefficient() fr.Element {
	if p.IsZero() {
		panic("poly: leading coefficient of the zero polynomial")
	}
	return p.c[len(p.c)-1]
}

// ConstantCoefficient returns the coefficient of X^0, zero for the zero
// polynomial.
func (p Poly) ConstantCoefficient() fr.Element {
	if p.IsZero() {
		return fr.Element{}
	}
	return p.c[0]
}

// Eval evaluates p at x using Horner's method.
func (p Poly) Eval(x fr.Element) fr.Element {
	var acc fr.Element
	for i := len(p.c) - 1; i >= 0; i-- {
		acc.Mul(&acc, &x)
		acc.Add(&acc, &p.c[i])
	}
	return acc
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.c) {
			a = p.c[i]
		}
		if i < len(q.c) {
			b = q.c[i]
		}
		out[i].Add(&a, &b)
	}
	return New(out)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	n := len(p.c)
	if len(q.c) > n {
		n = len(q.c)
	}
	out := make([]fr.Element, n)
	for i := 0; i < n; i++ {
		var a, b fr.Element
		if i < len(p.c) {
			a = p.c[i]
		}
		if i < len(q.c) {
			b = q.c[i]
		}
		out[i].Sub(&a, &b)
	}
	return New(out)
}

// Scale returns p scaled by the scalar c.
func (p Poly) Scale(c fr.Element) Poly {
	out := make([]fr.Element, len(p.c))
	for i := range p.c {
		out[i].Mul(&p.c[i], &c)
	}
	return New(out)
}

// Mul returns p * q via schoolbook convolution.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := make([]fr.Element, len(p.c)+len(q.c)-1)
	for i, a := range p.c {
		if a.IsZero() {
			continue
		}
		for j, b := range q.c {
			var t fr.Element
			t.Mul(&a, &b)
			out[i+j].Add(&out[i+j], &t)
		}
	}
	return New(out)
}

// DivMod returns (q, r) such that p = q*d + r and deg(r) < deg(d). It
// returns an error if d is the zero polynomial.
func (p Poly) DivMod(d Poly) (quotient, remainder Poly, err error) {
	if d.IsZero() {
		return Zero(), Zero(), fmt.Errorf("poly: division by the zero polynomial")
	}
	if p.IsZero() || p.Degree() < d.Degree() {
		return Zero(), p, nil
	}

	var leadInv fr.Element
	leadInv.Inverse(&d.c[len(d.c)-1])

	rem := make([]fr.Element, len(p.c))
	copy(rem, p.c)
	qdeg := p.Degree() - d.Degree()
	q := make([]fr.Element, qdeg+1)

	for deg := p.Degree(); deg >= d.Degree(); deg-- {
		lead := rem[deg]
		if lead.IsZero() {
			continue
		}
		var coeff fr.Element
		coeff.Mul(&lead, &leadInv)
		q[deg-d.Degree()] = coeff
		for j, dc := range d.c {
			if dc.IsZero() {
				continue
			}
			var t fr.Element
			t.Mul(&coeff, &dc)
			rem[deg-d.Degree()+j].Sub(&rem[deg-d.Degree()+j], &t)
		}
	}
	return New(q), New(rem), nil
}

// XGCD runs the polynomial extended Euclidean algorithm, returning (g, u, v)
// such that u*a + v*b = g and g = gcd(a, b), up to a nonzero scalar
// multiple. It returns an error only when both a and b are the zero
// polynomial, which has no gcd.
func XGCD(a, b Poly) (g, u, v Poly, err error) {
	if a.IsZero() && b.IsZero() {
		return Zero(), Zero(), Zero(), fmt.Errorf("poly: xgcd of two zero polynomials is undefined")
	}

	oldR, r := a, b
	oldS, s := One(), Zero()
	oldT, t := Zero(), One()

	for !r.IsZero() {
		q, rem, divErr := oldR.DivMod(r)
		if divErr != nil {
			return Zero(), Zero(), Zero(), divErr
		}
		oldR, r = r, rem
		oldS, s = s, oldS.Sub(q.Mul(s))
		oldT, t = t, oldT.Sub(q.Mul(t))
	}
	return oldR, oldS, oldT, nil
}

func trim(coeffs []fr.Element) []fr.Element {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].IsZero() {
		n--
	}
	if n == 0 {
		return nil
	}
	out := make([]fr.Element, n)
	copy(out, coeffs[:n])
	return out
}
