package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"
)

func elem(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestEvalMatchesDirectProduct(t *testing.T) {
	roots := []fr.Element{elem(1), elem(2), elem(3)}
	p := FromRoots(roots)

	x := elem(10)
	got := p.Eval(x)

	want := elem(1)
	for _, r := range roots {
		var diff fr.Element
		diff.Sub(&x, &r)
		want.Mul(&want, &diff)
	}
	require.True(t, got.Equal(&want))
}

func TestFromRootsEmptyIsOne(t *testing.T) {
	p := FromRoots(nil)
	require.Equal(t, 0, p.Degree())
	require.True(t, p.Eval(elem(42)).Equal(&[]fr.Element{elem(1)}[0]))
}

func TestAddSubRoundtrip(t *testing.T) {
	a := New([]fr.Element{elem(1), elem(2), elem(3)})
	b := New([]fr.Element{elem(5), elem(-1)})
	sum := a.Add(b)
	back := sum.Sub(b)
	require.Equal(t, a.Coefficients(), back.Coefficients())
}

func TestMulDegreeAdds(t *testing.T) {
	a := FromRoot(elem(1))
	b := FromRoot(elem(2))
	c := a.Mul(b)
	require.Equal(t, 2, c.Degree())
	require.True(t, c.Eval(elem(1)).IsZero())
	require.True(t, c.Eval(elem(2)).IsZero())
}

func TestDivModExact(t *testing.T) {
	roots := []fr.Element{elem(1), elem(2), elem(3)}
	p := FromRoots(roots)
	d := FromRoot(elem(2))
	q, r, err := p.DivMod(d)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, q.Eval(elem(1)).IsZero())
	require.True(t, q.Eval(elem(3)).IsZero())
}

func TestDivModByZeroErrors(t *testing.T) {
	_, _, err := One().DivMod(Zero())
	require.Error(t, err)
}

func TestXGCDCoprime(t *testing.T) {
	a := FromRoot(elem(1))
	b := FromRoot(elem(2))
	g, u, v, err := XGCD(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree())

	check := u.Mul(a).Add(v.Mul(b))
	require.Equal(t, g.Coefficients(), check.Coefficients())
}

func TestXGCDSharedRootHasNonUnitGCD(t *testing.T) {
	a := FromRoots([]fr.Element{elem(1), elem(2)})
	b := FromRoots([]fr.Element{elem(2), elem(3)})
	g, _, _, err := XGCD(a, b)
	require.NoError(t, err)
	require.Greater(t, g.Degree(), 0)
	require.True(t, g.Eval(elem(2)).IsZero())
}

func TestXGCDZeroFirstArg(t *testing.T) {
	b := FromRoot(elem(7))
	g, u, v, err := XGCD(Zero(), b)
	require.NoError(t, err)
	require.Equal(t, b.Coefficients(), g.Coefficients())
	require.True(t, u.IsZero())
	require.Equal(t, One().Coefficients(), v.Coefficients())
}

func TestXGCDSecondArgZero(t *testing.T) {
	a := FromRoot(elem(7))
	g, u, v, err := XGCD(a, Zero())
	require.NoError(t, err)
	require.Equal(t, a.Coefficients(), g.Coefficients())
	require.Equal(t, One().Coefficients(), u.Coefficients())
	require.True(t, v.IsZero())
}

func TestXGCDBothZeroErrors(t *testing.T) {
	_, _, _, err := XGCD(Zero(), Zero())
	require.Error(t, err)
}
