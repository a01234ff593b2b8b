package setup

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/stretchr/testify/require"

	"github.com/kazmiller0/esa-go/poly"
)

func elem(v int64) fr.Element {
	var e fr.Element
	e.SetInt64(v)
	return e
}

func TestAdvanceThenRetreatIsIdentity(t *testing.T) {
	s := elem(12345)
	p := NewTestOnly(s)

	x := elem(7)
	advanced := p.AdvanceG1(p.G1Generator(), x)
	back, err := p.RetreatG1(advanced, x)
	require.NoError(t, err)
	gen := p.G1Generator()
	require.True(t, back.Equal(&gen))
}

func TestRetreatFailsWhenElementEqualsSecret(t *testing.T) {
	s := elem(999)
	p := NewTestOnly(s)
	_, err := p.RetreatG1(p.G1Generator(), s)
	require.Error(t, err)
}

func TestG1PowerAtSecretMatchesDirectEval(t *testing.T) {
	s := elem(42)
	p := NewTestOnly(s)

	pl := poly.FromRoots([]fr.Element{elem(1), elem(2)})
	got := p.G1PowerAtSecret(pl)

	want := p.AdvanceG1(p.AdvanceG1(p.G1Generator(), elem(1)), elem(2))
	require.True(t, got.Equal(&want))
}

func TestVerifyCommitmentRejectsWrongValue(t *testing.T) {
	s := elem(7)
	p := NewTestOnly(s)

	pl := poly.FromRoots([]fr.Element{elem(1)})
	correct := p.G1PowerAtSecret(pl)
	require.True(t, p.VerifyCommitment(pl, correct))

	wrong := p.G1PowerAtSecret(poly.FromRoots([]fr.Element{elem(2)}))
	require.False(t, p.VerifyCommitment(pl, wrong))
}

func TestG2PowerSMinusMatchesManualSubtraction(t *testing.T) {
	s := elem(100)
	p := NewTestOnly(s)
	x := elem(30)

	var diff fr.Element
	diff.Sub(&s, &x)
	want := p.G2Power(diff)

	got := p.G2PowerSMinus(x)
	require.True(t, got.Equal(&want))
}
