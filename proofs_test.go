package accumulator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kazmiller0/esa-go/digest"
)

func TestMembershipProofVerifiesAgainstExplicitAccValue(t *testing.T) {
	params := newTestParams(t)
	a := New(params)
	_, err := a.Add(digest.Int64(1))
	require.NoError(t, err)
	_, err = a.Add(digest.Int64(2))
	require.NoError(t, err)

	proof, err := a.ProveMembership(digest.Int64(1))
	require.NoError(t, err)
	require.True(t, proof.Verify(params, a.Value()))
}

func TestNonMembershipProofVerifiesAgainstExplicitAccValue(t *testing.T) {
	params := newTestParams(t)
	a := New(params)
	_, err := a.Add(digest.Int64(1))
	require.NoError(t, err)

	proof, err := a.ProveNonMembership(digest.Int64(2))
	require.NoError(t, err)
	require.True(t, proof.Verify(params, a.Value()))
}

func TestTamperedNonMembershipProofRejected(t *testing.T) {
	a := New(newTestParams(t))
	_, err := a.Add(digest.Int64(1))
	require.NoError(t, err)

	proof, err := a.ProveNonMembership(digest.Int64(2))
	require.NoError(t, err)

	tampered := *proof
	tampered.Element = digest.ToField(digest.Int64(3).ToDigest())
	require.False(t, a.VerifyNonMembership(&tampered))
}

func TestMembershipProofWrongElementFails(t *testing.T) {
	a := New(newTestParams(t))
	_, err := a.Add(digest.Int64(1))
	require.NoError(t, err)

	proof, err := a.ProveMembership(digest.Int64(1))
	require.NoError(t, err)
	proof.Element = digest.ToField(digest.Int64(2).ToDigest())
	require.False(t, a.VerifyMembership(proof))
}

func TestAddProofFailsUnderDifferentParams(t *testing.T) {
	params := newTestParams(t)
	a := New(params)
	proof, err := a.Add(digest.Int64(1))
	require.NoError(t, err)

	other := newTestParams(t)
	require.False(t, proof.Verify(other))
}

func TestDeleteProofFailsUnderDifferentParams(t *testing.T) {
	params := newTestParams(t)
	a := New(params)
	_, err := a.Add(digest.Int64(1))
	require.NoError(t, err)
	proof, err := a.Delete(digest.Int64(1))
	require.NoError(t, err)

	other := newTestParams(t)
	require.False(t, proof.Verify(other))
}
