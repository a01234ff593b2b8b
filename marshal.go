package accumulator

import (
	"fmt"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Marshal and Unmarshal adapt the teacher's own switch-on-type binary proof
// marshaller into a fixed-layout byte encoding per proof type, for callers
// that need to move a proof off-heap (e.g. into a message queue or a log
// record). Sizes are fixed: every G1Affine is 96 bytes (RawBytes,
// uncompressed), every G2Affine 192 bytes, every fr.Element 32 bytes.

const (
	sizeG1 = bls12381.SizeOfG1AffineUncompressed
	sizeG2 = bls12381.SizeOfG2AffineUncompressed
	sizeFr = fr.Bytes
)

// Marshal encodes p as OldAcc || NewAcc || Element.
func (p *AddProof) Marshal() []byte {
	buf := make([]byte, 0, 2*sizeG1+sizeFr)
	old := p.OldAcc.RawBytes()
	nw := p.NewAcc.RawBytes()
	elem := p.Element.Bytes()
	buf = append(buf, old[:]...)
	buf = append(buf, nw[:]...)
	buf = append(buf, elem[:]...)
	return buf
}

// UnmarshalAddProof decodes a byte slice produced by AddProof.Marshal.
func UnmarshalAddProof(data []byte) (*AddProof, error) {
	if len(data) != 2*sizeG1+sizeFr {
		return nil, fmt.Errorf("accumulator: malformed AddProof encoding: got %d bytes", len(data))
	}
	p := &AddProof{}
	if err := p.OldAcc.Unmarshal(data[:sizeG1]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding AddProof.OldAcc: %w", err)
	}
	if err := p.NewAcc.Unmarshal(data[sizeG1 : 2*sizeG1]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding AddProof.NewAcc: %w", err)
	}
	p.Element.SetBytes(data[2*sizeG1:])
	return p, nil
}

// Marshal encodes p as OldAcc || NewAcc || Element.
func (p *DeleteProof) Marshal() []byte {
	buf := make([]byte, 0, 2*sizeG1+sizeFr)
	old := p.OldAcc.RawBytes()
	nw := p.NewAcc.RawBytes()
	elem := p.Element.Bytes()
	buf = append(buf, old[:]...)
	buf = append(buf, nw[:]...)
	buf = append(buf, elem[:]...)
	return buf
}

// UnmarshalDeleteProof decodes a byte slice produced by DeleteProof.Marshal.
func UnmarshalDeleteProof(data []byte) (*DeleteProof, error) {
	if len(data) != 2*sizeG1+sizeFr {
		return nil, fmt.Errorf("accumulator: malformed DeleteProof encoding: got %d bytes", len(data))
	}
	p := &DeleteProof{}
	if err := p.OldAcc.Unmarshal(data[:sizeG1]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding DeleteProof.OldAcc: %w", err)
	}
	if err := p.NewAcc.Unmarshal(data[sizeG1 : 2*sizeG1]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding DeleteProof.NewAcc: %w", err)
	}
	p.Element.SetBytes(data[2*sizeG1:])
	return p, nil
}

// Marshal encodes p as Witness || Element.
func (p *MembershipProof) Marshal() []byte {
	buf := make([]byte, 0, sizeG1+sizeFr)
	w := p.Witness.RawBytes()
	elem := p.Element.Bytes()
	buf = append(buf, w[:]...)
	buf = append(buf, elem[:]...)
	return buf
}

// UnmarshalMembershipProof decodes a byte slice produced by
// MembershipProof.Marshal.
func UnmarshalMembershipProof(data []byte) (*MembershipProof, error) {
	if len(data) != sizeG1+sizeFr {
		return nil, fmt.Errorf("accumulator: malformed MembershipProof encoding: got %d bytes", len(data))
	}
	p := &MembershipProof{}
	if err := p.Witness.Unmarshal(data[:sizeG1]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding MembershipProof.Witness: %w", err)
	}
	p.Element.SetBytes(data[sizeG1:])
	return p, nil
}

// Marshal encodes p as Element || WitnessB || G1A.
func (p *NonMembershipProof) Marshal() []byte {
	buf := make([]byte, 0, sizeFr+sizeG2+sizeG1)
	elem := p.Element.Bytes()
	wb := p.WitnessB.RawBytes()
	ga := p.G1A.RawBytes()
	buf = append(buf, elem[:]...)
	buf = append(buf, wb[:]...)
	buf = append(buf, ga[:]...)
	return buf
}

// UnmarshalNonMembershipProof decodes a byte slice produced by
// NonMembershipProof.Marshal.
func UnmarshalNonMembershipProof(data []byte) (*NonMembershipProof, error) {
	if len(data) != sizeFr+sizeG2+sizeG1 {
		return nil, fmt.Errorf("accumulator: malformed NonMembershipProof encoding: got %d bytes", len(data))
	}
	p := &NonMembershipProof{}
	p.Element.SetBytes(data[:sizeFr])
	if err := p.WitnessB.Unmarshal(data[sizeFr : sizeFr+sizeG2]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding NonMembershipProof.WitnessB: %w", err)
	}
	if err := p.G1A.Unmarshal(data[sizeFr+sizeG2:]); err != nil {
		return nil, fmt.Errorf("accumulator: decoding NonMembershipProof.G1A: %w", err)
	}
	return p, nil
}
