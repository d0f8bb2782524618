package prover

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/gnark/backend/groth16"

	"github.com/yourorg/zkmembership/circuits"
)

// Proof wraps the backend proof object. Its byte layout is owned entirely by
// gnark; this package round-trips it as an opaque blob.
type Proof struct {
	Proof groth16.Proof
}

func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	return p.Proof.WriteTo(w)
}

func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	p.Proof = groth16.NewProof(circuits.Curve())
	return p.Proof.ReadFrom(r)
}

// systemVersion guards the on-disk layout of a serialized ProvingSystem.
const systemVersion uint32 = 1

// WriteTo serializes the full proving system: a shape header followed by the
// proving key, verifying key and constraint system. The header lets ReadFrom
// reject artifacts built for a different depth before touching key material.
func (ps *ProvingSystem) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var buf [4]byte

	writeU32 := func(v uint32) error {
		binary.BigEndian.PutUint32(buf[:], v)
		n, err := w.Write(buf[:])
		total += int64(n)
		return err
	}

	if err := writeU32(systemVersion); err != nil {
		return total, err
	}
	if err := writeU32(uint32(ps.Depth)); err != nil {
		return total, err
	}
	var flags uint32
	if ps.PublicLeaf {
		flags = 1
	}
	if err := writeU32(flags); err != nil {
		return total, err
	}

	n, err := ps.ProvingKey.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	n, err = ps.VerifyingKey.WriteTo(w)
	total += n
	if err != nil {
		return total, err
	}
	n, err = ps.ConstraintSystem.WriteTo(w)
	total += n
	return total, err
}

// ReadSystemFrom deserializes a proving system previously written with
// WriteTo.
func ReadSystemFrom(r io.Reader) (*ProvingSystem, error) {
	var buf [4]byte

	readU32 := func() (uint32, error) {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return binary.BigEndian.Uint32(buf[:]), nil
	}

	version, err := readU32()
	if err != nil {
		return nil, fmt.Errorf("reading system header: %w", err)
	}
	if version != systemVersion {
		return nil, fmt.Errorf("%w: unsupported system version %d", ErrParameterMismatch, version)
	}
	depth, err := readU32()
	if err != nil {
		return nil, fmt.Errorf("reading system header: %w", err)
	}
	flags, err := readU32()
	if err != nil {
		return nil, fmt.Errorf("reading system header: %w", err)
	}

	ps := &ProvingSystem{
		Depth:      int(depth),
		PublicLeaf: flags&1 != 0,
	}

	ps.ProvingKey = groth16.NewProvingKey(circuits.Curve())
	if _, err := ps.ProvingKey.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading proving key: %w", err)
	}
	ps.VerifyingKey = groth16.NewVerifyingKey(circuits.Curve())
	if _, err := ps.VerifyingKey.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading verifying key: %w", err)
	}
	ps.ConstraintSystem = groth16.NewCS(circuits.Curve())
	if _, err := ps.ConstraintSystem.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("reading constraint system: %w", err)
	}
	return ps, nil
}
