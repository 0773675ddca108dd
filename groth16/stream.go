package groth16

import (
	"io"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Host and guest exchange artifacts in the curve's raw binary encoding,
// uncompressed so the guest pays no decompression cost. Decoding checks
// that points are on-curve and in-subgroup.

func (p *Proof) WriteTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w, curve.RawEncoding())
	for _, v := range []interface{}{&p.Ar, &p.Bs, &p.Krs} {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

func (p *Proof) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)
	for _, v := range []interface{}{&p.Ar, &p.Bs, &p.Krs} {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

func (vk *VerifyingKey) WriteTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w, curve.RawEncoding())
	for _, v := range []interface{}{&vk.Alpha, &vk.Beta, &vk.Gamma, &vk.Delta, vk.K} {
		if err := enc.Encode(v); err != nil {
			return enc.BytesWritten(), err
		}
	}
	return enc.BytesWritten(), nil
}

func (vk *VerifyingKey) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)
	for _, v := range []interface{}{&vk.Alpha, &vk.Beta, &vk.Gamma, &vk.Delta, &vk.K} {
		if err := dec.Decode(v); err != nil {
			return dec.BytesRead(), err
		}
	}
	return dec.BytesRead(), nil
}

func (in Inputs) WriteTo(w io.Writer) (int64, error) {
	enc := curve.NewEncoder(w, curve.RawEncoding())
	err := enc.Encode([]fr.Element(in))
	return enc.BytesWritten(), err
}

func (in *Inputs) ReadFrom(r io.Reader) (int64, error) {
	dec := curve.NewDecoder(r)
	var elems []fr.Element
	if err := dec.Decode(&elems); err != nil {
		return dec.BytesRead(), err
	}
	*in = Inputs(elems)
	return dec.BytesRead(), nil
}
