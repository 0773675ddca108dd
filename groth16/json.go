package groth16

import (
	"encoding/json"
	"fmt"
	"math/big"
	"os"
	"strings"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Fixture files carry field elements as strings, either decimal or
// 0x-prefixed hex. Points are [x, y] pairs, G2 coordinates are [c0, c1].

type g1JSON [2]string
type g2JSON [2][2]string

type proofJSON struct {
	PiA g1JSON `json:"pi_a"`
	PiB g2JSON `json:"pi_b"`
	PiC g1JSON `json:"pi_c"`
}

type verifyingKeyJSON struct {
	Alpha g1JSON   `json:"alpha"`
	Beta  g2JSON   `json:"beta"`
	Gamma g2JSON   `json:"gamma"`
	Delta g2JSON   `json:"delta"`
	S     []g1JSON `json:"s"`
}

func parseBig(s string) (*big.Int, error) {
	var b *big.Int
	var ok bool
	if stripped, isHex := strings.CutPrefix(s, "0x"); isHex {
		b, ok = new(big.Int).SetString(stripped, 16)
	} else {
		b, ok = new(big.Int).SetString(s, 10)
	}
	if !ok {
		return nil, fmt.Errorf("invalid field element string %q", s)
	}
	return b, nil
}

func setFp(z *fp.Element, s string) error {
	b, err := parseBig(s)
	if err != nil {
		return err
	}
	z.SetBigInt(b)
	return nil
}

func setFr(z *fr.Element, s string) error {
	b, err := parseBig(s)
	if err != nil {
		return err
	}
	z.SetBigInt(b)
	return nil
}

func g1ToJSON(p *curve.G1Affine) g1JSON {
	return g1JSON{p.X.String(), p.Y.String()}
}

func g1FromJSON(j g1JSON) (curve.G1Affine, error) {
	var p curve.G1Affine
	if err := setFp(&p.X, j[0]); err != nil {
		return p, err
	}
	if err := setFp(&p.Y, j[1]); err != nil {
		return p, err
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, fmt.Errorf("invalid G1 point [%v, %v]", j[0], j[1])
	}
	return p, nil
}

func g2ToJSON(p *curve.G2Affine) g2JSON {
	return g2JSON{
		{p.X.A0.String(), p.X.A1.String()},
		{p.Y.A0.String(), p.Y.A1.String()},
	}
}

func g2FromJSON(j g2JSON) (curve.G2Affine, error) {
	var p curve.G2Affine
	for i, z := range []*fp.Element{&p.X.A0, &p.X.A1, &p.Y.A0, &p.Y.A1} {
		if err := setFp(z, j[i/2][i%2]); err != nil {
			return p, err
		}
	}
	if !p.IsOnCurve() || !p.IsInSubGroup() {
		return p, fmt.Errorf("invalid G2 point")
	}
	return p, nil
}

func (p *Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(proofJSON{
		PiA: g1ToJSON(&p.Ar),
		PiB: g2ToJSON(&p.Bs),
		PiC: g1ToJSON(&p.Krs),
	})
}

func (p *Proof) UnmarshalJSON(data []byte) error {
	var j proofJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var err error
	if p.Ar, err = g1FromJSON(j.PiA); err != nil {
		return fmt.Errorf("pi_a: %v", err)
	}
	if p.Bs, err = g2FromJSON(j.PiB); err != nil {
		return fmt.Errorf("pi_b: %v", err)
	}
	if p.Krs, err = g1FromJSON(j.PiC); err != nil {
		return fmt.Errorf("pi_c: %v", err)
	}
	return nil
}

func (vk *VerifyingKey) MarshalJSON() ([]byte, error) {
	s := make([]g1JSON, len(vk.K))
	for i := range vk.K {
		s[i] = g1ToJSON(&vk.K[i])
	}
	return json.Marshal(verifyingKeyJSON{
		Alpha: g1ToJSON(&vk.Alpha),
		Beta:  g2ToJSON(&vk.Beta),
		Gamma: g2ToJSON(&vk.Gamma),
		Delta: g2ToJSON(&vk.Delta),
		S:     s,
	})
}

func (vk *VerifyingKey) UnmarshalJSON(data []byte) error {
	var j verifyingKeyJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	var err error
	if vk.Alpha, err = g1FromJSON(j.Alpha); err != nil {
		return fmt.Errorf("alpha: %v", err)
	}
	if vk.Beta, err = g2FromJSON(j.Beta); err != nil {
		return fmt.Errorf("beta: %v", err)
	}
	if vk.Gamma, err = g2FromJSON(j.Gamma); err != nil {
		return fmt.Errorf("gamma: %v", err)
	}
	if vk.Delta, err = g2FromJSON(j.Delta); err != nil {
		return fmt.Errorf("delta: %v", err)
	}
	vk.K = make([]curve.G1Affine, len(j.S))
	for i, sj := range j.S {
		if vk.K[i], err = g1FromJSON(sj); err != nil {
			return fmt.Errorf("s[%d]: %v", i, err)
		}
	}
	return nil
}

func (in Inputs) MarshalJSON() ([]byte, error) {
	s := make([]string, len(in))
	for i := range in {
		s[i] = in[i].String()
	}
	return json.Marshal(s)
}

func (in *Inputs) UnmarshalJSON(data []byte) error {
	var s []string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*in = make(Inputs, len(s))
	for i := range s {
		if err := setFr(&(*in)[i], s[i]); err != nil {
			return fmt.Errorf("inputs[%d]: %v", i, err)
		}
	}
	return nil
}

// LoadProof reads a proof fixture file
func LoadProof(path string) (*Proof, error) {
	var p Proof
	if err := loadJSON(path, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadVerifyingKey reads a verifying key fixture file
func LoadVerifyingKey(path string) (*VerifyingKey, error) {
	var vk VerifyingKey
	if err := loadJSON(path, &vk); err != nil {
		return nil, err
	}
	return &vk, nil
}

// LoadInputs reads a public inputs fixture file
func LoadInputs(path string) (Inputs, error) {
	var in Inputs
	if err := loadJSON(path, &in); err != nil {
		return nil, err
	}
	return in, nil
}

func loadJSON(path string, v json.Unmarshaler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := v.UnmarshalJSON(data); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	return nil
}

// WriteJSON writes a fixture file
func WriteJSON(path string, v json.Marshaler) error {
	data, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
