package groth16

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// ProofID returns the sha3-256 digest of the canonical proof encoding. It
// identifies a proof across the host/guest boundary and in run reports.
func ProofID(p *Proof) ([32]byte, error) {
	var buf bytes.Buffer
	if _, err := p.WriteTo(&buf); err != nil {
		return [32]byte{}, err
	}
	return sha3.Sum256(buf.Bytes()), nil
}

// ProofIDHex is ProofID rendered for logs, journals and the results store
func ProofIDHex(p *Proof) (string, error) {
	id, err := ProofID(p)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(id[:]), nil
}
