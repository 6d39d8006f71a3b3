package mapper

import (
	"errors"
	"math/big"

	bls381 "bls381.mleku.dev"
)

// BintMapper hashes messages through the bint SWU pipeline (ciphersuite
// byte 0x01, constant-time path).
type BintMapper struct {
	Csuite byte
}

// NewBintMapper returns a mapper over the default ciphersuite.
func NewBintMapper() *BintMapper {
	return &BintMapper{Csuite: 0x01}
}

var errInfinity = errors.New("hashed to the point at infinity")

func (m *BintMapper) MapToG1(msg []byte) (x, y *big.Int, err error) {
	jx, jy, jz := bls381.EncodeToG1(msg, m.Csuite)
	x, y, ok := bls381.JacToAffine(jx, jy, jz)
	if !ok {
		return nil, nil, errInfinity
	}
	return x, y, nil
}

func (m *BintMapper) MapToG2(msg []byte) (xr, xi, yr, yi *big.Int, err error) {
	jx, jy, jz := bls381.EncodeToG2(msg, m.Csuite)
	ax, ay, ok := bls381.JacToAffine2(jx, jy, jz)
	if !ok {
		return nil, nil, nil, nil, errInfinity
	}
	return ax.S, ax.T, ay.S, ay.T, nil
}
