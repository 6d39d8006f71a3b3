package mapper

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// GnarkMapper hashes messages with gnark-crypto's RFC 9380 suites. It is
// the drop-in alternative backend; outputs are valid subgroup points but
// use a different expand-and-map construction than BintMapper.
type GnarkMapper struct {
	DST []byte
}

// NewGnarkMapper returns a mapper with the standard ciphersuite DST.
func NewGnarkMapper() *GnarkMapper {
	return &GnarkMapper{DST: []byte("BLS_SIG_BLS12381G1_XMD:SHA-256_SSWU_RO_NUL_")}
}

func (m *GnarkMapper) MapToG1(msg []byte) (x, y *big.Int, err error) {
	p, err := bls12381.HashToG1(msg, m.DST)
	if err != nil {
		return nil, nil, err
	}
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int)), nil
}

func (m *GnarkMapper) MapToG2(msg []byte) (xr, xi, yr, yi *big.Int, err error) {
	p, err := bls12381.HashToG2(msg, m.DST)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return p.X.A0.BigInt(new(big.Int)), p.X.A1.BigInt(new(big.Int)),
		p.Y.A0.BigInt(new(big.Int)), p.Y.A1.BigInt(new(big.Int)), nil
}
