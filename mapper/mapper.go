// Package mapper abstracts the message-to-subgroup-point operation behind a
// small interface, with two interchangeable backends: the bint limb
// implementation from the parent package, and a gnark-crypto-backed RFC 9380
// mapper. The two use different hash-to-curve suites, so their outputs
// differ; both land in the prime-order subgroups.
package mapper

import "math/big"

// I is the point-mapper interface. Implementations return affine
// coordinates of points in the order-q subgroups.
type I interface {
	// MapToG1 hashes a message to a G1 point.
	MapToG1(msg []byte) (x, y *big.Int, err error)
	// MapToG2 hashes a message to a G2 point; coordinates are Fp2 values
	// given as (real, imaginary) pairs.
	MapToG2(msg []byte) (xr, xi, yr, yi *big.Int, err error)
}
