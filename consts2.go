package bls381

// Constants for the Fp2 maps and the psi endomorphism. The jac_point limb
// data is already in Montgomery form; the 6x64 word arrays are plain
// integers converted at Init.

// SvdW constants over Fp2 as raw 6x64 little-endian words.
// icx12 is cx1_2 = (3 - sqrt(-3))/2; cx2_2 is cx1_2 - 1.
var (
	icx12 = [6]uint64{
		0x2e01fffffffeffff, 0xde17d813620a0002, 0xddb3a93be6f89688,
		0xba69c6076a0f77ea, 0x5f19672fdf76ce51, 0,
	}
	isqrtM3 = [6]uint64{
		0x5c03fffffffdfffd, 0xbc2fb026c4140004, 0xbb675277cdf12d11,
		0x74d38c0ed41eefd5, 0xbe32ce5fbeed9ca3, 0,
	}
	iinv3 = [6]uint64{
		0x26a9ffffffffc71d, 0x1472aaa9cb8d5555, 0x9a208c6b4f20a418,
		0x984f87adf7ae0c7f, 0x32126fced787c88f, 0x11560bf17baa99bc,
	}
)

// Constants used to build the four eta values for the G2 SWU branch
// selection: eta[0] = ieta1, eta[1] = ieta1*i, eta[2] = ieta2*(1+i),
// eta[3] = ieta2*(1-i) conjugate-style (second coordinate negated).
var (
	ieta1 = [6]uint64{
		0x6c88d0aa3e03ba01, 0xc4ee7b8d4b9e063a, 0xc8186bb3d4eccef7,
		0xed85f8b53954258e, 0xe305cc456ad9e235, 0x2c4a7244a026bd3,
	}
	ieta2 = [6]uint64{
		0x6426a813ae01f51a, 0xc6638358daf3514d, 0xc60679cc7973076d,
		0x12b58b8d32f26594, 0x641892a0f9a4bb29, 0x85fa8cd9105715e,
	}
)

// Base point G2' (an order-q point used by the rG fold) and its 2^64
// multiple, affine coordinates in Montgomery form.
var (
	g2PrimeX = FieldElement2{
		s: FieldElement{n: [bintNWords]uint64{
			0x91901dbda7c9f, 0xe30c4917bbda92, 0xf149611396c4eb, 0xa6d5e5212ddb7e,
			0x5b9cc82e08fb6c, 0xf9bec8c308e949, 0x9d3998f3b06,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0xdc2d754f04e704, 0x5c3e75b042900c, 0xc6f644bbca34fc, 0xf463eefbebecf,
			0x4d2cf98f025a3, 0xcd5e8a31aa182e, 0x534f6025c36,
		}},
	}
	g2PrimeY = FieldElement2{
		s: FieldElement{n: [bintNWords]uint64{
			0x380c2dd9e1475c, 0xaa2b2b949184f4, 0x3b1e5094c36db0, 0xa3e9987d2ffe58,
			0x93cdd624306e5c, 0x34d8c4d568b1b1, 0x116a77f0868c,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0xaaf69212060def, 0xe1647934b9e913, 0xfafede73927bae, 0x66876d2d98c640,
			0xd6999cfcc5ad62, 0xa10e0409f34aeb, 0x111688843fe7,
		}},
	}
	g2PrimeLL64X = FieldElement2{
		s: FieldElement{n: [bintNWords]uint64{
			0xe4935dee595403, 0xa996fdb74f1d05, 0x98911dc7917858, 0x9f06b4435b7b4c,
			0x51b7c73a881e59, 0x4eeb899b0b1a18, 0x00039d8b0c07d8,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0x8f8f2ce534b1e8, 0x38d8f53d5cc934, 0x6de8a220360c87, 0x082d1643cadc6e,
			0x8fa359e3307458, 0xe6868530304b03, 0x0001032b355e8a,
		}},
	}
	g2PrimeLL64Y = FieldElement2{
		s: FieldElement{n: [bintNWords]uint64{
			0xaf65f9001be848, 0x988bbd85d0e484, 0x02471102ad85ac, 0x60fb57386c0537,
			0x3b1d17bc47ee7e, 0x972fec90e1ca98, 0x000b6c073449d2,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0x70919aaefcf64f, 0x4dc5f137abd270, 0x533b98528e1f53, 0xe7e8a7efea8804,
			0xb0b02299ad3c85, 0x8dfd5c604c9377, 0x00144dd7ebece1,
		}},
	}
)

// Constants for the untwist-Frobenius-twist endomorphism psi.
var (
	// psi2IWSC is the inverse of the twist constant (w^-2, w^-3 scaling).
	psi2IWSC = FieldElement2{
		s: FieldElement{n: [bintNWords]uint64{
			0xec000001a3fe5c, 0x66f369001588c, 0xc1d10486390970, 0x6d07b9f01bb34f,
			0x894bdd84d84da1, 0x9653e28aecc7, 0x2bbd32cfe7d,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0x12fffffe5bac4f, 0xf98f7ac3fea72d, 0xdf25ac6feb153b, 0x867d58cf4b7d82,
			0xc260f9df9efde3, 0xe603f7391cc97b, 0x17453ebd3b02,
		}},
	}

	psi2KQiX = FieldElement{n: [bintNWords]uint64{
		0x96e486758a1811, 0x543e8561d5c11c, 0x4b0fc9113e6366, 0x8680210ae5efbb,
		0xf7002699941307, 0x9086bfcb02eef7, 0x1291e6855919,
	}}

	psi2KQiY = FieldElement{n: [bintNWords]uint64{
		0x32a25aa33e2f27, 0xc1e049e27ca1d2, 0x55ca94c3f707a, 0x3b937942010b7b,
		0xa544de3d5a86aa, 0x9c66da5556a044, 0xcea338ec515,
	}}

	psi2KCx = FieldElement{n: [bintNWords]uint64{
		0x96e486758a1811, 0x543e8561d5c11c, 0x4b0fc9113e6366, 0x8680210ae5efbb,
		0xf7002699941307, 0x9086bfcb02eef7, 0x1291e6855919,
	}}

	psi2KCy = FieldElement2{
		s: FieldElement{n: [bintNWords]uint64{
			0xcc5da55cc17b84, 0x3e1e6771835de7, 0x9b9a07a9e4ae31, 0xb7f1997d662557,
			0xa667f9271cc4da, 0x4a3370c65115fe, 0xd16de5b746a,
		}},
		t: FieldElement{n: [bintNWords]uint64{
			0x32a25aa33e2f27, 0xc1e049e27ca1d2, 0x55ca94c3f707a, 0x3b937942010b7b,
			0xa544de3d5a86aa, 0x9c66da5556a044, 0xcea338ec515,
		}},
	}
)
