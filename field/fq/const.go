package fq

// Field modulus for Selene: q = 2^255 - gamma, gamma a ~127-bit Crandall
// constant (fq/include/x64/fq51.h's GAMMA_51 in the original source).
var modulusBytes = [32]byte{
	0x9f, 0xc7, 0x27, 0x79, 0x72, 0xd2, 0xb6, 0x6e,
	0x58, 0x6b, 0x65, 0xb7, 0x2c, 0x78, 0x7f, 0xbf,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
}

// gamma = 2^255 - q, kept as a documented constant. Reduction does not
// use it: Mul reduces with uint256 MulMod against the full modulus.
var gammaBytes = [32]byte{
	0x61, 0x38, 0xd8, 0x86, 0x8d, 0x2d, 0x49, 0x91,
	0xa7, 0x94, 0x9a, 0x48, 0xd3, 0x87, 0x80, 0x40,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

// q - 2, the exponent for Fermat inversion.
var qMinus2Bytes = [32]byte{
	0x9d, 0xc7, 0x27, 0x79, 0x72, 0xd2, 0xb6, 0x6e,
	0x58, 0x6b, 0x65, 0xb7, 0x2c, 0x78, 0x7f, 0xbf,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x7f,
}

// (q + 1) / 4, the exponent for the direct sqrt formula valid since
// q = 4k+3.
var qPlus1Div4Bytes = [32]byte{
	0xe8, 0xf1, 0x49, 0x9e, 0x9c, 0xb4, 0xad, 0x1b,
	0xd6, 0x5a, 0xd9, 0x2d, 0x0b, 0xde, 0xdf, 0xef,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x1f,
}
