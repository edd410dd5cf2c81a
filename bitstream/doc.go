// Package bitstream provides a read-only, bit-granularity cursor over a packed
// bit sequence.
//
// Bits are stored most-significant-bit first within each byte and fields are
// read most-significant-bit first: the first bit consumed by ReadBits becomes
// the highest bit of the returned value.
//
// Hex Expansion
//
// Each hexadecimal character expands to exactly four bits, so a transmission
// of n characters yields 4n bits. The bit length is tracked explicitly and
// need not be a multiple of 8.
//
//  | Input | Bits                  |
//  |-------|-----------------------|
//  | D     | 1 . 1 . 0 . 1         |
//  | 2     | 0 . 0 . 1 . 0         |
//  | F     | 1 . 1 . 1 . 1         |
//  |-------|-----------------------|
//
//  "D2F" = 1101 0010 1111 (12 bits, packed as 0b_1101_0010 0b_1111_0000)
package bitstream
