// Package packet decodes and evaluates the hierarchical bit-packed packet
// format.
//
// Every packet starts with a six bit header: a three bit version followed by
// a three bit type id. The type id selects how the rest of the packet is laid
// out.
//
// Header
//
//  | 0 | 1 | 2 | 3 | 4 | 5 || Field   |
//  |-----------|-----------||---------|
//  | V . V . V |           || Version |
//  |           | T . T . T || Type ID |
//  |-----------|-----------||---------|
//
// Type Ids
//
//  | ID | Kind         | Abbr | Children |
//  |----|--------------|------|----------|
//  | 0  | Sum          | +    | 1+       |
//  | 1  | Product      | *    | 1+       |
//  | 2  | Minimum      | min  | 1+       |
//  | 3  | Maximum      | max  | 1+       |
//  | 4  | Literal      | lit  | -        |
//  | 5  | Greater Than | >    | 2        |
//  | 6  | Less Than    | <    | 2        |
//  | 7  | Equal To     | ==   | 2        |
//  |----|--------------|------|----------|
//
// Literal
//
// Literal packets (type id 4) carry an unsigned integer split into five bit
// groups. The leading bit of each group is a continuation flag; the remaining
// four bits are the next nibble of the value, most significant first. The
// group with a zero flag is the last one.
//
//  | 0 | 1 | 2 | 3 | 4 |
//  |---|---------------|
//  | 1 | N . N . N . N | More groups follow.
//  | 0 | N . N . N . N | Final group.
//  |---|---------------|
//
// For example D2FE28 is:
//
//  110 100 10111 11110 00101 000
//  VVV TTT AAAAA BBBBB CCCCC
//
// Version 6, literal, nibbles 0111 1110 0101 = 2021, followed by three bits of
// padding.
//
// Operator
//
// All other type ids are operators. After the header comes a one bit length
// type id selecting how the children are delimited:
//
//  | Length Type | Next Bits | Meaning                                         |
//  |-------------|-----------|-------------------------------------------------|
//  | 0           | 15        | Total number of bits taken by all children.     |
//  | 1           | 11        | Number of children immediately contained.       |
//  |-------------|-----------|-------------------------------------------------|
//
// The children follow directly and are themselves complete packets.
//
// Evaluation
//
// Sum, Product, Minimum and Maximum reduce their children. The comparison
// operators produce 1 when the comparison holds and 0 otherwise. All
// arithmetic is unsigned 64 bit; overflow is reported as an error rather than
// wrapped.
package packet
