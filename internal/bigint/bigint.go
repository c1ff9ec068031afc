// Package bigint implements an arbitrary-precision unsigned integer
// sufficient for discrete-log cryptography at hundreds to thousands of
// bits: in-place add/sub/shift/scale, out-of-place multiply/divide,
// modular exponentiation, and the random/primality machinery ElGamal key
// generation needs.
//
// A BigUint is a base-2^64 digit sequence, least-significant digit first,
// held in a flat slice rather than the pooled linked list the arithmetic
// was originally specified against — a contiguous buffer gives better
// cache behavior and needs no allocator pool on a modern runtime. The
// representation never leaks past this package's exported API.
//
// Every operation here is pure, single-threaded, and non-suspending: a
// BigUint has exactly one owner at a time, and nothing in this package
// touches a channel, a mutex, or global mutable state.
package bigint

import "math/bits"

// BigUint is an arbitrary-precision nonnegative integer. The zero value
// is the integer zero and is ready to use.
//
// Canonical form is enforced at the exit of every operation that could
// produce trailing zero digits: digits[len(digits)-1] is never zero, and
// zero itself is always the empty slice.
type BigUint struct {
	digits []uint64
}

// FromUint64 returns the BigUint equal to v.
func FromUint64(v uint64) BigUint {
	if v == 0 {
		return BigUint{}
	}
	return BigUint{digits: []uint64{v}}
}

// FromDigits builds a BigUint from a little-endian digit slice (index 0
// is least significant), canonicalizing trailing zero digits. The slice
// is copied; the caller's backing array is not retained.
func FromDigits(d []uint64) BigUint {
	x := BigUint{digits: append([]uint64(nil), d...)}
	x.trim()
	return x
}

// Digits returns a copy of x's canonical little-endian digit sequence.
// This is the one sanctioned escape hatch from BigUint's otherwise
// opaque representation, for callers (the plaintext packer, the hex
// codec) that must operate digit-by-digit; it must not be used to
// construct a second mutable alias of x's storage.
func (x BigUint) Digits() []uint64 {
	return append([]uint64(nil), x.digits...)
}

// Clone returns an independent copy of x. Because BigUint's in-place
// operations mutate the receiver, any caller that needs to keep a value
// stable across an in-place call on another variable must Clone first.
func (x BigUint) Clone() BigUint {
	if len(x.digits) == 0 {
		return BigUint{}
	}
	d := make([]uint64, len(x.digits))
	copy(d, x.digits)
	return BigUint{digits: d}
}

// IsZero reports whether x is the integer zero.
func (x BigUint) IsZero() bool {
	return len(x.digits) == 0
}

// IsEven reports the parity of x: the low bit of its least-significant
// digit, or true (zero is even) if x has no digits.
func (x BigUint) IsEven() bool {
	if len(x.digits) == 0 {
		return true
	}
	return x.digits[0]&1 == 0
}

// DigitLen returns the number of base-2^64 digits in x's canonical
// representation. Zero has digit length 0.
func (x BigUint) DigitLen() int {
	return len(x.digits)
}

// BitLen returns the number of bits needed to represent x: zero for
// x == 0, otherwise floor(log2(x))+1.
func (x BigUint) BitLen() int {
	if len(x.digits) == 0 {
		return 0
	}
	top := x.digits[len(x.digits)-1]
	return 64*(len(x.digits)-1) + bitLen64(top)
}

// bitLen64 returns the index of the highest set bit of v, plus one; zero
// for v == 0. Equivalent to the original's highestBitSignificance, but
// expressed without the original's shift-and-count loop.
func bitLen64(v uint64) int {
	return bits.Len64(v)
}

// trim drops trailing zero digits so x.digits satisfies canonical form.
// Every mutating operation that can introduce trailing zeros must call
// trim before returning.
func (x *BigUint) trim() {
	n := len(x.digits)
	for n > 0 && x.digits[n-1] == 0 {
		n--
	}
	x.digits = x.digits[:n]
}

// ensureLen grows x.digits to at least n entries, zero-filling the new
// high digits, and stores the (possibly reallocated) slice back in x
// without trimming — callers append digits mid-operation and trim once
// at the end.
func (x *BigUint) ensureLen(n int) {
	if len(x.digits) >= n {
		return
	}
	d := make([]uint64, n)
	copy(d, x.digits)
	x.digits = d
}
