// Copyright (c) 2016, Christopher Patton. All rights reserved.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are met:
//
// 1. Redistributions of source code must retain the above copyright notice,
// this list of conditions and the following disclaimer.
//
// 2. Redistributions in binary form must reproduce the above copyright notice,
// this list of conditions and the following disclaimer in the documentation
// and/or other materials provided with the distribution.
//
// 3. Neither the name of the copyright holder nor the names of its contributors
// may be used to endorse or promote products derived from this software without
// specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
// AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
// IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE
// ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE
// LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR
// CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF
// SUBSTITUTE GOODS OR SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS
// INTERRUPTION) HOWEVER CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN
// CONTRACT, STRICT LIABILITY, OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE)
// ARISING IN ANY WAY OUT OF THE USE OF THIS SOFTWARE, EVEN IF ADVISED OF THE
// POSSIBILITY OF SUCH DAMAGE.

package elgamal

import "github.com/mindoftea/elgamal/internal/bigint"

// digitBytes is the byte width of one bigint digit (64 bits).
const digitBytes = 8

// PackBlock packs a plaintext block into a BigUint, treating the bytes
// as a sequence of 8-byte groups, each interpreted big-endian, with the
// first group in the input becoming the least-significant digit of the
// result and each subsequent group a more-significant digit. A zero byte
// anywhere in the input terminates packing immediately: the bytes
// consumed so far in the group containing it are left-aligned within
// that digit (as if the rest of the digit were zero-padded), and no
// further input is consumed.
//
// Callers must size their blocks so that len(data)*8 is strictly less
// than the modulus's bit length, or the packed value won't fit below the
// modulus as ElGamal requires.
func PackBlock(data []byte) bigint.BigUint {
	var digits []uint64
	pos := 0
	for pos < len(data) {
		var word uint64
		count := 0
		terminated := false
		for count < digitBytes && pos < len(data) {
			b := data[pos]
			pos++
			if b == 0 {
				terminated = true
				break
			}
			word = (word << 8) | uint64(b)
			count++
		}
		word <<= uint(8 * (digitBytes - count))
		digits = append(digits, word)
		if terminated {
			break
		}
	}
	return bigint.FromDigits(digits)
}

// UnpackBlock renders a BigUint back into raw bytes: each digit,
// starting from the least significant, becomes 8 big-endian bytes. The
// output is always a multiple of 8 bytes and is not truncated at an
// embedded zero byte — callers that packed a null-terminated string
// should stop reading at the first zero byte themselves, the same way
// printing a C string stops at its terminator regardless of what
// follows it in the buffer.
func UnpackBlock(x bigint.BigUint) []byte {
	digits := x.Digits()
	out := make([]byte, len(digits)*digitBytes)
	for i, d := range digits {
		for b := 0; b < digitBytes; b++ {
			out[i*digitBytes+b] = byte(d >> uint(8*(digitBytes-1-b)))
		}
	}
	return out
}
