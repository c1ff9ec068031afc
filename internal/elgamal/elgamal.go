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

// Package elgamal implements key generation and per-block encrypt/decrypt
// for a minimal ElGamal cryptosystem over (Z/pZ)*, built entirely on the
// from-scratch bigint package — never on math/big. It is not
// constant-time, not side-channel resistant, not secure against chosen
// ciphertext attacks, and does not interoperate with any standard
// ElGamal wire format.
package elgamal

import (
	"math/rand"

	"github.com/mindoftea/elgamal/internal/bigint"
)

// PrivateKey holds the prime modulus, generator, and secret exponent of
// an ElGamal key pair.
type PrivateKey struct {
	P, G, X bigint.BigUint
}

// PublicKey holds the prime modulus, generator, and public exponential
// h = g^x mod p of an ElGamal key pair.
type PublicKey struct {
	P, G, H bigint.BigUint
}

// Ciphertext is one encrypted block: the ephemeral exponential c1 and
// the masked message c2.
type Ciphertext struct {
	C1, C2 bigint.BigUint
}

// GenerateKeyPair picks a random prime of the given bit size, a
// primitive root modulo that prime (see bigint.FindPrimitiveRoot for the
// documented limits of that search), and a random secret exponent, and
// derives the corresponding public key. rng seeds only the pseudorandom
// Miller-Rabin witness search inside prime generation; every value that
// becomes part of the key itself is drawn from the secure source.
func GenerateKeyPair(bits uint, rng *rand.Rand) (*PrivateKey, *PublicKey, error) {
	p, err := bigint.GeneratePrime(bits, rng)
	if err != nil {
		return nil, nil, err
	}
	g, err := bigint.FindPrimitiveRoot(p, rng)
	if err != nil {
		return nil, nil, err
	}
	x, err := bigint.SecureRandomBelow(p)
	if err != nil {
		return nil, nil, err
	}
	h := bigint.ModExp(g, x, p)
	return &PrivateKey{P: p, G: g, X: x}, &PublicKey{P: p, G: g, H: h}, nil
}

// EncryptBlock encrypts one plaintext block m (which must be strictly
// less than pk.P) under the public key, sampling a fresh ephemeral
// exponent for this block alone: every call draws its own k from the
// secure source, and the caller has no way to supply or reuse one.
func (pk *PublicKey) EncryptBlock(m bigint.BigUint) (Ciphertext, error) {
	k, err := bigint.SecureRandomBelow(pk.P)
	if err != nil {
		return Ciphertext{}, err
	}
	c1 := bigint.ModExp(pk.G, k, pk.P)
	s := bigint.ModExp(pk.H, k, pk.P)
	c2 := bigint.Mod(bigint.Multiply(m, s), pk.P)
	return Ciphertext{C1: c1, C2: c2}, nil
}

// DecryptBlock recovers the plaintext block from a ciphertext produced
// by the matching public key. The shared secret's inverse is computed
// via Fermat's little theorem (s^(p-2) mod p), valid because p is prime
// and s is nonzero mod p.
func (sk *PrivateKey) DecryptBlock(ct Ciphertext) bigint.BigUint {
	s := bigint.ModExp(ct.C1, sk.X, sk.P)
	pMinusTwo := sk.P.Clone()
	pMinusTwo.Dec()
	pMinusTwo.Dec()
	sInv := bigint.ModExp(s, pMinusTwo, sk.P)
	return bigint.Mod(bigint.Multiply(ct.C2, sInv), sk.P)
}
