package elgamal

import (
	"math/rand"
	"testing"

	"github.com/mindoftea/elgamal/internal/bigint"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sk, pk, err := GenerateKeyPair(64, rng)
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}

	messages := []uint64{0, 1, 2, 42, 12345}
	for _, m := range messages {
		msg := bigint.FromUint64(m)
		ct, err := pk.EncryptBlock(msg)
		if err != nil {
			t.Fatalf("EncryptBlock(%d) error: %v", m, err)
		}
		got := sk.DecryptBlock(ct)
		if got.Cmp(msg) != 0 {
			t.Errorf("DecryptBlock(EncryptBlock(%d)) = %v, want %d", m, got.Digits(), m)
		}
	}
}

func TestEncryptionIsRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	_, pk, err := GenerateKeyPair(64, rng)
	if err != nil {
		t.Fatalf("GenerateKeyPair error: %v", err)
	}
	m := bigint.FromUint64(7)
	a, err := pk.EncryptBlock(m)
	if err != nil {
		t.Fatalf("EncryptBlock error: %v", err)
	}
	b, err := pk.EncryptBlock(m)
	if err != nil {
		t.Fatalf("EncryptBlock error: %v", err)
	}
	if a.C1.Cmp(b.C1) == 0 && a.C2.Cmp(b.C2) == 0 {
		t.Fatal("two encryptions of the same message with fresh ephemerals produced identical ciphertexts")
	}
}

func TestEncryptDecryptEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	sk, pk, err := GenerateKeyPair(512, rng)
	if err != nil {
		t.Fatalf("GenerateKeyPair(512) error: %v", err)
	}

	plaintext := []byte("the quick brown fox")
	m := PackBlock(plaintext)
	if m.Cmp(pk.P) >= 0 {
		t.Fatalf("packed block %v not below modulus", m.Digits())
	}
	ct, err := pk.EncryptBlock(m)
	if err != nil {
		t.Fatalf("EncryptBlock error: %v", err)
	}
	recovered := sk.DecryptBlock(ct)
	out := UnpackBlock(recovered)

	if i := indexOfZero(out); i < 0 || string(out[:i]) != string(plaintext) {
		t.Fatalf("round trip = %q, want %q", out, plaintext)
	}
}

func indexOfZero(b []byte) int {
	for i, c := range b {
		if c == 0 {
			return i
		}
	}
	return -1
}
