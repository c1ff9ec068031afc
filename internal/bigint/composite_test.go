package bigint

import "testing"

func TestMultiply(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{0, 5, 0},
		{1, 5, 5},
		{6, 7, 42},
		{1000, 1000, 1000000},
	}
	for _, c := range cases {
		got := Multiply(FromUint64(c.a), FromUint64(c.b))
		if got.Cmp(FromUint64(c.want)) != 0 {
			t.Errorf("Multiply(%d,%d) = %v, want %d", c.a, c.b, got.Digits(), c.want)
		}
	}
}

func TestMultiplyCrossesDigitBoundary(t *testing.T) {
	a := FromDigits([]uint64{0, 1}) // 2^64
	b := FromUint64(2)
	got := Multiply(a, b)
	want := FromDigits([]uint64{0, 2})
	if got.Cmp(want) != 0 {
		t.Fatalf("Multiply(2^64, 2) = %v, want %v", got.Digits(), want.Digits())
	}
}

func TestModSmall(t *testing.T) {
	cases := []struct{ a, b, want uint64 }{
		{10, 3, 1},
		{9, 3, 0},
		{5, 10, 5},
		{100, 7, 2},
	}
	for _, c := range cases {
		got := Mod(FromUint64(c.a), FromUint64(c.b))
		if got.Cmp(FromUint64(c.want)) != 0 {
			t.Errorf("Mod(%d,%d) = %v, want %d", c.a, c.b, got.Digits(), c.want)
		}
	}
}

func TestModPanicsOnZeroModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	Mod(FromUint64(1), BigUint{})
}

func TestDivMod(t *testing.T) {
	cases := []struct{ a, b, q, r uint64 }{
		{17, 5, 3, 2},
		{100, 10, 10, 0},
		{1, 7, 0, 1},
	}
	for _, c := range cases {
		q, r := DivMod(FromUint64(c.a), FromUint64(c.b))
		if q.Cmp(FromUint64(c.q)) != 0 || r.Cmp(FromUint64(c.r)) != 0 {
			t.Errorf("DivMod(%d,%d) = (%v,%v), want (%d,%d)", c.a, c.b, q.Digits(), r.Digits(), c.q, c.r)
		}
	}
}

func TestDivModReconstructsDividend(t *testing.T) {
	a := FromUint64(123456789)
	b := FromUint64(97)
	q, r := DivMod(a, b)
	got := Multiply(q, b)
	got.Add(r)
	if got.Cmp(a) != 0 {
		t.Fatalf("q*b+r = %v, want %v", got.Digits(), a.Digits())
	}
}

func TestModExpTable(t *testing.T) {
	cases := []struct{ base, exp, mod, want uint64 }{
		{2, 10, 1000, 24},
		{3, 0, 5, 1},
		{5, 1, 13, 5},
		{4, 13, 497, 445},
	}
	for _, c := range cases {
		got := ModExp(FromUint64(c.base), FromUint64(c.exp), FromUint64(c.mod))
		if got.Cmp(FromUint64(c.want)) != 0 {
			t.Errorf("ModExp(%d,%d,%d) = %v, want %d", c.base, c.exp, c.mod, got.Digits(), c.want)
		}
	}
}

func TestModExpPanicsOnZeroModulus(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	ModExp(FromUint64(2), FromUint64(3), BigUint{})
}
