package bigint

import "testing"

func TestCmp(t *testing.T) {
	a := FromUint64(5)
	b := FromUint64(9)
	if a.Cmp(b) >= 0 {
		t.Fatal("5 should be < 9")
	}
	if b.Cmp(a) <= 0 {
		t.Fatal("9 should be > 5")
	}
	if a.Cmp(a.Clone()) != 0 {
		t.Fatal("5 should equal 5")
	}
}

func TestAddCarriesAcrossDigits(t *testing.T) {
	x := FromDigits([]uint64{^uint64(0)})
	x.Add(FromUint64(1))
	want := FromDigits([]uint64{0, 1})
	if x.Cmp(want) != 0 {
		t.Fatalf("Add() = %v, want %v", x.Digits(), want.Digits())
	}
}

func TestSubBorrowsAcrossDigits(t *testing.T) {
	x := FromDigits([]uint64{0, 1})
	x.Sub(FromUint64(1))
	want := FromDigits([]uint64{^uint64(0)})
	if x.Cmp(want) != 0 {
		t.Fatalf("Sub() = %v, want %v", x.Digits(), want.Digits())
	}
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on underflow")
		}
	}()
	x := FromUint64(1)
	x.Sub(FromUint64(2))
}

func TestIncDec(t *testing.T) {
	x := FromUint64(41)
	x.Inc()
	if x.Cmp(FromUint64(42)) != 0 {
		t.Fatalf("Inc() = %v, want 42", x.Digits())
	}
	x.Dec()
	if x.Cmp(FromUint64(41)) != 0 {
		t.Fatalf("Dec() = %v, want 41", x.Digits())
	}
}

func TestLshRshRoundTrip(t *testing.T) {
	x := FromUint64(0x1234)
	y := x.Clone()
	y.Lsh(70)
	y.Rsh(70)
	if y.Cmp(x) != 0 {
		t.Fatalf("Lsh/Rsh round trip = %v, want %v", y.Digits(), x.Digits())
	}
}

func TestLshWholeDigitShift(t *testing.T) {
	x := FromUint64(1)
	x.Lsh(128)
	want := FromDigits([]uint64{0, 0, 1})
	if x.Cmp(want) != 0 {
		t.Fatalf("Lsh(128) = %v, want %v", x.Digits(), want.Digits())
	}
}

func TestRshPastTopClearsToZero(t *testing.T) {
	x := FromUint64(0xFF)
	x.Rsh(64)
	if !x.IsZero() {
		t.Fatalf("Rsh past the top should leave zero, got %v", x.Digits())
	}
}

func TestScale(t *testing.T) {
	x := FromUint64(^uint64(0))
	x.Scale(2)
	want := FromDigits([]uint64{^uint64(0) - 1, 1})
	if x.Cmp(want) != 0 {
		t.Fatalf("Scale(2) = %v, want %v", x.Digits(), want.Digits())
	}
}

func TestScaleByZero(t *testing.T) {
	x := FromUint64(123)
	x.Scale(0)
	if !x.IsZero() {
		t.Fatalf("Scale(0) should yield zero, got %v", x.Digits())
	}
}

func TestMagnitudeZero(t *testing.T) {
	if got := Magnitude(BigUint{}, BigUint{}); got != 0 {
		t.Fatalf("Magnitude(0,0) = %d, want 0", got)
	}
}
