package bignum

import "testing"

func TestAddSubRoundTrip(t *testing.T) {
	a := FromInt64(123456789)
	b := FromInt64(-987654321)
	sum := a.Add(b)
	if got, want := sum.String(), "-864197532"; got != want {
		t.Fatalf("Add = %s, want %s", got, want)
	}
	back := sum.Sub(b)
	if back.Cmp(a) != 0 {
		t.Fatalf("Sub did not invert Add: got %s, want %s", back.String(), a.String())
	}
}

func TestMulSchoolbookMatchesExpected(t *testing.T) {
	a := FromInt64(123456)
	b := FromInt64(789012)
	got := a.Mul(b).String()
	want := "97408265472"
	if got != want {
		t.Fatalf("Mul = %s, want %s", got, want)
	}
}

func TestMulKaratsubaAgreesWithSchoolbook(t *testing.T) {
	// build two numbers with > karatsubaThreshold limbs so Mul exercises
	// the Karatsuba path, and cross-check against the schoolbook routine
	// directly.
	a := bigFromDigitPattern(25, 0x0123456789ABCDEF)
	b := bigFromDigitPattern(25, 0xFEDCBA9876543210)

	viaKaratsuba := mulMagKaratsuba(a.limbs, b.limbs)
	viaSchool := mulMagSchool(a.limbs, b.limbs)

	if cmpMag(trim(viaKaratsuba), trim(viaSchool)) != 0 {
		t.Fatalf("karatsuba and schoolbook disagree")
	}
}

func bigFromDigitPattern(limbCount int, pattern uint64) *Int {
	limbs := make([]limb, limbCount)
	for i := range limbs {
		limbs[i] = pattern ^ uint64(i)
	}
	return normalize(false, limbs)
}

func TestQuoRemTruncatesTowardZero(t *testing.T) {
	a := FromInt64(-7)
	b := FromInt64(2)
	q, r := a.QuoRem(b)
	if q.String() != "-3" || r.String() != "-1" {
		t.Fatalf("QuoRem(-7,2) = (%s,%s), want (-3,-1)", q.String(), r.String())
	}
}

func TestDivModFloorsWithDivisorSign(t *testing.T) {
	a := FromInt64(-7)
	b := FromInt64(2)
	d, m := a.DivMod(b)
	if d.String() != "-4" || m.String() != "1" {
		t.Fatalf("DivMod(-7,2) = (%s,%s), want (-4,1)", d.String(), m.String())
	}
}

func TestParseDecimalIgnoresUnderscores(t *testing.T) {
	v, ok := ParseDecimal("1_000_000")
	if !ok {
		t.Fatal("expected successful parse")
	}
	if v.String() != "1000000" {
		t.Fatalf("got %s, want 1000000", v.String())
	}
}

func TestParseBasedHex(t *testing.T) {
	v, ok := ParseBased("FF", 16)
	if !ok || v.String() != "255" {
		t.Fatalf("ParseBased(FF,16) = %v,%v want 255,true", v, ok)
	}
}

func TestRationalReducesToLowestTerms(t *testing.T) {
	r := NewRational(FromInt64(6), FromInt64(8))
	if r.Num().String() != "3" || r.Den().String() != "4" {
		t.Fatalf("got %s/%s want 3/4", r.Num(), r.Den())
	}
}

func TestRationalNormalizesSignToNumerator(t *testing.T) {
	r := NewRational(FromInt64(3), FromInt64(-4))
	if r.Num().String() != "-3" || r.Den().String() != "4" {
		t.Fatalf("got %s/%s want -3/4", r.Num(), r.Den())
	}
}
