package bignum

// Rational is an arbitrary-precision fraction, numerator/denominator kept
// in lowest terms with a strictly positive denominator (spec §4.3).
type Rational struct {
	num *Int
	den *Int
}

// NewRational builds a Rational from num/den, reducing to lowest terms and
// normalizing the sign onto the numerator.
func NewRational(num, den *Int) *Rational {
	if den.IsZero() {
		panic("bignum: rational with zero denominator")
	}
	if den.Sign() < 0 {
		num, den = num.Neg(), den.Neg()
	}
	g := gcd(absInt(num), den)
	if !g.IsZero() && g.Cmp(FromInt64(1)) != 0 {
		num, _ = num.QuoRem(g)
		den, _ = den.QuoRem(g)
	}
	return &Rational{num: num, den: den}
}

func absInt(x *Int) *Int {
	if x.Sign() < 0 {
		return x.Neg()
	}
	return x
}

func gcd(a, b *Int) *Int {
	for !b.IsZero() {
		_, r := a.QuoRem(b)
		a, b = b, absInt(r)
	}
	return a
}

// Num returns the numerator.
func (r *Rational) Num() *Int { return r.num }

// Den returns the denominator.
func (r *Rational) Den() *Int { return r.den }

// Add returns r+s.
func (r *Rational) Add(s *Rational) *Rational {
	return NewRational(r.num.Mul(s.den).Add(s.num.Mul(r.den)), r.den.Mul(s.den))
}

// Sub returns r-s.
func (r *Rational) Sub(s *Rational) *Rational {
	return NewRational(r.num.Mul(s.den).Sub(s.num.Mul(r.den)), r.den.Mul(s.den))
}

// Mul returns r*s.
func (r *Rational) Mul(s *Rational) *Rational {
	return NewRational(r.num.Mul(s.num), r.den.Mul(s.den))
}

// Quo returns r/s.
func (r *Rational) Quo(s *Rational) *Rational {
	return NewRational(r.num.Mul(s.den), r.den.Mul(s.num))
}

// String renders as "num/den", or just "num" when the denominator is 1.
func (r *Rational) String() string {
	if r.den.Cmp(FromInt64(1)) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// Float64 converts to the nearest float64 (used only for display/coercion,
// never for exact literal folding).
func (r *Rational) Float64() float64 {
	n, nok := r.num.Int64()
	d, dok := r.den.Int64()
	if nok && dok {
		return float64(n) / float64(d)
	}
	// fall back to string-based approximation for out-of-int64-range values.
	var nf, df float64
	for _, digit := range r.num.String() {
		if digit == '-' {
			continue
		}
		nf = nf*10 + float64(digit-'0')
	}
	for _, digit := range r.den.String() {
		if digit == '-' {
			continue
		}
		df = df*10 + float64(digit-'0')
	}
	v := nf / df
	if r.num.Sign() < 0 {
		v = -v
	}
	return v
}
