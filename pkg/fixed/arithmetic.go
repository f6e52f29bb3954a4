package fixed

import "math/big"

// Binary arithmetic computes the exact integer result first and then wraps
// it under the LEFT operand's descriptor. The right operand may be another
// Value (of any width and signedness) or a plain integer; its descriptor
// never influences the result type.

// Add returns v + rhs under v's type.
func (v Value) Add(rhs any) (Value, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrap(new(big.Int).Add(v.raw, b)), nil
}

// Sub returns v - rhs under v's type.
func (v Value) Sub(rhs any) (Value, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrap(new(big.Int).Sub(v.raw, b)), nil
}

// Mul returns v * rhs under v's type.
func (v Value) Mul(rhs any) (Value, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrap(new(big.Int).Mul(v.raw, b)), nil
}

// Div returns v / rhs truncated toward zero, under v's type. A zero divisor
// fails with a DivisionByZero error.
func (v Value) Div(rhs any) (Value, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return Value{}, err
	}
	if b.Sign() == 0 {
		return Value{}, newDivisionByZeroError()
	}
	return v.typ.wrap(new(big.Int).Quo(v.raw, b)), nil
}

// Mod returns the remainder of the truncating division v / rhs, under v's
// type, so v == (v/rhs)*rhs + v%rhs holds before wraparound. A zero divisor
// fails with a DivisionByZero error.
func (v Value) Mod(rhs any) (Value, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return Value{}, err
	}
	if b.Sign() == 0 {
		return Value{}, newDivisionByZeroError()
	}
	return v.typ.wrap(new(big.Int).Rem(v.raw, b)), nil
}

// Neg returns -v under v's type. Negating the minimum signed value wraps
// back to itself.
func (v Value) Neg() Value {
	return v.typ.wrap(new(big.Int).Neg(v.raw))
}

// Abs returns the absolute value of v under v's type.
func (v Value) Abs() Value {
	return v.typ.wrap(new(big.Int).Abs(v.raw))
}

// Reflected forms model a native integer on the left absorbing the fixed
// value's numeric value: ordinary integer arithmetic, no descriptor, no
// wraparound.

// RAdd returns lhs + rhs as a plain integer.
func RAdd(lhs any, rhs Value) (*big.Int, error) {
	a, err := operandBig(lhs)
	if err != nil {
		return nil, err
	}
	return a.Add(a, rhs.raw), nil
}

// RSub returns lhs - rhs as a plain integer.
func RSub(lhs any, rhs Value) (*big.Int, error) {
	a, err := operandBig(lhs)
	if err != nil {
		return nil, err
	}
	return a.Sub(a, rhs.raw), nil
}

// RMul returns lhs * rhs as a plain integer.
func RMul(lhs any, rhs Value) (*big.Int, error) {
	a, err := operandBig(lhs)
	if err != nil {
		return nil, err
	}
	return a.Mul(a, rhs.raw), nil
}

// RDiv returns lhs / rhs (truncated) as a plain integer. A zero-valued rhs
// fails with a DivisionByZero error.
func RDiv(lhs any, rhs Value) (*big.Int, error) {
	a, err := operandBig(lhs)
	if err != nil {
		return nil, err
	}
	if rhs.raw.Sign() == 0 {
		return nil, newDivisionByZeroError()
	}
	return a.Quo(a, rhs.raw), nil
}

// RMod returns the remainder of lhs / rhs as a plain integer. A zero-valued
// rhs fails with a DivisionByZero error.
func RMod(lhs any, rhs Value) (*big.Int, error) {
	a, err := operandBig(lhs)
	if err != nil {
		return nil, err
	}
	if rhs.raw.Sign() == 0 {
		return nil, newDivisionByZeroError()
	}
	return a.Rem(a, rhs.raw), nil
}

// Cmp compares v's numeric value against rhs and returns -1, 0, or +1.
// Descriptors are irrelevant: a value compares equal to a plain integer or
// to a value of a different width holding the same number.
func (v Value) Cmp(rhs any) (int, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return 0, err
	}
	return v.raw.Cmp(b), nil
}

// Equal reports numeric equality. Unsupported operands compare unequal.
func (v Value) Equal(rhs any) bool {
	c, err := v.Cmp(rhs)
	return err == nil && c == 0
}

// Less reports v < rhs. Unsupported operands report false; use Cmp when the
// distinction matters.
func (v Value) Less(rhs any) bool {
	c, err := v.Cmp(rhs)
	return err == nil && c < 0
}

// LessEqual reports v <= rhs.
func (v Value) LessEqual(rhs any) bool {
	c, err := v.Cmp(rhs)
	return err == nil && c <= 0
}

// Greater reports v > rhs.
func (v Value) Greater(rhs any) bool {
	c, err := v.Cmp(rhs)
	return err == nil && c > 0
}

// GreaterEqual reports v >= rhs.
func (v Value) GreaterEqual(rhs any) bool {
	c, err := v.Cmp(rhs)
	return err == nil && c >= 0
}
