package fixed

import "math/big"

// Bitwise operations act on the two's-complement bit patterns of the
// operands. As with arithmetic, the result always carries the left
// operand's descriptor; the right operand's pattern is truncated to the
// left width first.

// And returns the bitwise AND of the operands under v's type.
func (v Value) And(rhs any) (Value, error) {
	pa, pb, err := v.patterns(rhs)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrap(pa.And(pa, pb)), nil
}

// Or returns the bitwise OR of the operands under v's type.
func (v Value) Or(rhs any) (Value, error) {
	pa, pb, err := v.patterns(rhs)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrap(pa.Or(pa, pb)), nil
}

// Xor returns the bitwise XOR of the operands under v's type.
func (v Value) Xor(rhs any) (Value, error) {
	pa, pb, err := v.patterns(rhs)
	if err != nil {
		return Value{}, err
	}
	return v.typ.wrap(pa.Xor(pa, pb)), nil
}

// Not returns the complement of v's bit pattern under v's type.
func (v Value) Not() Value {
	return v.typ.wrap(new(big.Int).Not(v.raw))
}

// Shl shifts v's bit pattern left by count, discarding bits shifted past
// the width. Counts outside [0, width) fail with a ShiftOutOfRange error.
func (v Value) Shl(count int) (Value, error) {
	if count < 0 || count >= v.typ.width {
		return Value{}, newShiftOutOfRangeError(count, v.typ.width)
	}
	return v.typ.wrap(new(big.Int).Lsh(v.raw, uint(count))), nil
}

// Shr shifts v right by count. Signed values shift arithmetically
// (sign-filling); unsigned values shift their bit pattern logically.
// Counts outside [0, width) fail with a ShiftOutOfRange error.
func (v Value) Shr(count int) (Value, error) {
	if count < 0 || count >= v.typ.width {
		return Value{}, newShiftOutOfRangeError(count, v.typ.width)
	}
	var result big.Int
	if v.typ.signed {
		result.Rsh(v.raw, uint(count))
	} else {
		pattern := new(big.Int).And(v.raw, v.typ.mask)
		result.Rsh(pattern, uint(count))
	}
	return v.typ.wrap(&result), nil
}

// patterns yields the width-masked bit patterns of both operands.
func (v Value) patterns(rhs any) (*big.Int, *big.Int, error) {
	b, err := operandBig(rhs)
	if err != nil {
		return nil, nil, err
	}
	pa := new(big.Int).And(v.raw, v.typ.mask)
	pb := b.And(b, v.typ.mask)
	return pa, pb, nil
}
