package fixed

import "math/big"

// Value is one integer bound to a Type. The stored integer always lies
// within the type's range; construction reduces any magnitude into range via
// two's-complement truncation. Values are immutable.
type Value struct {
	typ *Type
	raw *big.Int
}

// New constructs a value from an int64 magnitude, wrapping into range.
// Out-of-range magnitudes are not an error; wraparound is the defined
// behavior, for negative magnitudes too.
func (t *Type) New(magnitude int64) Value {
	return t.wrap(big.NewInt(magnitude))
}

// NewBig constructs a value from a big.Int magnitude, wrapping into range.
// A nil magnitude is treated as zero. The argument is not retained.
func (t *Type) NewBig(magnitude *big.Int) Value {
	if magnitude == nil {
		magnitude = big.NewInt(0)
	}
	return t.wrap(magnitude)
}

// Make constructs a value from any supported operand: Go integers,
// *big.Int, or another Value, whose numeric value is re-wrapped under t.
func (t *Type) Make(operand any) (Value, error) {
	mag, err := operandBig(operand)
	if err != nil {
		return Value{}, err
	}
	return t.wrap(mag), nil
}

// wrap reduces magnitude into t's range: mask to the low width bits (big.Int
// bitwise ops follow infinite two's-complement, so this is exact for
// negative inputs), then subtract 2^width when the type is signed and the
// sign bit of the pattern is set.
func (t *Type) wrap(magnitude *big.Int) Value {
	pattern := new(big.Int).And(magnitude, t.mask)
	if t.signed && pattern.Bit(t.width-1) == 1 {
		adjust := new(big.Int).Lsh(big.NewInt(1), uint(t.width))
		pattern.Sub(pattern, adjust)
	}
	return Value{typ: t, raw: pattern}
}

// Type returns the value's interned descriptor.
func (v Value) Type() *Type { return v.typ }

// Big returns the numeric value as a fresh big.Int.
func (v Value) Big() *big.Int { return cloneBigInt(v.raw) }

// Int64 returns the numeric value truncated to int64.
func (v Value) Int64() int64 { return v.raw.Int64() }

// Is reports whether v is bound to exactly the given descriptor.
func Is(v Value, t *Type) bool { return v.typ == t }

// IsFixed reports whether x is a fixed-width integer value of any type.
func IsFixed(x any) bool {
	_, ok := x.(Value)
	return ok
}

// operandBig extracts the exact numeric value of a supported operand. The
// result is owned by the caller.
func operandBig(operand any) (*big.Int, error) {
	switch o := operand.(type) {
	case Value:
		return cloneBigInt(o.raw), nil
	case int:
		return big.NewInt(int64(o)), nil
	case int8:
		return big.NewInt(int64(o)), nil
	case int16:
		return big.NewInt(int64(o)), nil
	case int32:
		return big.NewInt(int64(o)), nil
	case int64:
		return big.NewInt(o), nil
	case uint:
		return new(big.Int).SetUint64(uint64(o)), nil
	case uint8:
		return big.NewInt(int64(o)), nil
	case uint16:
		return big.NewInt(int64(o)), nil
	case uint32:
		return big.NewInt(int64(o)), nil
	case uint64:
		return new(big.Int).SetUint64(o), nil
	case *big.Int:
		if o == nil {
			return big.NewInt(0), nil
		}
		return cloneBigInt(o), nil
	default:
		return nil, newUnsupportedOperandError(operand)
	}
}

func cloneBigInt(src *big.Int) *big.Int {
	if src == nil {
		return nil
	}
	return new(big.Int).Set(src)
}
