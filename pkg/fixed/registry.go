package fixed

import (
	"math/big"
	"sync"
)

// Type describes one fixed-width integer type. Types are interned: NewType
// returns the same *Type for every request with an equal (width, signed)
// pair, so descriptor identity is pointer equality and never needs a field
// comparison. A Type is immutable once created and lives for the process
// lifetime.
type Type struct {
	width  int
	signed bool
	min    *big.Int
	max    *big.Int
	mask   *big.Int
}

type typeKey struct {
	width  int
	signed bool
}

var (
	registryMu sync.Mutex
	registry   = map[typeKey]*Type{}
)

// NewType returns the canonical descriptor for the given width and
// signedness, creating and interning it on first use. Widths below 1 fail
// with an InvalidWidth error.
func NewType(width int, signed bool) (*Type, error) {
	if width < 1 {
		return nil, newInvalidWidthError(width)
	}
	key := typeKey{width: width, signed: signed}
	registryMu.Lock()
	defer registryMu.Unlock()
	if t, ok := registry[key]; ok {
		return t, nil
	}
	t := makeType(width, signed)
	registry[key] = t
	return t, nil
}

// Signed returns the canonical signed descriptor for width bits.
func Signed(width int) (*Type, error) {
	return NewType(width, true)
}

// Unsigned returns the canonical unsigned descriptor for width bits.
func Unsigned(width int) (*Type, error) {
	return NewType(width, false)
}

func makeType(width int, signed bool) *Type {
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	if signed {
		max := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width-1)), big.NewInt(1))
		min := new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(width-1)))
		return &Type{width: width, signed: true, min: min, max: max, mask: mask}
	}
	max := new(big.Int).Set(mask)
	return &Type{width: width, signed: false, min: big.NewInt(0), max: max, mask: mask}
}

// Width returns the bit width of the type.
func (t *Type) Width() int { return t.width }

// IsSigned reports whether the type is signed.
func (t *Type) IsSigned() bool { return t.signed }

// Min returns the smallest representable value as a fresh big.Int.
func (t *Type) Min() *big.Int { return cloneBigInt(t.min) }

// Max returns the largest representable value as a fresh big.Int.
func (t *Type) Max() *big.Int { return cloneBigInt(t.max) }

// Is reports whether t and other are the same interned descriptor.
func (t *Type) Is(other *Type) bool { return t == other }
