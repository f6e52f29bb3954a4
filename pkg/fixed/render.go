package fixed

import (
	"fmt"
	"math/big"
	"strings"
)

// String renders the type as a width-suffixed name: "i8", "u8", "i12", "u36".
func (t *Type) String() string {
	if t.signed {
		return fmt.Sprintf("i%d", t.width)
	}
	return fmt.Sprintf("u%d", t.width)
}

// Describe renders the descriptor pair for diagnostics.
func (t *Type) Describe() string {
	return fmt.Sprintf("width=%d, signed=%t", t.width, t.signed)
}

// Binary returns the two's-complement bit pattern of v as exactly Width
// characters of '0' and '1', for negative values too: width 8, value -45
// renders as "11010011".
func (v Value) Binary() string {
	pattern := new(big.Int).And(v.raw, v.typ.mask)
	digits := pattern.Text(2)
	if pad := v.typ.width - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	return digits
}

// String renders the numeric value in decimal, sign included, independent
// of width.
func (v Value) String() string {
	return v.raw.String()
}

// Describe renders the value with its descriptor for diagnostics, e.g.
// "width=8, signed=false, value=108".
func (v Value) Describe() string {
	return fmt.Sprintf("%s, value=%s", v.typ.Describe(), v.raw)
}
