// Package fixed provides integer values with a fixed bit width and defined
// two's-complement wraparound. Descriptors are obtained from an interning
// registry, so equal (width, signed) pairs always share one *Type and type
// identity is pointer equality. Binary operations between fixed values of
// different types take the left operand's type for the result; the reflected
// forms (a native integer on the left) yield a plain integer instead.
package fixed
