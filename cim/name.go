package cim

import "strings"

// Name is a CIM identifier which may be unset.
// Names compare case-insensitively.
type Name struct {
	value string
	set   bool
}

// NewName returns a set Name
func NewName(s string) Name { return Name{value: s, set: true} }

func (n Name) String() string { return n.value }

// IsSet returns true if the name was present (even if empty)
func (n Name) IsSet() bool { return n.set }

// Equal returns true if both names are unset, or both are set and
// equal under Unicode case folding.
func (n Name) Equal(o Name) bool {
	if n.set != o.set {
		return false
	}
	return strings.EqualFold(n.value, o.value)
}

// EqualString compares n to the plain string s.
func (n Name) EqualString(s string) bool { return n.set && strings.EqualFold(n.value, s) }

// Value is an optional text value, e.g. the content of a VALUE element.
type Value struct {
	value string
	set   bool
}

// NewValue returns a set Value
func NewValue(s string) Value { return Value{value: s, set: true} }

func (v Value) String() string { return v.value }

// IsSet returns true if the value was present (even if empty)
func (v Value) IsSet() bool { return v.set }
