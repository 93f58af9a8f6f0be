package cim

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// Type is a CIM scalar data type
type Type int

const (
	// TypeInvalid is the unset type. It is never replaced by a default.
	TypeInvalid Type = iota
	TypeString
	TypeBoolean
	TypeUint8
	TypeSint8
	TypeUint16
	TypeSint16
	TypeUint32
	TypeSint32
	TypeUint64
	TypeSint64
	TypeReal32
	TypeReal64
	TypeDatetime
	TypeChar16
	TypeReference
	TypeObject
)

var typeNames = [...]string{
	TypeInvalid:   "",
	TypeString:    "string",
	TypeBoolean:   "boolean",
	TypeUint8:     "uint8",
	TypeSint8:     "sint8",
	TypeUint16:    "uint16",
	TypeSint16:    "sint16",
	TypeUint32:    "uint32",
	TypeSint32:    "sint32",
	TypeUint64:    "uint64",
	TypeSint64:    "sint64",
	TypeReal32:    "real32",
	TypeReal64:    "real64",
	TypeDatetime:  "datetime",
	TypeChar16:    "char16",
	TypeReference: "reference",
	TypeObject:    "object",
}

func (t Type) String() string {
	switch {
	case t == TypeInvalid:
		return "invalid"
	case t > 0 && int(t) < len(typeNames):
		return typeNames[t]
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// IsSet returns true unless t is TypeInvalid
func (t Type) IsSet() bool { return t != TypeInvalid }

// ParseType returns the Type named by s (case-insensitive).
func ParseType(s string) (Type, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range typeNames {
		if i != int(TypeInvalid) && name == s {
			return Type(i), true
		}
	}
	return TypeInvalid, false
}

func (t Type) MarshalText() ([]byte, error) {
	if t == TypeInvalid {
		return nil, errors.New("invalid type")
	}
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(b []byte) error {
	v, ok := ParseType(string(bytes.TrimSpace(b)))
	if !ok {
		return errors.New("unknown value")
	}
	*t = v
	return nil
}

// Bool is an optional boolean
type Bool int

const (
	BoolUnset Bool = iota
	BoolFalse
	BoolTrue
)

// BoolOf returns the set Bool for b
func BoolOf(b bool) Bool {
	if b {
		return BoolTrue
	}
	return BoolFalse
}

// ParseBool parses "true" or "false", ignoring case.
func ParseBool(s string) (Bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return BoolTrue, true
	case "false":
		return BoolFalse, true
	}
	return BoolUnset, false
}

func (b Bool) IsSet() bool { return b != BoolUnset }

// Value returns true only for BoolTrue.
func (b Bool) Value() bool { return b == BoolTrue }

func (b Bool) String() string {
	switch b {
	case BoolTrue:
		return "true"
	case BoolFalse:
		return "false"
	default:
		return ""
	}
}

// Flavor holds qualifier propagation flags
type Flavor struct {
	Overridable  Bool
	ToSubclass   Bool
	ToInstance   Bool
	Translatable Bool
}
