package cim

// Qualifier is a QUALIFIER element value.
//
// IsArray records whether the values came from (or go to) a VALUE.ARRAY,
// which matters even when there is exactly one value.
type Qualifier struct {
	Name       Name
	Type       Type
	Values     []string
	IsArray    bool
	Propagated Bool
	Flavor     Flavor
}

// Value returns the first qualifier value, or "" if there are none
func (q Qualifier) Value() string {
	if len(q.Values) == 0 {
		return ""
	}
	return q.Values[0]
}

// QualifierDeclaration is a QUALIFIER.DECLARATION
type QualifierDeclaration struct {
	Name    Name
	Type    Type
	IsArray Bool
	// ArraySize is 0 when unset
	ArraySize int
	Flavor    Flavor
	Scope     *Scope
	Values    []string
}

// Scope is the SCOPE of a qualifier declaration
type Scope struct {
	Class       Bool
	Association Bool
	Reference   Bool
	Property    Bool
	Method      Bool
	Parameter   Bool
	Indication  Bool
}

// Qualifiers is a qualifier list
type Qualifiers []Qualifier

// Get returns the named qualifier
func (qs Qualifiers) Get(name string) (Qualifier, bool) {
	for _, q := range qs {
		if q.Name.EqualString(name) {
			return q, true
		}
	}
	return Qualifier{}, false
}
