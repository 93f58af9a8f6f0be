package cim

// PropertyElement is one of *Property, *PropertyArray or *PropertyReference.
type PropertyElement interface {
	PropertyName() Name
	isProperty()
}

// Property is a scalar PROPERTY
type Property struct {
	Name        Name
	Type        Type
	ClassOrigin Name
	Propagated  Bool
	Qualifiers  Qualifiers
	Value       Value
}

// PropertyArray is a PROPERTY.ARRAY. A nil Values means the VALUE.ARRAY
// child was absent.
type PropertyArray struct {
	Name        Name
	Type        Type
	ArraySize   int
	ClassOrigin Name
	Propagated  Bool
	Qualifiers  Qualifiers
	Values      []string
}

// PropertyReference is a PROPERTY.REFERENCE
type PropertyReference struct {
	Name           Name
	ReferenceClass Name
	ClassOrigin    Name
	Propagated     Bool
	Qualifiers     Qualifiers
	Value          *ValueReference
}

func (p *Property) PropertyName() Name          { return p.Name }
func (p *PropertyArray) PropertyName() Name     { return p.Name }
func (p *PropertyReference) PropertyName() Name { return p.Name }

func (*Property) isProperty()          {}
func (*PropertyArray) isProperty()     {}
func (*PropertyReference) isProperty() {}

// Properties is a mixed property list
type Properties []PropertyElement

// Get returns the named property, or nil
func (ps Properties) Get(name string) PropertyElement {
	for _, p := range ps {
		if p.PropertyName().EqualString(name) {
			return p
		}
	}
	return nil
}
