package cim

// Class is a CLASS definition
type Class struct {
	Name       Name
	SuperClass Name
	Qualifiers Qualifiers
	Properties Properties
	Methods    []*Method
}

// Method is a METHOD definition. Type is the return type.
type Method struct {
	Name        Name
	Type        Type
	ClassOrigin Name
	Propagated  Bool
	Qualifiers  Qualifiers
	Parameters  []ParameterElement
}

// ParameterElement is one of *Parameter, *ParameterArray,
// *ParameterReference or *ParameterRefArray.
type ParameterElement interface {
	ParameterName() Name
	isParameter()
}

type Parameter struct {
	Name       Name
	Type       Type
	Qualifiers Qualifiers
}

type ParameterArray struct {
	Name       Name
	Type       Type
	ArraySize  int
	Qualifiers Qualifiers
}

type ParameterReference struct {
	Name           Name
	ReferenceClass Name
	Qualifiers     Qualifiers
}

type ParameterRefArray struct {
	Name           Name
	ReferenceClass Name
	ArraySize      int
	Qualifiers     Qualifiers
}

func (p *Parameter) ParameterName() Name          { return p.Name }
func (p *ParameterArray) ParameterName() Name     { return p.Name }
func (p *ParameterReference) ParameterName() Name { return p.Name }
func (p *ParameterRefArray) ParameterName() Name  { return p.Name }

func (*Parameter) isParameter()          {}
func (*ParameterArray) isParameter()     {}
func (*ParameterReference) isParameter() {}
func (*ParameterRefArray) isParameter()  {}

// Method returns the named method, or nil
func (c *Class) Method(name string) *Method {
	for _, m := range c.Methods {
		if m.Name.EqualString(name) {
			return m
		}
	}
	return nil
}

// Instance is an INSTANCE. InstanceName is set when the instance was
// carried in a VALUE.NAMEDINSTANCE.
type Instance struct {
	ClassName    Name
	Qualifiers   Qualifiers
	Properties   Properties
	InstanceName *InstanceName
}
