package cim

// cloneStrings copies s, keeping nil and empty distinct
func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string{}, s...)
}

// Clone returns a deep copy of the class
func (c *Class) Clone() *Class {
	if c == nil {
		return nil
	}
	out := &Class{
		Name:       c.Name,
		SuperClass: c.SuperClass,
		Qualifiers: c.Qualifiers.Clone(),
		Properties: c.Properties.Clone(),
	}
	if c.Methods != nil {
		out.Methods = make([]*Method, len(c.Methods))
		for i, m := range c.Methods {
			out.Methods[i] = m.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the method
func (m *Method) Clone() *Method {
	if m == nil {
		return nil
	}
	out := *m
	out.Qualifiers = m.Qualifiers.Clone()
	if m.Parameters != nil {
		out.Parameters = make([]ParameterElement, len(m.Parameters))
		for i, p := range m.Parameters {
			switch p := p.(type) {
			case *Parameter:
				c := *p
				c.Qualifiers = p.Qualifiers.Clone()
				out.Parameters[i] = &c
			case *ParameterArray:
				c := *p
				c.Qualifiers = p.Qualifiers.Clone()
				out.Parameters[i] = &c
			case *ParameterReference:
				c := *p
				c.Qualifiers = p.Qualifiers.Clone()
				out.Parameters[i] = &c
			case *ParameterRefArray:
				c := *p
				c.Qualifiers = p.Qualifiers.Clone()
				out.Parameters[i] = &c
			default:
				out.Parameters[i] = p
			}
		}
	}
	return &out
}

// Clone returns a deep copy of the qualifier list
func (qs Qualifiers) Clone() Qualifiers {
	if qs == nil {
		return nil
	}
	out := make(Qualifiers, len(qs))
	for i, q := range qs {
		q.Values = cloneStrings(q.Values)
		out[i] = q
	}
	return out
}

// Clone returns a deep copy of the property list
func (ps Properties) Clone() Properties {
	if ps == nil {
		return nil
	}
	out := make(Properties, len(ps))
	for i, p := range ps {
		switch p := p.(type) {
		case *Property:
			c := *p
			c.Qualifiers = p.Qualifiers.Clone()
			out[i] = &c
		case *PropertyArray:
			c := *p
			c.Qualifiers = p.Qualifiers.Clone()
			c.Values = cloneStrings(p.Values)
			out[i] = &c
		case *PropertyReference:
			c := *p
			c.Qualifiers = p.Qualifiers.Clone()
			c.Value = p.Value.Clone()
			out[i] = &c
		default:
			out[i] = p
		}
	}
	return out
}

// Clone returns a deep copy of the reference
func (r *ValueReference) Clone() *ValueReference {
	if r == nil {
		return nil
	}
	out := *r
	out.Namespace.Namespace = cloneStrings(r.Namespace.Namespace)
	out.InstanceName = r.InstanceName.Clone()
	return &out
}

// Clone returns a deep copy of the instance name
func (n *InstanceName) Clone() *InstanceName {
	if n == nil {
		return nil
	}
	out := &InstanceName{ClassName: n.ClassName}
	if n.KeyBindings != nil {
		out.KeyBindings = make([]KeyBinding, len(n.KeyBindings))
		for i, kb := range n.KeyBindings {
			switch v := kb.Value.(type) {
			case *KeyValue:
				c := *v
				kb.Value = &c
			case *ValueReference:
				kb.Value = v.Clone()
			}
			out.KeyBindings[i] = kb
		}
	}
	return out
}
