package reader

import (
	"github.com/pkg/errors"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/grammar"
)

func (r *Reader) readClassName() (cim.Name, error) {
	attrs, err := r.start(grammar.ClassNameStart)
	if err != nil {
		return cim.Name{}, err
	}
	name := cim.Name{}
	for _, a := range attrs {
		if grammar.ClassifyAttr(a.Name.Local) == grammar.AttrName {
			name = cim.NewName(a.Value)
		}
	}
	if !name.IsSet() {
		return name, r.missing(grammar.AttrName, grammar.ClassNameStart)
	}
	return name, r.end(grammar.ClassNameStart)
}

func (r *Reader) readClass() (*cim.Class, error) {
	attrs, err := r.start(grammar.ClassStart)
	if err != nil {
		return nil, err
	}
	c := &cim.Class{}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrName:
			c.Name = cim.NewName(a.Value)
		case grammar.AttrSuperClass:
			c.SuperClass = cim.NewName(a.Value)
		}
	}
	if !c.Name.IsSet() {
		return nil, r.missing(grammar.AttrName, grammar.ClassStart)
	}
	for {
		et, err := r.peek()
		if err != nil {
			return nil, err
		}
		switch et {
		case grammar.ClassEnd:
			return c, r.end(grammar.ClassStart)
		case grammar.QualifierStart:
			var q cim.Qualifier
			if q, err = r.readQualifier(); err == nil {
				c.Qualifiers = append(c.Qualifiers, q)
			}
		case grammar.PropertyStart, grammar.PropertyArrayStart, grammar.PropertyReferenceStart:
			var p cim.PropertyElement
			if p, err = r.readAnyProperty(et); err == nil {
				c.Properties = append(c.Properties, p)
			}
		case grammar.MethodStart:
			var m *cim.Method
			if m, err = r.readMethod(); err == nil {
				c.Methods = append(c.Methods, m)
			}
		default:
			err = r.unexpectedIn(et, grammar.ClassStart)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (r *Reader) readQualifier() (cim.Qualifier, error) {
	q := cim.Qualifier{}
	attrs, err := r.start(grammar.QualifierStart)
	if err != nil {
		return q, err
	}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrName:
			q.Name = cim.NewName(a.Value)
		case grammar.AttrType:
			q.Type, err = r.typeAttr(grammar.QualifierStart, a)
		case grammar.AttrPropagated:
			q.Propagated, err = r.boolAttr(grammar.QualifierStart, a)
		default:
			err = r.flavorAttr(grammar.QualifierStart, a, &q.Flavor)
		}
		if err != nil {
			return q, err
		}
	}
	switch {
	case !q.Name.IsSet():
		return q, r.missing(grammar.AttrName, grammar.QualifierStart)
	case !q.Type.IsSet():
		return q, r.missing(grammar.AttrType, grammar.QualifierStart)
	}
	et, err := r.peek()
	if err != nil {
		return q, err
	}
	switch et {
	case grammar.ValueStart:
		var v cim.Value
		if v, err = r.readValue(); err == nil {
			q.Values = []string{v.String()}
		}
	case grammar.ValueArrayStart:
		q.IsArray = true
		q.Values, err = r.readValueArray()
	case grammar.QualifierEnd:
	default:
		err = r.unexpectedIn(et, grammar.QualifierStart)
	}
	if err != nil {
		return q, err
	}
	return q, r.end(grammar.QualifierStart)
}

// readQualifiers reads the QUALIFIER* prefix shared by properties and parameters
func (r *Reader) readQualifiers() (cim.Qualifiers, error) {
	var qs cim.Qualifiers
	for {
		et, err := r.peek()
		if err != nil || et != grammar.QualifierStart {
			return qs, err
		}
		q, err := r.readQualifier()
		if err != nil {
			return nil, err
		}
		qs = append(qs, q)
	}
}

func (r *Reader) readAnyProperty(et grammar.ElementType) (cim.PropertyElement, error) {
	switch et {
	case grammar.PropertyStart:
		return r.readProperty()
	case grammar.PropertyArrayStart:
		return r.readPropertyArray()
	case grammar.PropertyReferenceStart:
		return r.readPropertyReference()
	}
	return nil, errors.WithStack(cimerr.UnexpectedElement(describe(et), cimerr.WithMessage("want a property")))
}

// propertyAttr handles the attributes common to the three property kinds
func (r *Reader) propertyAttr(et grammar.ElementType, attr grammar.Attribute, value string, origin *cim.Name, propagated *cim.Bool) (err error) {
	switch attr {
	case grammar.AttrClassOrigin:
		*origin = cim.NewName(value)
	case grammar.AttrPropagated:
		b, ok := cim.ParseBool(value)
		if !ok {
			return errors.WithStack(cimerr.UnexpectedElement(et.Tag(), cimerr.WithMessagef("invalid PROPAGATED value %q", value)))
		}
		*propagated = b
	case grammar.AttrEmbeddedObject:
		err = r.unimplemented(et, "embedded object properties are not supported")
	}
	return err
}

func (r *Reader) readProperty() (*cim.Property, error) {
	attrs, err := r.start(grammar.PropertyStart)
	if err != nil {
		return nil, err
	}
	p := &cim.Property{}
	for _, a := range attrs {
		switch attr := grammar.ClassifyAttr(a.Name.Local); attr {
		case grammar.AttrName:
			p.Name = cim.NewName(a.Value)
		case grammar.AttrType:
			p.Type, err = r.typeAttr(grammar.PropertyStart, a)
		default:
			err = r.propertyAttr(grammar.PropertyStart, attr, a.Value, &p.ClassOrigin, &p.Propagated)
		}
		if err != nil {
			return nil, err
		}
	}
	switch {
	case !p.Name.IsSet():
		return nil, r.missing(grammar.AttrName, grammar.PropertyStart)
	case !p.Type.IsSet():
		return nil, r.missing(grammar.AttrType, grammar.PropertyStart)
	}
	if p.Qualifiers, err = r.readQualifiers(); err != nil {
		return nil, err
	}
	if et, err := r.peek(); err != nil {
		return nil, err
	} else if et == grammar.ValueStart {
		if p.Value, err = r.readValue(); err != nil {
			return nil, err
		}
	}
	return p, r.end(grammar.PropertyStart)
}

func (r *Reader) readPropertyArray() (*cim.PropertyArray, error) {
	attrs, err := r.start(grammar.PropertyArrayStart)
	if err != nil {
		return nil, err
	}
	p := &cim.PropertyArray{}
	for _, a := range attrs {
		switch attr := grammar.ClassifyAttr(a.Name.Local); attr {
		case grammar.AttrName:
			p.Name = cim.NewName(a.Value)
		case grammar.AttrType:
			p.Type, err = r.typeAttr(grammar.PropertyArrayStart, a)
		case grammar.AttrArraySize:
			p.ArraySize, err = r.intAttr(grammar.PropertyArrayStart, a)
		default:
			err = r.propertyAttr(grammar.PropertyArrayStart, attr, a.Value, &p.ClassOrigin, &p.Propagated)
		}
		if err != nil {
			return nil, err
		}
	}
	switch {
	case !p.Name.IsSet():
		return nil, r.missing(grammar.AttrName, grammar.PropertyArrayStart)
	case !p.Type.IsSet():
		return nil, r.missing(grammar.AttrType, grammar.PropertyArrayStart)
	}
	if p.Qualifiers, err = r.readQualifiers(); err != nil {
		return nil, err
	}
	if et, err := r.peek(); err != nil {
		return nil, err
	} else if et == grammar.ValueArrayStart {
		if p.Values, err = r.readValueArray(); err != nil {
			return nil, err
		}
	}
	return p, r.end(grammar.PropertyArrayStart)
}

func (r *Reader) readPropertyReference() (*cim.PropertyReference, error) {
	attrs, err := r.start(grammar.PropertyReferenceStart)
	if err != nil {
		return nil, err
	}
	p := &cim.PropertyReference{}
	for _, a := range attrs {
		switch attr := grammar.ClassifyAttr(a.Name.Local); attr {
		case grammar.AttrName:
			p.Name = cim.NewName(a.Value)
		case grammar.AttrReferenceClass:
			p.ReferenceClass = cim.NewName(a.Value)
		default:
			err = r.propertyAttr(grammar.PropertyReferenceStart, attr, a.Value, &p.ClassOrigin, &p.Propagated)
		}
		if err != nil {
			return nil, err
		}
	}
	if !p.Name.IsSet() {
		return nil, r.missing(grammar.AttrName, grammar.PropertyReferenceStart)
	}
	if p.Qualifiers, err = r.readQualifiers(); err != nil {
		return nil, err
	}
	if et, err := r.peek(); err != nil {
		return nil, err
	} else if et == grammar.ValueReferenceStart {
		if p.Value, err = r.readValueReference(); err != nil {
			return nil, err
		}
	}
	return p, r.end(grammar.PropertyReferenceStart)
}

func (r *Reader) readMethod() (*cim.Method, error) {
	attrs, err := r.start(grammar.MethodStart)
	if err != nil {
		return nil, err
	}
	m := &cim.Method{}
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrName:
			m.Name = cim.NewName(a.Value)
		case grammar.AttrType:
			m.Type, err = r.typeAttr(grammar.MethodStart, a)
		case grammar.AttrClassOrigin:
			m.ClassOrigin = cim.NewName(a.Value)
		case grammar.AttrPropagated:
			m.Propagated, err = r.boolAttr(grammar.MethodStart, a)
		}
		if err != nil {
			return nil, err
		}
	}
	if !m.Name.IsSet() {
		return nil, r.missing(grammar.AttrName, grammar.MethodStart)
	}
	for {
		et, err := r.peek()
		if err != nil {
			return nil, err
		}
		switch et {
		case grammar.MethodEnd:
			return m, r.end(grammar.MethodStart)
		case grammar.QualifierStart:
			var q cim.Qualifier
			if q, err = r.readQualifier(); err == nil {
				m.Qualifiers = append(m.Qualifiers, q)
			}
		case grammar.ParameterStart, grammar.ParameterArrayStart,
			grammar.ParameterReferenceStart, grammar.ParameterRefArrayStart:
			var p cim.ParameterElement
			if p, err = r.readParameter(et); err == nil {
				m.Parameters = append(m.Parameters, p)
			}
		default:
			err = r.unexpectedIn(et, grammar.MethodStart)
		}
		if err != nil {
			return nil, err
		}
	}
}

// readParameter reads any of the four PARAMETER kinds
func (r *Reader) readParameter(et grammar.ElementType) (cim.ParameterElement, error) {
	attrs, err := r.start(et)
	if err != nil {
		return nil, err
	}
	var (
		name, refClass cim.Name
		typ            cim.Type
		size           int
	)
	for _, a := range attrs {
		switch grammar.ClassifyAttr(a.Name.Local) {
		case grammar.AttrName:
			name = cim.NewName(a.Value)
		case grammar.AttrType:
			typ, err = r.typeAttr(et, a)
		case grammar.AttrReferenceClass:
			refClass = cim.NewName(a.Value)
		case grammar.AttrArraySize:
			size, err = r.intAttr(et, a)
		}
		if err != nil {
			return nil, err
		}
	}
	if !name.IsSet() {
		return nil, r.missing(grammar.AttrName, et)
	}
	if !typ.IsSet() && (et == grammar.ParameterStart || et == grammar.ParameterArrayStart) {
		return nil, r.missing(grammar.AttrType, et)
	}
	qs, err := r.readQualifiers()
	if err != nil {
		return nil, err
	}

	var p cim.ParameterElement
	switch et {
	case grammar.ParameterStart:
		p = &cim.Parameter{Name: name, Type: typ, Qualifiers: qs}
	case grammar.ParameterArrayStart:
		p = &cim.ParameterArray{Name: name, Type: typ, ArraySize: size, Qualifiers: qs}
	case grammar.ParameterReferenceStart:
		p = &cim.ParameterReference{Name: name, ReferenceClass: refClass, Qualifiers: qs}
	default:
		p = &cim.ParameterRefArray{Name: name, ReferenceClass: refClass, ArraySize: size, Qualifiers: qs}
	}
	return p, r.end(et)
}

func (r *Reader) readInstance() (*cim.Instance, error) {
	attrs, err := r.start(grammar.InstanceStart)
	if err != nil {
		return nil, err
	}
	inst := &cim.Instance{}
	for _, a := range attrs {
		if grammar.ClassifyAttr(a.Name.Local) == grammar.AttrClassName {
			inst.ClassName = cim.NewName(a.Value)
		}
	}
	if !inst.ClassName.IsSet() {
		return nil, r.missing(grammar.AttrClassName, grammar.InstanceStart)
	}
	for {
		et, err := r.peek()
		if err != nil {
			return nil, err
		}
		switch et {
		case grammar.InstanceEnd:
			return inst, r.end(grammar.InstanceStart)
		case grammar.QualifierStart:
			var q cim.Qualifier
			if q, err = r.readQualifier(); err == nil {
				inst.Qualifiers = append(inst.Qualifiers, q)
			}
		case grammar.PropertyStart, grammar.PropertyArrayStart, grammar.PropertyReferenceStart:
			var p cim.PropertyElement
			if p, err = r.readAnyProperty(et); err == nil {
				inst.Properties = append(inst.Properties, p)
			}
		default:
			err = r.unexpectedIn(et, grammar.InstanceStart)
		}
		if err != nil {
			return nil, err
		}
	}
}

// readNamedInstance reads a VALUE.NAMEDINSTANCE, whose instance name and
// instance must agree on the class name.
func (r *Reader) readNamedInstance() (*cim.Instance, error) {
	if _, err := r.start(grammar.ValueNamedInstanceStart); err != nil {
		return nil, err
	}
	name, err := r.readInstanceName()
	if err != nil {
		return nil, err
	}
	inst, err := r.readInstance()
	if err != nil {
		return nil, err
	}
	if !inst.ClassName.Equal(name.ClassName) {
		return nil, errors.WithStack(cimerr.UnexpectedElement(grammar.ValueNamedInstanceStart.Tag(),
			cimerr.WithMessagef("instance name class %q does not match instance class %q", name.ClassName, inst.ClassName)))
	}
	inst.InstanceName = name
	return inst, r.end(grammar.ValueNamedInstanceStart)
}
