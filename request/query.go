package request

import (
	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/writer"
)

// ExecQuerySettings are the parameters of ExecQuery
type ExecQuerySettings struct {
	Namespace     string
	QueryLanguage string
	Query         string
}

func (s ExecQuerySettings) MethodName() string { return MethodExecQuery }

func (s ExecQuerySettings) Encode(w *writer.Writer, ns string) error { return ExecQuery(w, s, ns) }

// ExecQuery writes an ExecQuery call
func ExecQuery(w *writer.Writer, s ExecQuerySettings, defaultNamespace string) error {
	switch {
	case s.QueryLanguage == "":
		return required(MethodExecQuery, "QueryLanguage")
	case s.Query == "":
		return required(MethodExecQuery, "Query")
	}
	return intrinsic(w, MethodExecQuery, s.Namespace, defaultNamespace, func() {
		stringParam(w, "QueryLanguage", s.QueryLanguage)
		stringParam(w, "Query", s.Query)
	})
}

func objectNameParam(w *writer.Writer, o cim.ObjectName) {
	w.StartIParamValue("ObjectName")
	w.WriteObjectName(o)
	w.EndElement()
}

// AssociatorsSettings are the parameters of Associators. ObjectName is a
// class name (cim.Name) or an instance name.
type AssociatorsSettings struct {
	Namespace          string
	ObjectName         cim.ObjectName
	AssocClass         cim.Name
	ResultClass        cim.Name
	Role               string
	ResultRole         string
	IncludeQualifiers  cim.Bool
	IncludeClassOrigin cim.Bool
	PropertyList       []string
}

func (s AssociatorsSettings) MethodName() string { return MethodAssociators }

func (s AssociatorsSettings) Encode(w *writer.Writer, ns string) error { return Associators(w, s, ns) }

// Associators writes an Associators call
func Associators(w *writer.Writer, s AssociatorsSettings, defaultNamespace string) error {
	if s.ObjectName == nil {
		return required(MethodAssociators, "ObjectName")
	}
	return intrinsic(w, MethodAssociators, s.Namespace, defaultNamespace, func() {
		objectNameParam(w, s.ObjectName)
		optClassNameParam(w, "AssocClass", s.AssocClass)
		optClassNameParam(w, "ResultClass", s.ResultClass)
		optStringParam(w, "Role", s.Role)
		optStringParam(w, "ResultRole", s.ResultRole)
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		boolParam(w, "IncludeClassOrigin", s.IncludeClassOrigin)
		propertyList(w, s.PropertyList)
	})
}

// AssociatorNamesSettings are the parameters of AssociatorNames
type AssociatorNamesSettings struct {
	Namespace   string
	ObjectName  cim.ObjectName
	AssocClass  cim.Name
	ResultClass cim.Name
	Role        string
	ResultRole  string
}

func (s AssociatorNamesSettings) MethodName() string { return MethodAssociatorNames }

func (s AssociatorNamesSettings) Encode(w *writer.Writer, ns string) error {
	return AssociatorNames(w, s, ns)
}

// AssociatorNames writes an AssociatorNames call
func AssociatorNames(w *writer.Writer, s AssociatorNamesSettings, defaultNamespace string) error {
	if s.ObjectName == nil {
		return required(MethodAssociatorNames, "ObjectName")
	}
	return intrinsic(w, MethodAssociatorNames, s.Namespace, defaultNamespace, func() {
		objectNameParam(w, s.ObjectName)
		optClassNameParam(w, "AssocClass", s.AssocClass)
		optClassNameParam(w, "ResultClass", s.ResultClass)
		optStringParam(w, "Role", s.Role)
		optStringParam(w, "ResultRole", s.ResultRole)
	})
}

// ReferencesSettings are the parameters of References
type ReferencesSettings struct {
	Namespace          string
	ObjectName         cim.ObjectName
	ResultClass        cim.Name
	Role               string
	IncludeQualifiers  cim.Bool
	IncludeClassOrigin cim.Bool
	PropertyList       []string
}

func (s ReferencesSettings) MethodName() string { return MethodReferences }

func (s ReferencesSettings) Encode(w *writer.Writer, ns string) error { return References(w, s, ns) }

// References writes a References call
func References(w *writer.Writer, s ReferencesSettings, defaultNamespace string) error {
	if s.ObjectName == nil {
		return required(MethodReferences, "ObjectName")
	}
	return intrinsic(w, MethodReferences, s.Namespace, defaultNamespace, func() {
		objectNameParam(w, s.ObjectName)
		optClassNameParam(w, "ResultClass", s.ResultClass)
		optStringParam(w, "Role", s.Role)
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		boolParam(w, "IncludeClassOrigin", s.IncludeClassOrigin)
		propertyList(w, s.PropertyList)
	})
}

// ReferenceNamesSettings are the parameters of ReferenceNames
type ReferenceNamesSettings struct {
	Namespace   string
	ObjectName  cim.ObjectName
	ResultClass cim.Name
	Role        string
}

func (s ReferenceNamesSettings) MethodName() string { return MethodReferenceNames }

func (s ReferenceNamesSettings) Encode(w *writer.Writer, ns string) error {
	return ReferenceNames(w, s, ns)
}

// ReferenceNames writes a ReferenceNames call
func ReferenceNames(w *writer.Writer, s ReferenceNamesSettings, defaultNamespace string) error {
	if s.ObjectName == nil {
		return required(MethodReferenceNames, "ObjectName")
	}
	return intrinsic(w, MethodReferenceNames, s.Namespace, defaultNamespace, func() {
		objectNameParam(w, s.ObjectName)
		optClassNameParam(w, "ResultClass", s.ResultClass)
		optStringParam(w, "Role", s.Role)
	})
}
