package request

import (
	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/writer"
)

// GetInstanceSettings are the parameters of GetInstance
type GetInstanceSettings struct {
	Namespace          string
	InstanceName       *cim.InstanceName
	LocalOnly          cim.Bool
	IncludeQualifiers  cim.Bool
	IncludeClassOrigin cim.Bool
	PropertyList       []string
}

func (s GetInstanceSettings) MethodName() string { return MethodGetInstance }

func (s GetInstanceSettings) Encode(w *writer.Writer, ns string) error { return GetInstance(w, s, ns) }

// GetInstance writes a GetInstance call
func GetInstance(w *writer.Writer, s GetInstanceSettings, defaultNamespace string) error {
	if s.InstanceName == nil {
		return required(MethodGetInstance, "InstanceName")
	}
	return intrinsic(w, MethodGetInstance, s.Namespace, defaultNamespace, func() {
		instanceNameParam(w, "InstanceName", s.InstanceName)
		boolParam(w, "LocalOnly", s.LocalOnly)
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		boolParam(w, "IncludeClassOrigin", s.IncludeClassOrigin)
		propertyList(w, s.PropertyList)
	})
}

// DeleteInstanceSettings are the parameters of DeleteInstance
type DeleteInstanceSettings struct {
	Namespace    string
	InstanceName *cim.InstanceName
}

func (s DeleteInstanceSettings) MethodName() string { return MethodDeleteInstance }

func (s DeleteInstanceSettings) Encode(w *writer.Writer, ns string) error {
	return DeleteInstance(w, s, ns)
}

// DeleteInstance writes a DeleteInstance call
func DeleteInstance(w *writer.Writer, s DeleteInstanceSettings, defaultNamespace string) error {
	if s.InstanceName == nil {
		return required(MethodDeleteInstance, "InstanceName")
	}
	return intrinsic(w, MethodDeleteInstance, s.Namespace, defaultNamespace, func() {
		instanceNameParam(w, "InstanceName", s.InstanceName)
	})
}

// CreateInstanceSettings are the parameters of CreateInstance
type CreateInstanceSettings struct {
	Namespace   string
	NewInstance *cim.Instance
}

func (s CreateInstanceSettings) MethodName() string { return MethodCreateInstance }

func (s CreateInstanceSettings) Encode(w *writer.Writer, ns string) error {
	return CreateInstance(w, s, ns)
}

// CreateInstance writes a CreateInstance call
func CreateInstance(w *writer.Writer, s CreateInstanceSettings, defaultNamespace string) error {
	if s.NewInstance == nil {
		return required(MethodCreateInstance, "NewInstance")
	}
	return intrinsic(w, MethodCreateInstance, s.Namespace, defaultNamespace, func() {
		w.StartIParamValue("NewInstance")
		w.WriteInstance(s.NewInstance)
		w.EndElement()
	})
}

// ModifyInstanceSettings are the parameters of ModifyInstance.
// ModifiedInstance must carry its InstanceName.
type ModifyInstanceSettings struct {
	Namespace         string
	ModifiedInstance  *cim.Instance
	IncludeQualifiers cim.Bool
	PropertyList      []string
}

func (s ModifyInstanceSettings) MethodName() string { return MethodModifyInstance }

func (s ModifyInstanceSettings) Encode(w *writer.Writer, ns string) error {
	return ModifyInstance(w, s, ns)
}

// ModifyInstance writes a ModifyInstance call
func ModifyInstance(w *writer.Writer, s ModifyInstanceSettings, defaultNamespace string) error {
	if s.ModifiedInstance == nil {
		return required(MethodModifyInstance, "ModifiedInstance")
	}
	return intrinsic(w, MethodModifyInstance, s.Namespace, defaultNamespace, func() {
		w.StartIParamValue("ModifiedInstance")
		w.WriteNamedInstance(s.ModifiedInstance)
		w.EndElement()
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		propertyList(w, s.PropertyList)
	})
}

// EnumerateInstancesSettings are the parameters of EnumerateInstances
type EnumerateInstancesSettings struct {
	Namespace          string
	ClassName          cim.Name
	LocalOnly          cim.Bool
	DeepInheritance    cim.Bool
	IncludeQualifiers  cim.Bool
	IncludeClassOrigin cim.Bool
	PropertyList       []string
}

func (s EnumerateInstancesSettings) MethodName() string { return MethodEnumerateInstances }

func (s EnumerateInstancesSettings) Encode(w *writer.Writer, ns string) error {
	return EnumerateInstances(w, s, ns)
}

// EnumerateInstances writes an EnumerateInstances call
func EnumerateInstances(w *writer.Writer, s EnumerateInstancesSettings, defaultNamespace string) error {
	if !s.ClassName.IsSet() {
		return required(MethodEnumerateInstances, "ClassName")
	}
	return intrinsic(w, MethodEnumerateInstances, s.Namespace, defaultNamespace, func() {
		classNameParam(w, "ClassName", s.ClassName)
		boolParam(w, "LocalOnly", s.LocalOnly)
		boolParam(w, "DeepInheritance", s.DeepInheritance)
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		boolParam(w, "IncludeClassOrigin", s.IncludeClassOrigin)
		propertyList(w, s.PropertyList)
	})
}

// EnumerateInstanceNamesSettings are the parameters of EnumerateInstanceNames
type EnumerateInstanceNamesSettings struct {
	Namespace string
	ClassName cim.Name
}

func (s EnumerateInstanceNamesSettings) MethodName() string { return MethodEnumerateInstanceNames }

func (s EnumerateInstanceNamesSettings) Encode(w *writer.Writer, ns string) error {
	return EnumerateInstanceNames(w, s, ns)
}

// EnumerateInstanceNames writes an EnumerateInstanceNames call
func EnumerateInstanceNames(w *writer.Writer, s EnumerateInstanceNamesSettings, defaultNamespace string) error {
	if !s.ClassName.IsSet() {
		return required(MethodEnumerateInstanceNames, "ClassName")
	}
	return intrinsic(w, MethodEnumerateInstanceNames, s.Namespace, defaultNamespace, func() {
		classNameParam(w, "ClassName", s.ClassName)
	})
}

// GetPropertySettings are the parameters of GetProperty
type GetPropertySettings struct {
	Namespace    string
	InstanceName *cim.InstanceName
	PropertyName string
}

func (s GetPropertySettings) MethodName() string { return MethodGetProperty }

func (s GetPropertySettings) Encode(w *writer.Writer, ns string) error { return GetProperty(w, s, ns) }

// GetProperty writes a GetProperty call
func GetProperty(w *writer.Writer, s GetPropertySettings, defaultNamespace string) error {
	switch {
	case s.InstanceName == nil:
		return required(MethodGetProperty, "InstanceName")
	case s.PropertyName == "":
		return required(MethodGetProperty, "PropertyName")
	}
	return intrinsic(w, MethodGetProperty, s.Namespace, defaultNamespace, func() {
		instanceNameParam(w, "InstanceName", s.InstanceName)
		stringParam(w, "PropertyName", s.PropertyName)
	})
}

// SetPropertySettings are the parameters of SetProperty. NewValue is
// written from Reference when set, otherwise from Values; when both are
// nil the property is set to NULL.
type SetPropertySettings struct {
	Namespace    string
	InstanceName *cim.InstanceName
	PropertyName string
	Values       []string
	IsArray      bool
	Reference    *cim.ValueReference
}

func (s SetPropertySettings) MethodName() string { return MethodSetProperty }

func (s SetPropertySettings) Encode(w *writer.Writer, ns string) error { return SetProperty(w, s, ns) }

// SetProperty writes a SetProperty call
func SetProperty(w *writer.Writer, s SetPropertySettings, defaultNamespace string) error {
	switch {
	case s.InstanceName == nil:
		return required(MethodSetProperty, "InstanceName")
	case s.PropertyName == "":
		return required(MethodSetProperty, "PropertyName")
	}
	return intrinsic(w, MethodSetProperty, s.Namespace, defaultNamespace, func() {
		instanceNameParam(w, "InstanceName", s.InstanceName)
		stringParam(w, "PropertyName", s.PropertyName)
		if s.Reference == nil && s.Values == nil {
			return
		}
		w.StartIParamValue("NewValue")
		switch {
		case s.Reference != nil:
			w.WriteValueReference(s.Reference)
		case s.IsArray:
			w.WriteValueArray(s.Values)
		default:
			w.WriteValueList(s.Values)
		}
		w.EndElement()
	})
}
