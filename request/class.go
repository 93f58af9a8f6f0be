package request

import (
	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/writer"
)

// GetClassSettings are the parameters of GetClass
type GetClassSettings struct {
	Namespace          string
	ClassName          cim.Name
	LocalOnly          cim.Bool
	IncludeQualifiers  cim.Bool
	IncludeClassOrigin cim.Bool
	// PropertyList is omitted when nil
	PropertyList []string
}

func (s GetClassSettings) MethodName() string { return MethodGetClass }

func (s GetClassSettings) Encode(w *writer.Writer, ns string) error { return GetClass(w, s, ns) }

// GetClass writes a GetClass call
func GetClass(w *writer.Writer, s GetClassSettings, defaultNamespace string) error {
	if !s.ClassName.IsSet() {
		return required(MethodGetClass, "ClassName")
	}
	return intrinsic(w, MethodGetClass, s.Namespace, defaultNamespace, func() {
		classNameParam(w, "ClassName", s.ClassName)
		boolParam(w, "LocalOnly", s.LocalOnly)
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		boolParam(w, "IncludeClassOrigin", s.IncludeClassOrigin)
		propertyList(w, s.PropertyList)
	})
}

// DeleteClassSettings are the parameters of DeleteClass
type DeleteClassSettings struct {
	Namespace string
	ClassName cim.Name
}

func (s DeleteClassSettings) MethodName() string { return MethodDeleteClass }

func (s DeleteClassSettings) Encode(w *writer.Writer, ns string) error { return DeleteClass(w, s, ns) }

// DeleteClass writes a DeleteClass call
func DeleteClass(w *writer.Writer, s DeleteClassSettings, defaultNamespace string) error {
	if !s.ClassName.IsSet() {
		return required(MethodDeleteClass, "ClassName")
	}
	return intrinsic(w, MethodDeleteClass, s.Namespace, defaultNamespace, func() {
		classNameParam(w, "ClassName", s.ClassName)
	})
}

// CreateClassSettings are the parameters of CreateClass
type CreateClassSettings struct {
	Namespace string
	NewClass  *cim.Class
}

func (s CreateClassSettings) MethodName() string { return MethodCreateClass }

func (s CreateClassSettings) Encode(w *writer.Writer, ns string) error { return CreateClass(w, s, ns) }

// CreateClass writes a CreateClass call
func CreateClass(w *writer.Writer, s CreateClassSettings, defaultNamespace string) error {
	if s.NewClass == nil {
		return required(MethodCreateClass, "NewClass")
	}
	return intrinsic(w, MethodCreateClass, s.Namespace, defaultNamespace, func() {
		w.StartIParamValue("NewClass")
		w.WriteClass(s.NewClass)
		w.EndElement()
	})
}

// ModifyClassSettings are the parameters of ModifyClass
type ModifyClassSettings struct {
	Namespace     string
	ModifiedClass *cim.Class
}

func (s ModifyClassSettings) MethodName() string { return MethodModifyClass }

func (s ModifyClassSettings) Encode(w *writer.Writer, ns string) error { return ModifyClass(w, s, ns) }

// ModifyClass writes a ModifyClass call
func ModifyClass(w *writer.Writer, s ModifyClassSettings, defaultNamespace string) error {
	if s.ModifiedClass == nil {
		return required(MethodModifyClass, "ModifiedClass")
	}
	return intrinsic(w, MethodModifyClass, s.Namespace, defaultNamespace, func() {
		w.StartIParamValue("ModifiedClass")
		w.WriteClass(s.ModifiedClass)
		w.EndElement()
	})
}

// EnumerateClassesSettings are the parameters of EnumerateClasses. An
// unset ClassName enumerates from the top of the hierarchy.
type EnumerateClassesSettings struct {
	Namespace          string
	ClassName          cim.Name
	DeepInheritance    cim.Bool
	LocalOnly          cim.Bool
	IncludeQualifiers  cim.Bool
	IncludeClassOrigin cim.Bool
}

func (s EnumerateClassesSettings) MethodName() string { return MethodEnumerateClasses }

func (s EnumerateClassesSettings) Encode(w *writer.Writer, ns string) error {
	return EnumerateClasses(w, s, ns)
}

// EnumerateClasses writes an EnumerateClasses call
func EnumerateClasses(w *writer.Writer, s EnumerateClassesSettings, defaultNamespace string) error {
	return intrinsic(w, MethodEnumerateClasses, s.Namespace, defaultNamespace, func() {
		optClassNameParam(w, "ClassName", s.ClassName)
		boolParam(w, "DeepInheritance", s.DeepInheritance)
		boolParam(w, "LocalOnly", s.LocalOnly)
		boolParam(w, "IncludeQualifiers", s.IncludeQualifiers)
		boolParam(w, "IncludeClassOrigin", s.IncludeClassOrigin)
	})
}

// EnumerateClassNamesSettings are the parameters of EnumerateClassNames
type EnumerateClassNamesSettings struct {
	Namespace       string
	ClassName       cim.Name
	DeepInheritance cim.Bool
}

func (s EnumerateClassNamesSettings) MethodName() string { return MethodEnumerateClassNames }

func (s EnumerateClassNamesSettings) Encode(w *writer.Writer, ns string) error {
	return EnumerateClassNames(w, s, ns)
}

// EnumerateClassNames writes an EnumerateClassNames call
func EnumerateClassNames(w *writer.Writer, s EnumerateClassNamesSettings, defaultNamespace string) error {
	return intrinsic(w, MethodEnumerateClassNames, s.Namespace, defaultNamespace, func() {
		optClassNameParam(w, "ClassName", s.ClassName)
		boolParam(w, "DeepInheritance", s.DeepInheritance)
	})
}
