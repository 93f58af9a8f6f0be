package request

import (
	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/writer"
)

// GetQualifierSettings are the parameters of GetQualifier
type GetQualifierSettings struct {
	Namespace     string
	QualifierName cim.Name
}

func (s GetQualifierSettings) MethodName() string { return MethodGetQualifier }

func (s GetQualifierSettings) Encode(w *writer.Writer, ns string) error { return GetQualifier(w, s, ns) }

// GetQualifier writes a GetQualifier call
func GetQualifier(w *writer.Writer, s GetQualifierSettings, defaultNamespace string) error {
	if !s.QualifierName.IsSet() {
		return required(MethodGetQualifier, "QualifierName")
	}
	return intrinsic(w, MethodGetQualifier, s.Namespace, defaultNamespace, func() {
		stringParam(w, "QualifierName", s.QualifierName.String())
	})
}

// SetQualifierSettings are the parameters of SetQualifier
type SetQualifierSettings struct {
	Namespace            string
	QualifierDeclaration *cim.QualifierDeclaration
}

func (s SetQualifierSettings) MethodName() string { return MethodSetQualifier }

func (s SetQualifierSettings) Encode(w *writer.Writer, ns string) error { return SetQualifier(w, s, ns) }

// SetQualifier writes a SetQualifier call
func SetQualifier(w *writer.Writer, s SetQualifierSettings, defaultNamespace string) error {
	if s.QualifierDeclaration == nil {
		return required(MethodSetQualifier, "QualifierDeclaration")
	}
	return intrinsic(w, MethodSetQualifier, s.Namespace, defaultNamespace, func() {
		w.StartIParamValue("QualifierDeclaration")
		w.WriteQualifierDeclaration(s.QualifierDeclaration)
		w.EndElement()
	})
}

// DeleteQualifierSettings are the parameters of DeleteQualifier
type DeleteQualifierSettings struct {
	Namespace     string
	QualifierName cim.Name
}

func (s DeleteQualifierSettings) MethodName() string { return MethodDeleteQualifier }

func (s DeleteQualifierSettings) Encode(w *writer.Writer, ns string) error {
	return DeleteQualifier(w, s, ns)
}

// DeleteQualifier writes a DeleteQualifier call
func DeleteQualifier(w *writer.Writer, s DeleteQualifierSettings, defaultNamespace string) error {
	if !s.QualifierName.IsSet() {
		return required(MethodDeleteQualifier, "QualifierName")
	}
	return intrinsic(w, MethodDeleteQualifier, s.Namespace, defaultNamespace, func() {
		stringParam(w, "QualifierName", s.QualifierName.String())
	})
}

// EnumerateQualifiersSettings are the parameters of EnumerateQualifiers
type EnumerateQualifiersSettings struct {
	Namespace string
}

func (s EnumerateQualifiersSettings) MethodName() string { return MethodEnumerateQualifiers }

func (s EnumerateQualifiersSettings) Encode(w *writer.Writer, ns string) error {
	return EnumerateQualifiers(w, s, ns)
}

// EnumerateQualifiers writes an EnumerateQualifiers call
func EnumerateQualifiers(w *writer.Writer, s EnumerateQualifiersSettings, defaultNamespace string) error {
	return intrinsic(w, MethodEnumerateQualifiers, s.Namespace, defaultNamespace, func() {})
}
