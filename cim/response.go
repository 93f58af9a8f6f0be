package cim

import (
	"fmt"
	"strconv"
)

// CimomError is an ERROR returned by the CIM server. It is a successfully
// decoded payload, not a codec failure.
type CimomError struct {
	Code        string
	Description string
	Instances   []*Instance
}

// StatusCode returns the numeric CIM status code
func (e *CimomError) StatusCode() StatusCode {
	v, err := strconv.Atoi(e.Code)
	if err != nil {
		return StatusUnknown
	}
	return StatusCode(v)
}

func (e *CimomError) String() string {
	s := fmt.Sprintf("%s (%s)", e.StatusCode(), e.Code)
	if e.Description != "" {
		s += ": " + e.Description
	}
	return s
}

// StatusCode is a CIM_ERR status code
type StatusCode int

const (
	StatusUnknown                   StatusCode = 0
	StatusFailed                    StatusCode = 1
	StatusAccessDenied              StatusCode = 2
	StatusInvalidNamespace          StatusCode = 3
	StatusInvalidParameter          StatusCode = 4
	StatusInvalidClass              StatusCode = 5
	StatusNotFound                  StatusCode = 6
	StatusNotSupported              StatusCode = 7
	StatusClassHasChildren          StatusCode = 8
	StatusClassHasInstances         StatusCode = 9
	StatusInvalidSuperclass         StatusCode = 10
	StatusAlreadyExists             StatusCode = 11
	StatusNoSuchProperty            StatusCode = 12
	StatusTypeMismatch              StatusCode = 13
	StatusQueryLanguageNotSupported StatusCode = 14
	StatusInvalidQuery              StatusCode = 15
	StatusMethodNotAvailable        StatusCode = 16
	StatusMethodNotFound            StatusCode = 17
)

var statusNames = map[StatusCode]string{
	StatusFailed:                    "CIM_ERR_FAILED",
	StatusAccessDenied:              "CIM_ERR_ACCESS_DENIED",
	StatusInvalidNamespace:          "CIM_ERR_INVALID_NAMESPACE",
	StatusInvalidParameter:          "CIM_ERR_INVALID_PARAMETER",
	StatusInvalidClass:              "CIM_ERR_INVALID_CLASS",
	StatusNotFound:                  "CIM_ERR_NOT_FOUND",
	StatusNotSupported:              "CIM_ERR_NOT_SUPPORTED",
	StatusClassHasChildren:          "CIM_ERR_CLASS_HAS_CHILDREN",
	StatusClassHasInstances:         "CIM_ERR_CLASS_HAS_INSTANCES",
	StatusInvalidSuperclass:         "CIM_ERR_INVALID_SUPERCLASS",
	StatusAlreadyExists:             "CIM_ERR_ALREADY_EXISTS",
	StatusNoSuchProperty:            "CIM_ERR_NO_SUCH_PROPERTY",
	StatusTypeMismatch:              "CIM_ERR_TYPE_MISMATCH",
	StatusQueryLanguageNotSupported: "CIM_ERR_QUERY_LANGUAGE_NOT_SUPPORTED",
	StatusInvalidQuery:              "CIM_ERR_INVALID_QUERY",
	StatusMethodNotAvailable:        "CIM_ERR_METHOD_NOT_AVAILABLE",
	StatusMethodNotFound:            "CIM_ERR_METHOD_NOT_FOUND",
}

func (c StatusCode) String() string {
	if s, ok := statusNames[c]; ok {
		return s
	}
	return fmt.Sprintf("StatusCode(%d)", int(c))
}

// MethodResponse is the result of an extrinsic method call
type MethodResponse struct {
	Name        Name
	ReturnValue *ReturnValue
	ParamValues []ParamValue
}

// ReturnValue is a RETURNVALUE. Reference is set instead of Value when
// the method returns a reference.
type ReturnValue struct {
	ParamType Type
	Value     Value
	Reference *ValueReference
}

// ParamValue is a PARAMVALUE, used both for method input parameters and
// output parameters.
type ParamValue struct {
	Name      Name
	ParamType Type
	Values    []string
	IsArray   bool
	Reference *ValueReference
}

// ParamValue returns the named output parameter
func (r *MethodResponse) ParamValue(name string) (ParamValue, bool) {
	for _, pv := range r.ParamValues {
		if pv.Name.EqualString(name) {
			return pv, true
		}
	}
	return ParamValue{}, false
}
