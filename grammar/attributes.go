package grammar

import "strings"

// Attribute is a CIM-XML attribute name
type Attribute int

const (
	AttrUnknown Attribute = iota
	AttrCIMVersion
	AttrDTDVersion
	AttrID
	AttrProtocolVersion
	AttrName
	AttrType
	AttrParamType
	AttrClassName
	AttrClassOrigin
	AttrSuperClass
	AttrReferenceClass
	AttrPropagated
	AttrArraySize
	AttrIsArray
	AttrOverridable
	AttrToSubclass
	AttrToInstance
	AttrTranslatable
	AttrValueType
	AttrEmbeddedObject
	AttrCode
	AttrDescription
	AttrClass
	AttrAssociation
	AttrReference
	AttrProperty
	AttrMethod
	AttrParameter
	AttrIndication
)

var attributeNames = [...]string{
	AttrUnknown:         "",
	AttrCIMVersion:      "CIMVERSION",
	AttrDTDVersion:      "DTDVERSION",
	AttrID:              "ID",
	AttrProtocolVersion: "PROTOCOLVERSION",
	AttrName:            "NAME",
	AttrType:            "TYPE",
	AttrParamType:       "PARAMTYPE",
	AttrClassName:       "CLASSNAME",
	AttrClassOrigin:     "CLASSORIGIN",
	AttrSuperClass:      "SUPERCLASS",
	AttrReferenceClass:  "REFERENCECLASS",
	AttrPropagated:      "PROPAGATED",
	AttrArraySize:       "ARRAYSIZE",
	AttrIsArray:         "ISARRAY",
	AttrOverridable:     "OVERRIDABLE",
	AttrToSubclass:      "TOSUBCLASS",
	AttrToInstance:      "TOINSTANCE",
	AttrTranslatable:    "TRANSLATABLE",
	AttrValueType:       "VALUETYPE",
	AttrEmbeddedObject:  "EMBEDDEDOBJECT",
	AttrCode:            "CODE",
	AttrDescription:     "DESCRIPTION",
	AttrClass:           "CLASS",
	AttrAssociation:     "ASSOCIATION",
	AttrReference:       "REFERENCE",
	AttrProperty:        "PROPERTY",
	AttrMethod:          "METHOD",
	AttrParameter:       "PARAMETER",
	AttrIndication:      "INDICATION",
}

var attrByName = func() map[string]Attribute {
	m := make(map[string]Attribute, len(attributeNames))
	for i, n := range attributeNames {
		if i != int(AttrUnknown) {
			m[strings.ToLower(n)] = Attribute(i)
		}
	}
	return m
}()

// ClassifyAttr returns the Attribute for name, ignoring case, or AttrUnknown.
func ClassifyAttr(name string) Attribute { return attrByName[strings.ToLower(name)] }

// Tag returns the attribute's wire name
func (a Attribute) Tag() string {
	if a > AttrUnknown && int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return ""
}

func (a Attribute) String() string {
	if s := a.Tag(); s != "" {
		return s
	}
	return "unknown"
}
