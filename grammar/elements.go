// Element Start/End pairs must stay adjacent: every End is its Start + 1.

package grammar

const (
	// declaration elements
	CIMStart ElementType = iota + firstElement
	CIMEnd
	DeclarationStart
	DeclarationEnd
	DeclGroupStart
	DeclGroupEnd
	DeclGroupWithNameStart
	DeclGroupWithNameEnd
	DeclGroupWithPathStart
	DeclGroupWithPathEnd
	QualifierDeclarationStart
	QualifierDeclarationEnd
	ScopeStart
	ScopeEnd

	// value elements
	ValueStart
	ValueEnd
	ValueArrayStart
	ValueArrayEnd
	ValueReferenceStart
	ValueReferenceEnd
	ValueRefArrayStart
	ValueRefArrayEnd
	ValueObjectStart
	ValueObjectEnd
	ValueNamedInstanceStart
	ValueNamedInstanceEnd
	ValueNamedObjectStart
	ValueNamedObjectEnd
	ValueObjectWithLocalPathStart
	ValueObjectWithLocalPathEnd
	ValueObjectWithPathStart
	ValueObjectWithPathEnd
	ValueNullStart
	ValueNullEnd
	ValueInstanceWithPathStart
	ValueInstanceWithPathEnd

	// naming and location elements
	NamespacePathStart
	NamespacePathEnd
	LocalNamespacePathStart
	LocalNamespacePathEnd
	HostStart
	HostEnd
	NamespaceStart
	NamespaceEnd
	ClassPathStart
	ClassPathEnd
	LocalClassPathStart
	LocalClassPathEnd
	ClassNameStart
	ClassNameEnd
	InstancePathStart
	InstancePathEnd
	LocalInstancePathStart
	LocalInstancePathEnd
	InstanceNameStart
	InstanceNameEnd
	ObjectPathStart
	ObjectPathEnd
	KeyBindingStart
	KeyBindingEnd
	KeyValueStart
	KeyValueEnd

	// object definition elements
	ClassStart
	ClassEnd
	InstanceStart
	InstanceEnd
	QualifierStart
	QualifierEnd
	PropertyStart
	PropertyEnd
	PropertyArrayStart
	PropertyArrayEnd
	PropertyReferenceStart
	PropertyReferenceEnd
	MethodStart
	MethodEnd
	ParameterStart
	ParameterEnd
	ParameterReferenceStart
	ParameterReferenceEnd
	ParameterArrayStart
	ParameterArrayEnd
	ParameterRefArrayStart
	ParameterRefArrayEnd
	TableCellDeclarationStart
	TableCellDeclarationEnd
	TableCellReferenceStart
	TableCellReferenceEnd
	TableRowDeclarationStart
	TableRowDeclarationEnd
	TableStart
	TableEnd
	TableRowStart
	TableRowEnd

	// message elements
	MessageStart
	MessageEnd
	MultiReqStart
	MultiReqEnd
	MultiExpReqStart
	MultiExpReqEnd
	SimpleReqStart
	SimpleReqEnd
	SimpleExpReqStart
	SimpleExpReqEnd
	IMethodCallStart
	IMethodCallEnd
	MethodCallStart
	MethodCallEnd
	ExpMethodCallStart
	ExpMethodCallEnd
	ParamValueStart
	ParamValueEnd
	IParamValueStart
	IParamValueEnd
	ExpParamValueStart
	ExpParamValueEnd
	MultiRspStart
	MultiRspEnd
	MultiExpRspStart
	MultiExpRspEnd
	SimpleRspStart
	SimpleRspEnd
	SimpleExpRspStart
	SimpleExpRspEnd
	MethodResponseStart
	MethodResponseEnd
	ExpMethodResponseStart
	ExpMethodResponseEnd
	IMethodResponseStart
	IMethodResponseEnd
	ErrorStart
	ErrorEnd
	ReturnValueStart
	ReturnValueEnd
	IReturnValueStart
	IReturnValueEnd
	ResponseDestinationStart
	ResponseDestinationEnd
	SimpleReqAckStart
	SimpleReqAckEnd
	CorrelatorStart
	CorrelatorEnd
)

// elementTags is the single table of CIM-XML element names, keyed by start type.
var elementTags = map[ElementType]string{
	CIMStart:                      "CIM",
	DeclarationStart:              "DECLARATION",
	DeclGroupStart:                "DECLGROUP",
	DeclGroupWithNameStart:        "DECLGROUP.WITHNAME",
	DeclGroupWithPathStart:        "DECLGROUP.WITHPATH",
	QualifierDeclarationStart:     "QUALIFIER.DECLARATION",
	ScopeStart:                    "SCOPE",
	ValueStart:                    "VALUE",
	ValueArrayStart:               "VALUE.ARRAY",
	ValueReferenceStart:           "VALUE.REFERENCE",
	ValueRefArrayStart:            "VALUE.REFARRAY",
	ValueObjectStart:              "VALUE.OBJECT",
	ValueNamedInstanceStart:       "VALUE.NAMEDINSTANCE",
	ValueNamedObjectStart:         "VALUE.NAMEDOBJECT",
	ValueObjectWithLocalPathStart: "VALUE.OBJECTWITHLOCALPATH",
	ValueObjectWithPathStart:      "VALUE.OBJECTWITHPATH",
	ValueNullStart:                "VALUE.NULL",
	ValueInstanceWithPathStart:    "VALUE.INSTANCEWITHPATH",
	NamespacePathStart:            "NAMESPACEPATH",
	LocalNamespacePathStart:       "LOCALNAMESPACEPATH",
	HostStart:                     "HOST",
	NamespaceStart:                "NAMESPACE",
	ClassPathStart:                "CLASSPATH",
	LocalClassPathStart:           "LOCALCLASSPATH",
	ClassNameStart:                "CLASSNAME",
	InstancePathStart:             "INSTANCEPATH",
	LocalInstancePathStart:        "LOCALINSTANCEPATH",
	InstanceNameStart:             "INSTANCENAME",
	ObjectPathStart:               "OBJECTPATH",
	KeyBindingStart:               "KEYBINDING",
	KeyValueStart:                 "KEYVALUE",
	ClassStart:                    "CLASS",
	InstanceStart:                 "INSTANCE",
	QualifierStart:                "QUALIFIER",
	PropertyStart:                 "PROPERTY",
	PropertyArrayStart:            "PROPERTY.ARRAY",
	PropertyReferenceStart:        "PROPERTY.REFERENCE",
	MethodStart:                   "METHOD",
	ParameterStart:                "PARAMETER",
	ParameterReferenceStart:       "PARAMETER.REFERENCE",
	ParameterArrayStart:           "PARAMETER.ARRAY",
	ParameterRefArrayStart:        "PARAMETER.REFARRAY",
	TableCellDeclarationStart:     "TABLECELL.DECLARATION",
	TableCellReferenceStart:       "TABLECELL.REFERENCE",
	TableRowDeclarationStart:      "TABLEROW.DECLARATION",
	TableStart:                    "TABLE",
	TableRowStart:                 "TABLEROW",
	MessageStart:                  "MESSAGE",
	MultiReqStart:                 "MULTIREQ",
	MultiExpReqStart:              "MULTIEXPREQ",
	SimpleReqStart:                "SIMPLEREQ",
	SimpleExpReqStart:             "SIMPLEEXPREQ",
	IMethodCallStart:              "IMETHODCALL",
	MethodCallStart:               "METHODCALL",
	ExpMethodCallStart:            "EXPMETHODCALL",
	ParamValueStart:               "PARAMVALUE",
	IParamValueStart:              "IPARAMVALUE",
	ExpParamValueStart:            "EXPPARAMVALUE",
	MultiRspStart:                 "MULTIRSP",
	MultiExpRspStart:              "MULTIEXPRSP",
	SimpleRspStart:                "SIMPLERSP",
	SimpleExpRspStart:             "SIMPLEEXPRSP",
	MethodResponseStart:           "METHODRESPONSE",
	ExpMethodResponseStart:        "EXPMETHODRESPONSE",
	IMethodResponseStart:          "IMETHODRESPONSE",
	ErrorStart:                    "ERROR",
	ReturnValueStart:              "RETURNVALUE",
	IReturnValueStart:             "IRETURNVALUE",
	ResponseDestinationStart:      "RESPONSEDESTINATION",
	SimpleReqAckStart:             "SIMPLEREQACK",
	CorrelatorStart:               "CORRELATOR",
}
