package request

import (
	"strings"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/writer"
)

type fixedSequence uint64

func (s fixedSequence) Next() uint64 { return uint64(s) }

func build(t *testing.T, ops ...Operation) *xmlquery.Node {
	t.Helper()
	_, text, err := Text("root/cimv2", ops, writer.WithSequence(fixedSequence(1)))
	require.NoError(t, err)
	doc, err := xmlquery.Parse(strings.NewReader(text))
	require.NoError(t, err)
	return doc
}

// children returns the element children of n as "TAG" or "TAG:NAME"
func children(n *xmlquery.Node) []string {
	var out []string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		s := c.Data
		if name := c.SelectAttr("NAME"); name != "" {
			s += ":" + name
		}
		out = append(out, s)
	}
	return out
}

func TestGetClass(t *testing.T) {
	check := assert.New(t)
	doc := build(t, GetClassSettings{ClassName: cim.NewName("CIM_X"), IncludeQualifiers: cim.BoolTrue})

	call := xmlquery.FindOne(doc, "/CIM/MESSAGE/SIMPLEREQ/IMETHODCALL")
	require.NotNil(t, call)
	check.Equal("GetClass", call.SelectAttr("NAME"))
	check.Equal([]string{
		"LOCALNAMESPACEPATH",
		"IPARAMVALUE:ClassName",
		"IPARAMVALUE:IncludeQualifiers",
	}, children(call))
	check.Equal([]string{"NAMESPACE:root", "NAMESPACE:cimv2"}, children(xmlquery.FindOne(call, "LOCALNAMESPACEPATH")))
	check.Equal("CIM_X", xmlquery.FindOne(call, "IPARAMVALUE[@NAME='ClassName']/CLASSNAME").SelectAttr("NAME"))
	check.Equal("true", xmlquery.FindOne(call, "IPARAMVALUE[@NAME='IncludeQualifiers']/VALUE").InnerText())
	check.Nil(xmlquery.FindOne(doc, "//MULTIREQ"))
}

func TestBatch(t *testing.T) {
	for _, tc := range []struct {
		name  string
		ops   []Operation
		multi bool
	}{
		{
			name:  "single",
			ops:   []Operation{EnumerateQualifiersSettings{}},
			multi: false,
		},
		{
			name: "two",
			ops: []Operation{
				EnumerateClassNamesSettings{DeepInheritance: cim.BoolTrue},
				EnumerateQualifiersSettings{Namespace: "interop"},
			},
			multi: true,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			doc := build(t, tc.ops...)
			check.Equal(tc.multi, xmlquery.FindOne(doc, "/CIM/MESSAGE/MULTIREQ") != nil)
			calls := xmlquery.Find(doc, "//SIMPLEREQ/IMETHODCALL")
			require.Len(t, calls, len(tc.ops))
			for i, op := range tc.ops {
				check.Equal(op.MethodName(), calls[i].SelectAttr("NAME"))
			}
		})
	}

	doc := build(t, EnumerateClassNamesSettings{}, EnumerateQualifiersSettings{Namespace: "interop"})
	assert.Equal(t, "interop", xmlquery.FindOne(doc, "//SIMPLEREQ[2]/IMETHODCALL/LOCALNAMESPACEPATH/NAMESPACE").SelectAttr("NAME"))

	_, _, err := Text("root", nil)
	assert.True(t, cimerr.Is(err, cimerr.KindMalformedSequence))
}

func TestParameterOrder(t *testing.T) {
	inst := &cim.InstanceName{
		ClassName: cim.NewName("CIM_Foo"),
		KeyBindings: []cim.KeyBinding{
			{Name: cim.NewName("Id"), Value: &cim.KeyValue{ValueType: cim.ValueTypeString, Value: "1"}},
		},
	}
	for _, tc := range []struct {
		op   Operation
		want []string
	}{
		{
			op:   GetClassSettings{ClassName: cim.NewName("A")},
			want: []string{"ClassName"},
		},
		{
			op: GetClassSettings{
				ClassName: cim.NewName("A"), LocalOnly: cim.BoolFalse, IncludeQualifiers: cim.BoolTrue,
				IncludeClassOrigin: cim.BoolTrue, PropertyList: []string{"P"},
			},
			want: []string{"ClassName", "LocalOnly", "IncludeQualifiers", "IncludeClassOrigin", "PropertyList"},
		},
		{
			op:   GetInstanceSettings{InstanceName: inst, PropertyList: []string{}},
			want: []string{"InstanceName", "PropertyList"},
		},
		{
			op:   DeleteClassSettings{ClassName: cim.NewName("A")},
			want: []string{"ClassName"},
		},
		{
			op:   DeleteInstanceSettings{InstanceName: inst},
			want: []string{"InstanceName"},
		},
		{
			op:   CreateClassSettings{NewClass: &cim.Class{Name: cim.NewName("A")}},
			want: []string{"NewClass"},
		},
		{
			op:   ModifyClassSettings{ModifiedClass: &cim.Class{Name: cim.NewName("A")}},
			want: []string{"ModifiedClass"},
		},
		{
			op:   CreateInstanceSettings{NewInstance: &cim.Instance{ClassName: cim.NewName("A")}},
			want: []string{"NewInstance"},
		},
		{
			op: ModifyInstanceSettings{
				ModifiedInstance:  &cim.Instance{ClassName: cim.NewName("CIM_Foo"), InstanceName: inst},
				IncludeQualifiers: cim.BoolFalse,
			},
			want: []string{"ModifiedInstance", "IncludeQualifiers"},
		},
		{
			op: EnumerateClassesSettings{
				ClassName: cim.NewName("A"), DeepInheritance: cim.BoolTrue, LocalOnly: cim.BoolTrue,
				IncludeQualifiers: cim.BoolTrue, IncludeClassOrigin: cim.BoolFalse,
			},
			want: []string{"ClassName", "DeepInheritance", "LocalOnly", "IncludeQualifiers", "IncludeClassOrigin"},
		},
		{
			op:   EnumerateClassNamesSettings{},
			want: nil,
		},
		{
			op: EnumerateInstancesSettings{
				ClassName: cim.NewName("A"), LocalOnly: cim.BoolTrue, DeepInheritance: cim.BoolTrue,
				IncludeQualifiers: cim.BoolTrue, IncludeClassOrigin: cim.BoolTrue, PropertyList: []string{"X", "Y"},
			},
			want: []string{"ClassName", "LocalOnly", "DeepInheritance", "IncludeQualifiers", "IncludeClassOrigin", "PropertyList"},
		},
		{
			op:   EnumerateInstanceNamesSettings{ClassName: cim.NewName("A")},
			want: []string{"ClassName"},
		},
		{
			op:   GetPropertySettings{InstanceName: inst, PropertyName: "P"},
			want: []string{"InstanceName", "PropertyName"},
		},
		{
			op:   SetPropertySettings{InstanceName: inst, PropertyName: "P", Values: []string{"1"}},
			want: []string{"InstanceName", "PropertyName", "NewValue"},
		},
		{
			op:   SetPropertySettings{InstanceName: inst, PropertyName: "P"},
			want: []string{"InstanceName", "PropertyName"},
		},
		{
			op:   GetQualifierSettings{QualifierName: cim.NewName("Key")},
			want: []string{"QualifierName"},
		},
		{
			op:   SetQualifierSettings{QualifierDeclaration: &cim.QualifierDeclaration{Name: cim.NewName("Key"), Type: cim.TypeBoolean}},
			want: []string{"QualifierDeclaration"},
		},
		{
			op:   DeleteQualifierSettings{QualifierName: cim.NewName("Key")},
			want: []string{"QualifierName"},
		},
		{
			op:   ExecQuerySettings{QueryLanguage: "WQL", Query: "SELECT * FROM A"},
			want: []string{"QueryLanguage", "Query"},
		},
		{
			op: AssociatorsSettings{
				ObjectName: inst, AssocClass: cim.NewName("Assoc"), ResultClass: cim.NewName("R"),
				Role: "Antecedent", ResultRole: "Dependent", IncludeQualifiers: cim.BoolTrue,
				IncludeClassOrigin: cim.BoolTrue, PropertyList: []string{"Name"},
			},
			want: []string{"ObjectName", "AssocClass", "ResultClass", "Role", "ResultRole", "IncludeQualifiers", "IncludeClassOrigin", "PropertyList"},
		},
		{
			op:   AssociatorNamesSettings{ObjectName: cim.NewName("A"), ResultRole: "Dependent"},
			want: []string{"ObjectName", "ResultRole"},
		},
		{
			op:   ReferencesSettings{ObjectName: inst, ResultClass: cim.NewName("R"), Role: "Antecedent", PropertyList: []string{}},
			want: []string{"ObjectName", "ResultClass", "Role", "PropertyList"},
		},
		{
			op:   ReferenceNamesSettings{ObjectName: cim.NewName("A"), Role: "Antecedent"},
			want: []string{"ObjectName", "Role"},
		},
	} {
		t.Run(tc.op.MethodName(), func(t *testing.T) {
			doc := build(t, tc.op)
			var got []string
			for _, n := range xmlquery.Find(doc, "//IMETHODCALL/IPARAMVALUE") {
				got = append(got, n.SelectAttr("NAME"))
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParameterContent(t *testing.T) {
	check := assert.New(t)
	inst := &cim.InstanceName{ClassName: cim.NewName("CIM_Foo")}

	doc := build(t, SetPropertySettings{InstanceName: inst, PropertyName: "P", Values: []string{"a", "b"}})
	check.Len(xmlquery.Find(doc, "//IPARAMVALUE[@NAME='NewValue']/VALUE.ARRAY/VALUE"), 2)

	doc = build(t, SetPropertySettings{InstanceName: inst, PropertyName: "P", Values: []string{"a"}, IsArray: true})
	check.Len(xmlquery.Find(doc, "//IPARAMVALUE[@NAME='NewValue']/VALUE.ARRAY/VALUE"), 1)

	doc = build(t, SetPropertySettings{
		InstanceName: inst, PropertyName: "P",
		Reference: &cim.ValueReference{Kind: cim.ReferenceInstanceName, InstanceName: inst},
	})
	check.NotNil(xmlquery.FindOne(doc, "//IPARAMVALUE[@NAME='NewValue']/VALUE.REFERENCE/INSTANCENAME[@CLASSNAME='CIM_Foo']"))

	doc = build(t, GetClassSettings{ClassName: cim.NewName("A"), PropertyList: []string{}})
	list := xmlquery.FindOne(doc, "//IPARAMVALUE[@NAME='PropertyList']/VALUE.ARRAY")
	require.NotNil(t, list)
	check.Nil(list.FirstChild)

	doc = build(t, AssociatorNamesSettings{ObjectName: inst})
	check.NotNil(xmlquery.FindOne(doc, "//IPARAMVALUE[@NAME='ObjectName']/INSTANCENAME[@CLASSNAME='CIM_Foo']"))

	doc = build(t, GetQualifierSettings{Namespace: "interop", QualifierName: cim.NewName("Key")})
	check.Equal("Key", xmlquery.FindOne(doc, "//IPARAMVALUE[@NAME='QualifierName']/VALUE").InnerText())
	check.Equal("interop", xmlquery.FindOne(doc, "//LOCALNAMESPACEPATH/NAMESPACE").SelectAttr("NAME"))
}

func TestInvokeMethod(t *testing.T) {
	params := []cim.ParamValue{
		{Name: cim.NewName("Force"), ParamType: cim.TypeBoolean, Values: []string{"true"}},
		{Name: cim.NewName("Codes"), ParamType: cim.TypeUint8, Values: []string{"1", "2"}},
		{Name: cim.NewName("Empty")},
	}

	t.Run("static", func(t *testing.T) {
		check := assert.New(t)
		doc := build(t, InvokeMethodSettings{
			Method: "Reset", Target: TargetStatic, ClassName: cim.NewName("CIM_Foo"), Parameters: params,
		})
		call := xmlquery.FindOne(doc, "/CIM/MESSAGE/SIMPLEREQ/METHODCALL")
		require.NotNil(t, call)
		check.Equal("Reset", call.SelectAttr("NAME"))
		check.Equal([]string{"LOCALCLASSPATH", "PARAMVALUE:Force", "PARAMVALUE:Codes", "PARAMVALUE:Empty"}, children(call))
		check.Equal("CIM_Foo", xmlquery.FindOne(call, "LOCALCLASSPATH/CLASSNAME").SelectAttr("NAME"))
		check.Equal("boolean", xmlquery.FindOne(call, "PARAMVALUE[@NAME='Force']").SelectAttr("PARAMTYPE"))
		check.Equal("true", xmlquery.FindOne(call, "PARAMVALUE[@NAME='Force']/VALUE").InnerText())
		check.Len(xmlquery.Find(call, "PARAMVALUE[@NAME='Codes']/VALUE.ARRAY/VALUE"), 2)
		check.Equal("", xmlquery.FindOne(call, "PARAMVALUE[@NAME='Empty']/VALUE").InnerText())
	})

	t.Run("instance", func(t *testing.T) {
		check := assert.New(t)
		doc := build(t, InvokeMethodSettings{
			Namespace: "root/interop",
			Method:    "RequestStateChange",
			Target:    TargetInstance,
			InstanceName: &cim.InstanceName{
				ClassName:   cim.NewName("CIM_Foo"),
				KeyBindings: []cim.KeyBinding{{Name: cim.NewName("Id"), Value: &cim.KeyValue{Value: "7"}}},
			},
		})
		call := xmlquery.FindOne(doc, "//METHODCALL")
		require.NotNil(t, call)
		check.Equal([]string{"LOCALINSTANCEPATH"}, children(call))
		check.Len(xmlquery.Find(call, "LOCALINSTANCEPATH/LOCALNAMESPACEPATH/NAMESPACE"), 2)
		check.Equal("7", xmlquery.FindOne(call, "LOCALINSTANCEPATH/INSTANCENAME/KEYBINDING[@NAME='Id']/KEYVALUE").InnerText())
	})
}

func TestRequired(t *testing.T) {
	for _, tc := range []struct {
		name string
		op   Operation
	}{
		{name: "GetClass", op: GetClassSettings{}},
		{name: "GetInstance", op: GetInstanceSettings{}},
		{name: "DeleteClass", op: DeleteClassSettings{}},
		{name: "DeleteInstance", op: DeleteInstanceSettings{}},
		{name: "CreateClass", op: CreateClassSettings{}},
		{name: "ModifyClass", op: ModifyClassSettings{}},
		{name: "CreateInstance", op: CreateInstanceSettings{}},
		{name: "ModifyInstance", op: ModifyInstanceSettings{}},
		{name: "ModifyInstance without name", op: ModifyInstanceSettings{ModifiedInstance: &cim.Instance{ClassName: cim.NewName("A")}}},
		{name: "EnumerateInstances", op: EnumerateInstancesSettings{}},
		{name: "EnumerateInstanceNames", op: EnumerateInstanceNamesSettings{}},
		{name: "GetProperty", op: GetPropertySettings{InstanceName: &cim.InstanceName{ClassName: cim.NewName("A")}}},
		{name: "SetProperty", op: SetPropertySettings{PropertyName: "P"}},
		{name: "GetQualifier", op: GetQualifierSettings{}},
		{name: "SetQualifier", op: SetQualifierSettings{}},
		{name: "DeleteQualifier", op: DeleteQualifierSettings{}},
		{name: "ExecQuery", op: ExecQuerySettings{Query: "SELECT * FROM A"}},
		{name: "Associators", op: AssociatorsSettings{}},
		{name: "AssociatorNames", op: AssociatorNamesSettings{}},
		{name: "References", op: ReferencesSettings{}},
		{name: "ReferenceNames", op: ReferenceNamesSettings{ObjectName: cim.Name{}}},
		{name: "InvokeMethod", op: InvokeMethodSettings{ClassName: cim.NewName("A")}},
		{name: "InvokeMethod static", op: InvokeMethodSettings{Method: "M"}},
		{name: "InvokeMethod instance", op: InvokeMethodSettings{Method: "M", Target: TargetInstance}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, text, err := Text("root", []Operation{tc.op})
			assert.Empty(t, text)
			assert.True(t, cimerr.Is(err, cimerr.KindMalformedSequence), "%v", err)
		})
	}

	_, _, err := Text("", []Operation{EnumerateQualifiersSettings{}})
	assert.True(t, cimerr.Is(err, cimerr.KindMalformedSequence), "empty namespace: %v", err)
}
