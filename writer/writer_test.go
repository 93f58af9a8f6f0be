package writer

import (
	"strings"
	"sync"
	"testing"

	"github.com/antchfx/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/cimxml/cim"
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/grammar"
)

type fixedSequence uint64

func (s fixedSequence) Next() uint64 { return uint64(s) }

const (
	envelopeStart = `<?xml version="1.0" encoding="utf-8"?><CIM CIMVERSION="2.0" DTDVERSION="2.0"><MESSAGE ID="9" PROTOCOLVERSION="1.0">`
	envelopeEnd   = `</MESSAGE></CIM>`
)

// body writes one request with fn and returns the SIMPLEREQ content
func body(t *testing.T, fn func(w *Writer)) string {
	t.Helper()
	w := New(WithSequence(fixedSequence(9)))
	w.BeginRequest()
	fn(w)
	w.EndRequest()
	text, err := w.Text()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(text, envelopeStart+"<SIMPLEREQ>"), text)
	require.True(t, strings.HasSuffix(text, "</SIMPLEREQ>"+envelopeEnd), text)
	return strings.TrimSuffix(strings.TrimPrefix(text, envelopeStart+"<SIMPLEREQ>"), "</SIMPLEREQ>"+envelopeEnd)
}

func TestEnvelope(t *testing.T) {
	check := assert.New(t)
	w := New(WithSequence(fixedSequence(9)))
	w.BeginRequest()
	w.StartIMethodCall("GetClass", []string{"root", "cimv2"})
	w.EndElement()
	w.EndRequest()
	text, err := w.Text()
	check.NoError(err)
	check.Equal(envelopeStart+`<SIMPLEREQ><IMETHODCALL NAME="GetClass"><LOCALNAMESPACEPATH><NAMESPACE NAME="root"></NAMESPACE><NAMESPACE NAME="cimv2"></NAMESPACE></LOCALNAMESPACEPATH></IMETHODCALL></SIMPLEREQ>`+envelopeEnd, text)

	again, err := w.Text()
	check.NoError(err)
	check.Equal(text, again)
	check.Equal(1, w.Requests())
	check.Equal("9", w.ID())
}

func TestMultipleRequests(t *testing.T) {
	for _, tc := range []struct {
		requests int
		multi    bool
	}{
		{requests: 1, multi: false},
		{requests: 2, multi: true},
		{requests: 5, multi: true},
	} {
		t.Run("", func(t *testing.T) {
			check := assert.New(t)
			w := New(WithCIMVersion("2.1"), WithDTDVersion("2.2"), WithProtocolVersion("1.1"))
			for i := 0; i < tc.requests; i++ {
				w.BeginRequest()
				w.StartIMethodCall("EnumerateClassNames", []string{"root"})
				w.EndElement()
				w.EndRequest()
			}
			text, err := w.Text()
			require.NoError(t, err)
			check.Equal(tc.multi, strings.Contains(text, "<MULTIREQ>"))

			doc, err := xmlquery.Parse(strings.NewReader(text))
			require.NoError(t, err)
			check.Len(xmlquery.Find(doc, "//SIMPLEREQ"), tc.requests)
			check.Equal("2.1", xmlquery.FindOne(doc, "/CIM").SelectAttr("CIMVERSION"))
			check.Equal("2.2", xmlquery.FindOne(doc, "/CIM").SelectAttr("DTDVERSION"))
			check.Equal("1.1", xmlquery.FindOne(doc, "/CIM/MESSAGE").SelectAttr("PROTOCOLVERSION"))
			check.Equal(w.ID(), xmlquery.FindOne(doc, "/CIM/MESSAGE").SelectAttr("ID"))
		})
	}
}

func TestMalformed(t *testing.T) {
	for _, tc := range []struct {
		name string
		fn   func(w *Writer)
	}{
		{name: "no requests", fn: func(w *Writer) {}},
		{name: "top level element", fn: func(w *Writer) { w.StartElement(grammar.ClassStart) }},
		{name: "end type", fn: func(w *Writer) { w.BeginRequest(); w.StartElement(grammar.ClassEnd) }},
		{name: "end without start", fn: func(w *Writer) { w.EndElement() }},
		{name: "text outside", fn: func(w *Writer) { w.CharData("x") }},
		{name: "attribute outside", fn: func(w *Writer) { w.Attr(grammar.AttrName, "x") }},
		{name: "attribute after text", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartElement(grammar.ValueStart)
			w.CharData("x")
			w.Attr(grammar.AttrName, "y")
		}},
		{name: "attribute after child", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartElement(grammar.ClassStart)
			w.StartElement(grammar.QualifierStart)
			w.EndElement()
			w.Attr(grammar.AttrName, "y")
		}},
		{name: "duplicate attribute", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartElement(grammar.ClassStart)
			w.Attr(grammar.AttrName, "a")
			w.Attr(grammar.AttrName, "b")
		}},
		{name: "unknown attribute", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartElement(grammar.ClassStart)
			w.Attr(grammar.AttrUnknown, "a")
		}},
		{name: "unclosed element", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartElement(grammar.ClassStart)
		}},
		{name: "request inside element", fn: func(w *Writer) {
			w.BeginRequest()
			w.BeginRequest()
		}},
		{name: "request end with open element", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartElement(grammar.ClassStart)
			w.EndRequest()
		}},
		{name: "request end without request", fn: func(w *Writer) { w.EndRequest() }},
		{name: "empty namespace", fn: func(w *Writer) {
			w.BeginRequest()
			w.StartIMethodCall("GetClass", nil)
		}},
		{name: "unset name", fn: func(w *Writer) {
			w.BeginRequest()
			w.WriteClassName(cim.Name{})
		}},
		{name: "named instance without name", fn: func(w *Writer) {
			w.BeginRequest()
			w.WriteNamedInstance(&cim.Instance{ClassName: cim.NewName("A")})
		}},
		{name: "named instance class mismatch", fn: func(w *Writer) {
			w.BeginRequest()
			w.WriteNamedInstance(&cim.Instance{
				ClassName:    cim.NewName("A"),
				InstanceName: &cim.InstanceName{ClassName: cim.NewName("B")},
			})
			w.EndRequest()
		}},
		{name: "bad reference kind", fn: func(w *Writer) {
			w.BeginRequest()
			w.WriteValueReference(&cim.ValueReference{})
		}},
		{name: "key binding without value", fn: func(w *Writer) {
			w.BeginRequest()
			w.WriteKeyBinding(cim.KeyBinding{Name: cim.NewName("k")})
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			w := New()
			tc.fn(w)
			text, err := w.Text()
			check.Empty(text)
			check.True(cimerr.Is(err, cimerr.KindMalformedSequence), "%v", err)
		})
	}
}

func TestStickyError(t *testing.T) {
	check := assert.New(t)
	w := New()
	w.EndElement()
	first := w.Err()
	check.Error(first)

	w.BeginRequest()
	w.WriteValue("x")
	w.EndRequest()
	check.Equal(first, w.Err())
	check.Equal(0, w.Requests())
	_, err := w.Text()
	check.Equal(first, err)
}

func TestValidate(t *testing.T) {
	simpleReq := op{kind: opStart, elem: grammar.SimpleReqStart}
	for _, tc := range []struct {
		name     string
		ops      []op
		requests int
		wantErr  bool
	}{
		{name: "empty"},
		{name: "one", ops: []op{simpleReq, {kind: opEnd}}, requests: 1},
		{
			name:     "nested ends",
			ops:      []op{simpleReq, {kind: opStart, elem: grammar.IMethodCallStart}, {kind: opEnd}, {kind: opEnd}, simpleReq, {kind: opEnd}},
			requests: 2,
		},
		{name: "unclosed", ops: []op{simpleReq}, wantErr: true},
		{name: "attr after text", ops: []op{simpleReq, {kind: opText}, {kind: opAttr, attr: grammar.AttrName}}, wantErr: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			requests, err := validate(tc.ops)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.requests, requests)
		})
	}
}

func TestPrimitiveRequests(t *testing.T) {
	for _, tc := range []struct {
		name     string
		begin    []bool
		multi    bool
		requests int
	}{
		{name: "primitive only", begin: []bool{false}, requests: 1},
		{name: "mixed", begin: []bool{true, false}, multi: true, requests: 2},
		{name: "two primitive", begin: []bool{false, false}, multi: true, requests: 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			check := assert.New(t)
			w := New(WithSequence(fixedSequence(9)))
			for _, begin := range tc.begin {
				if begin {
					w.BeginRequest()
				} else {
					w.StartElement(grammar.SimpleReqStart)
				}
				w.StartIMethodCall("EnumerateClassNames", []string{"root"})
				w.EndElement()
				if begin {
					w.EndRequest()
				} else {
					w.EndElement()
				}
			}
			check.Equal(tc.requests, w.Requests())
			text, err := w.Text()
			require.NoError(t, err)
			check.Equal(tc.multi, strings.Contains(text, envelopeStart+"<MULTIREQ><SIMPLEREQ>"), text)

			doc, err := xmlquery.Parse(strings.NewReader(text))
			require.NoError(t, err)
			check.Len(xmlquery.Find(doc, "//SIMPLEREQ"), tc.requests)
		})
	}
}

func TestCounter(t *testing.T) {
	var (
		c    Counter
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[uint64]bool{}
	)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := c.Next()
				mu.Lock()
				seen[v] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Len(t, seen, 800)
	assert.Equal(t, uint64(801), c.Next())

	a, b := New(), New()
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestEscaping(t *testing.T) {
	got := body(t, func(w *Writer) {
		w.StartIParamValue(`a"b`)
		w.WriteValue("x<y & z")
		w.EndElement()
	})
	assert.Equal(t, `<IPARAMVALUE NAME="a&#34;b"><VALUE>x&lt;y &amp; z</VALUE></IPARAMVALUE>`, got)
}

func TestComposites(t *testing.T) {
	keyValue := &cim.KeyValue{Value: "a"}
	for _, tc := range []struct {
		name string
		fn   func(w *Writer)
		want string
	}{
		{
			name: "value list empty",
			fn:   func(w *Writer) { w.WriteValueList(nil) },
			want: `<VALUE></VALUE>`,
		},
		{
			name: "value list single",
			fn:   func(w *Writer) { w.WriteValueList([]string{"1"}) },
			want: `<VALUE>1</VALUE>`,
		},
		{
			name: "value list many",
			fn:   func(w *Writer) { w.WriteValueList([]string{"1", "2"}) },
			want: `<VALUE.ARRAY><VALUE>1</VALUE><VALUE>2</VALUE></VALUE.ARRAY>`,
		},
		{
			name: "qualifier array of one",
			fn: func(w *Writer) {
				w.WriteQualifier(cim.Qualifier{Name: cim.NewName("Q"), Type: cim.TypeString, Values: []string{"x"}, IsArray: true})
			},
			want: `<QUALIFIER NAME="Q" TYPE="string"><VALUE.ARRAY><VALUE>x</VALUE></VALUE.ARRAY></QUALIFIER>`,
		},
		{
			name: "qualifier scalar",
			fn: func(w *Writer) {
				w.WriteQualifier(cim.Qualifier{
					Name: cim.NewName("Key"), Type: cim.TypeBoolean, Values: []string{"true"},
					Flavor: cim.Flavor{Overridable: cim.BoolFalse},
				})
			},
			want: `<QUALIFIER NAME="Key" TYPE="boolean" OVERRIDABLE="false"><VALUE>true</VALUE></QUALIFIER>`,
		},
		{
			name: "instance name key value shorthand",
			fn: func(w *Writer) {
				w.WriteInstanceName(&cim.InstanceName{
					ClassName:   cim.NewName("C"),
					KeyBindings: []cim.KeyBinding{{Name: cim.NewName(cim.ShorthandKeyValue), Value: keyValue}},
				})
			},
			want: `<INSTANCENAME CLASSNAME="C"><KEYVALUE>a</KEYVALUE></INSTANCENAME>`,
		},
		{
			name: "instance name key bindings",
			fn: func(w *Writer) {
				w.WriteInstanceName(&cim.InstanceName{
					ClassName: cim.NewName("C"),
					KeyBindings: []cim.KeyBinding{
						{Name: cim.NewName("Id"), Value: &cim.KeyValue{ValueType: cim.ValueTypeString, Type: cim.TypeString, Value: "1"}},
						{Name: cim.NewName("Ref"), Value: &cim.ValueReference{Kind: cim.ReferenceClassName, ClassName: cim.NewName("D")}},
					},
				})
			},
			want: `<INSTANCENAME CLASSNAME="C">` +
				`<KEYBINDING NAME="Id"><KEYVALUE VALUETYPE="string" TYPE="string">1</KEYVALUE></KEYBINDING>` +
				`<KEYBINDING NAME="Ref"><VALUE.REFERENCE><CLASSNAME NAME="D"></CLASSNAME></VALUE.REFERENCE></KEYBINDING>` +
				`</INSTANCENAME>`,
		},
		{
			name: "instance path reference",
			fn: func(w *Writer) {
				w.WriteValueReference(&cim.ValueReference{
					Kind:         cim.ReferenceInstancePath,
					Namespace:    cim.NamespacePath{Host: "h", Namespace: []string{"root"}},
					InstanceName: &cim.InstanceName{ClassName: cim.NewName("C")},
				})
			},
			want: `<VALUE.REFERENCE><INSTANCEPATH><NAMESPACEPATH><HOST>h</HOST><LOCALNAMESPACEPATH><NAMESPACE NAME="root"></NAMESPACE></LOCALNAMESPACEPATH></NAMESPACEPATH>` +
				`<INSTANCENAME CLASSNAME="C"></INSTANCENAME></INSTANCEPATH></VALUE.REFERENCE>`,
		},
		{
			name: "class",
			fn: func(w *Writer) {
				w.WriteClass(&cim.Class{
					Name:       cim.NewName("C"),
					SuperClass: cim.NewName("B"),
					Properties: cim.Properties{
						&cim.Property{Name: cim.NewName("P"), Type: cim.TypeUint8, Value: cim.NewValue("3")},
						&cim.PropertyArray{Name: cim.NewName("A"), Type: cim.TypeString, Values: []string{}},
					},
					Methods: []*cim.Method{{
						Name:       cim.NewName("M"),
						Type:       cim.TypeUint32,
						Parameters: []cim.ParameterElement{&cim.ParameterReference{Name: cim.NewName("R"), ReferenceClass: cim.NewName("D")}},
					}},
				})
			},
			want: `<CLASS NAME="C" SUPERCLASS="B">` +
				`<PROPERTY NAME="P" TYPE="uint8"><VALUE>3</VALUE></PROPERTY>` +
				`<PROPERTY.ARRAY NAME="A" TYPE="string"><VALUE.ARRAY></VALUE.ARRAY></PROPERTY.ARRAY>` +
				`<METHOD NAME="M" TYPE="uint32"><PARAMETER.REFERENCE NAME="R" REFERENCECLASS="D"></PARAMETER.REFERENCE></METHOD>` +
				`</CLASS>`,
		},
		{
			name: "param value",
			fn: func(w *Writer) {
				w.StartParamValue("In", cim.TypeSint32)
				w.WriteValue("-1")
				w.EndElement()
			},
			want: `<PARAMVALUE NAME="In" PARAMTYPE="sint32"><VALUE>-1</VALUE></PARAMVALUE>`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, body(t, tc.fn))
		})
	}
}
