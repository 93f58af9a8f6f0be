package grammar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andaru/cimxml/cimerr"
)

func TestElementTable(t *testing.T) {
	for start, tag := range elementTags {
		t.Run(tag, func(t *testing.T) {
			check := assert.New(t)
			check.True(start.IsStart())
			check.False(start.IsEnd())
			check.True(start.End().IsEnd())
			check.Equal(start, start.End().Start())
			check.Equal(tag, start.End().Tag())

			got, err := Classify(NodeStartElement, strings.ToLower(tag))
			check.NoError(err)
			check.Equal(start, got)
			got, err = Classify(NodeEndElement, tag)
			check.NoError(err)
			check.Equal(start.End(), got)
		})
	}
}

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		kind NodeKind
		name string
		want ElementType
		err  bool
	}{
		{kind: NodeStartElement, name: "Value.NamedInstance", want: ValueNamedInstanceStart},
		{kind: NodeEndElement, name: "IRETURNVALUE", want: IReturnValueEnd},
		{kind: NodeText, want: TextValue},
		{kind: NodeWhitespace, want: None},
		{kind: NodeNone, want: None},
		{kind: NodeXMLDeclaration, want: XMLDeclaration},
		{kind: NodeEOF, want: EndOfDocument},
		{kind: NodeStartElement, name: "rpc-reply", want: None, err: true},
		{kind: NodeKind(99), want: None, err: true},
	} {
		t.Run(tc.want.String(), func(t *testing.T) {
			check := assert.New(t)
			got, err := Classify(tc.kind, tc.name)
			check.Equal(tc.want, got)
			if tc.err {
				check.True(cimerr.Is(err, cimerr.KindUnexpectedElement))
			} else {
				check.NoError(err)
			}
		})
	}
}

func TestElementTypeString(t *testing.T) {
	check := assert.New(t)
	check.Equal("<VALUE.ARRAY>", ValueArrayStart.String())
	check.Equal("</CLASS>", ClassEnd.String())
	check.Equal("text", TextValue.String())
	check.Equal("end of document", EndOfDocument.String())
	check.Equal("", TextValue.Tag())
	check.Equal(TextValue, TextValue.End())
}

func TestClassifyAttr(t *testing.T) {
	check := assert.New(t)
	check.Equal(AttrClassOrigin, ClassifyAttr("classorigin"))
	check.Equal(AttrProtocolVersion, ClassifyAttr("ProtocolVersion"))
	check.Equal(AttrUnknown, ClassifyAttr("xml:lang"))
	check.Equal("REFERENCECLASS", AttrReferenceClass.Tag())
	check.Equal("unknown", AttrUnknown.String())
}

func TestTokenizer(t *testing.T) {
	var progress []int
	doc := `<?xml version="1.0" encoding="utf-8"?>
<!-- leading comment -->
<CIM CIMVERSION="2.0">
  <VALUE>a &amp; <![CDATA[<b>]]></VALUE>
</CIM>`
	tk, err := NewTokenizer(doc, WithProgress(func(pct int) { progress = append(progress, pct) }))
	require.NoError(t, err)
	check := assert.New(t)

	et, err := tk.Element()
	check.NoError(err)
	check.Equal(XMLDeclaration, et)
	check.NoError(tk.Next())

	et, err = tk.Element()
	check.NoError(err)
	check.Equal(CIMStart, et)
	check.Len(tk.Attrs(), 1)
	check.NoError(tk.Next())

	et, err = tk.Element()
	check.NoError(err)
	check.Equal(ValueStart, et)
	check.NoError(tk.Next())
	text, err := tk.ReadText()
	check.NoError(err)
	check.Equal("a & <b>", text)

	et, err = tk.Element()
	check.NoError(err)
	check.Equal(ValueEnd, et)
	check.NoError(tk.Next())
	et, err = tk.Element()
	check.NoError(err)
	check.Equal(CIMEnd, et)
	check.NoError(tk.Next())
	et, err = tk.Element()
	check.NoError(err)
	check.Equal(EndOfDocument, et)

	check.NotEmpty(progress)
	check.Equal(100, progress[len(progress)-1])
	check.IsIncreasing(progress)
}

func TestTokenizerSyntaxError(t *testing.T) {
	tk, err := NewTokenizer(`<CIM><MESSAGE></CIM>`)
	require.NoError(t, err)
	for err == nil {
		if err = tk.Next(); tk.Kind() == NodeEOF {
			break
		}
	}
	assert.True(t, cimerr.Is(err, cimerr.KindUnexpectedElement))
}
