package xmlutil

import "encoding/xml"

// IsNamespaceDecl returns true for xmlns and xmlns:<prefix> attributes
func IsNamespaceDecl(a xml.Attr) bool {
	return a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns")
}

// PlainAttrs returns attrs without namespace declarations or attributes in
// the reserved xml namespace (such as xml:lang).
func PlainAttrs(attrs []xml.Attr) []xml.Attr {
	out := attrs[:0:0]
	for _, a := range attrs {
		if IsNamespaceDecl(a) || a.Name.Space == "xml" || a.Name.Space == xmlNamespace {
			continue
		}
		out = append(out, a)
	}
	return out
}

const xmlNamespace = "http://www.w3.org/XML/1998/namespace"
