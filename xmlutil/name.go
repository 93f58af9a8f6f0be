package xmlutil

import "encoding/xml"

// Name returns the xml.Name of a CIM-XML element or attribute. CIM-XML
// names are never namespace qualified.
func Name(local string) xml.Name { return xml.Name{Local: local} }

// Attr returns an attribute named local
func Attr(local, value string) xml.Attr { return xml.Attr{Name: Name(local), Value: value} }

// Start returns a start element token named local with attrs
func Start(local string, attrs ...xml.Attr) xml.StartElement {
	return xml.StartElement{Name: Name(local), Attr: attrs}
}
