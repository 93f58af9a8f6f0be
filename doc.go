/*
Package cimxml is a set of CIM-XML (DSP0200/DSP0201) client libraries.

Operations are written by the request builders through a checked
writer, which refuses malformed element sequences before any text is
produced, and the CIMOM's responses are decoded by a recursive-descent
reader into the typed object model of the cim package.

	w := writer.New()
	err := request.Batch(w, "root/cimv2",
		request.GetClassSettings{ClassName: cim.NewName("CIM_ComputerSystem")})
	text, err := w.Text()
	...
	b, err := batch.Decode(responseText)

The client package ties these together with an HTTP transport.
CIMOM errors are decoded results, returned in the batch, while codec
failures are returned as *cimerr.Error values.
*/
package cimxml
