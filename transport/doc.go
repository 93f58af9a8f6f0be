/*
Package transport provides the CIM-XML transport layer.

The transport layer exchanges a request message's text for the
response message's text. The codec packages never open a connection
themselves; they are given an Exchanger. HTTP implements the DSP0200
CIM operations over HTTP mapping.
*/
package transport
