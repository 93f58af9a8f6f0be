/*
Package cim is the in-memory CIM object model carried by CIM-XML messages.

Classes, instances, qualifiers, properties, methods and parameters are
plain structs. Optional scalars keep an explicit unset state (Name, Value,
Bool and TypeInvalid) so that an absent attribute is never confused with
an empty one, and so that round-tripping through the reader and writer
packages preserves what was on the wire.

The set of things a decoder may produce is closed: see Object.
*/
package cim
