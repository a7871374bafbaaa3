// Package structure defines the format-agnostic element tree that every
// variable decoder reads from and every encoder writes to.
//
// A definition in the interchange format is an element with attributes, an
// ordered list of child elements and optional inline text. The concrete
// syntaxes (XML in xmlnode, HCL in hclnode) only translate bytes to and from
// this tree; the decoders never see the syntax.
//
// The package also owns the literal grammar shared by all decoders: typed
// attribute accessors built on cty conversion, delimiter-separated number
// lists, and the LiteralFormatError and StructuralError failure types.
package structure
