// Package loader discovers definition files and decodes the stocks, flows
// and graphical functions they contain into a Bundle.
//
// A file is read as XML (.xml, .xmile, .stmx) or as the HCL rendition of the
// same tree (.hcl). Definitions are taken from the first <variables> element
// found anywhere in the document, so both bare fragments and full model
// files load. Files are parsed in parallel; within a file, definitions keep
// document order and the bundle keeps file order.
//
// A definition that fails to decode is recorded as a Failure and does not
// stop its siblings from loading.
package loader
