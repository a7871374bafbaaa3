// Package variable decodes and encodes stock and flow definitions.
//
// The interchange format gives a definition's variant no type tag: the only
// signal is which optional marker children are present (<conveyor>, <queue>,
// <non_negative> on a stock; <leak>, <overflow>, <non_negative> on a flow).
// Decoding therefore runs in four independent steps:
//
//  1. Assemble: read every attribute and child a definition might carry into
//     one permissive, flattened raw record (RawStock, RawFlow).
//
//  2. Validate markers: report every pair of mutually exclusive markers that
//     are present together. The pass always runs to completion.
//
//  3. Classify: pick exactly one variant kind from the markers by a fixed
//     precedence. Classification is total and never fails, so it may pick a
//     kind for a record that step 2 rejects. Decode rejects such records.
//
//  4. Construct: build the typed model value for the chosen kind, ignoring
//     raw fields that belong to other kinds and failing only when a field the
//     kind mandates is missing.
//
// Encoding is the inverse: a typed value becomes a raw record carrying only
// its own variant's marker, which is then written out. For every value the
// constructor accepts, decoding its encoding yields the value again.
//
// Stocks and flows share this skeleton through a precedence table of marker
// rules; only the field lists differ.
package variable
