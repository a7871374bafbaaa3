// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the strongly-typed, in-memory representation of
// System-Dynamics variable definitions: stocks and flows, each carrying
// exactly one variant payload.
//
// # Core Concepts
//
//   - Stock: an accumulation with inflows, outflows and an initial value. Its
//     variant is BasicStock, Conveyor (a fixed-length transit pipeline) or
//     Queue (FIFO discharge).
//
//   - Flow: a rate moving quantity into or out of stocks. Its variant is
//     BasicFlow, QueueOverflow or ConveyorLeakage.
//
//   - NonNegative: the three-state non-negativity declaration shared by the
//     basic variants. Unset, declared with an empty marker, and declared with
//     an explicit value are distinct so that re-encoding reproduces the input.
//
// Values in this package are built once, by the decoders in the variable
// package or directly by callers that want to encode them, and are not
// mutated afterwards. Validation is read-only.
//
// Why sealed variant interfaces?
//
// The interchange format signals a definition's variant only through which
// optional markers are present. Once classified, the variant is a closed set;
// StockVariant and FlowVariant make an impossible combination (a conveyor
// that is also a queue) unrepresentable, and a type switch over them is
// exhaustive by construction.
package model
