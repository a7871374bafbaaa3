package variable

import (
	"fmt"

	"github.com/specialistvlad/sdvars/internal/graphical"
	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/specialistvlad/sdvars/internal/structure"
)

// FlowKind is the classified variant of a flow.
type FlowKind int

const (
	FlowBasic FlowKind = iota
	FlowNonNegative
	FlowQueueOverflow
	FlowConveyorLeakage
)

func (k FlowKind) String() string {
	switch k {
	case FlowBasic:
		return "basic"
	case FlowNonNegative:
		return "non-negative"
	case FlowQueueOverflow:
		return "queue overflow"
	case FlowConveyorLeakage:
		return "conveyor leakage"
	default:
		return fmt.Sprintf("FlowKind(%d)", int(k))
	}
}

var flowPrecedence = precedence[FlowKind, RawFlow]{
	rules: []markerRule[FlowKind, RawFlow]{
		{kind: FlowConveyorLeakage, marker: markerLeak, present: func(r *RawFlow) bool { return r.HasLeak }},
		{kind: FlowQueueOverflow, marker: markerOverflow, present: func(r *RawFlow) bool { return r.HasOverflow }},
		{kind: FlowNonNegative, marker: markerNonNegative, present: func(r *RawFlow) bool { return r.NonNegative.Declared() }},
	},
	fallback: FlowBasic,
}

// ClassifyFlow picks the variant of a raw flow: leak, then overflow, then
// non-negative, then basic.
func ClassifyFlow(raw RawFlow) FlowKind {
	return flowPrecedence.classify(&raw)
}

// ValidateFlowMarkers reports every pair of mutually exclusive flow markers
// present together.
func ValidateFlowMarkers(raw RawFlow) []string {
	return flowPrecedence.conflicts(&raw)
}

// ConstructFlow builds the typed flow for kind from raw. A queue overflow
// never carries an equation.
func ConstructFlow(kind FlowKind, raw RawFlow) (model.Flow, error) {
	f := model.Flow{
		Common:     raw.RawCommon.model(),
		Equation:   raw.Equation,
		Multiplier: raw.Multiplier,
		Function:   raw.Function,
	}

	switch kind {
	case FlowConveyorLeakage:
		f.Variant = model.ConveyorLeakage{
			Fraction: raw.LeakFraction,
			Integers: raw.LeakIntegers,
			Start:    raw.LeakStart,
			End:      raw.LeakEnd,
		}
	case FlowQueueOverflow:
		f.Equation = nil
		f.Variant = model.QueueOverflow{}
	case FlowNonNegative:
		f.Variant = model.BasicFlow{NonNegative: raw.NonNegative}
	case FlowBasic:
		f.Variant = model.BasicFlow{}
	default:
		return model.Flow{}, fmt.Errorf("%s: unknown flow kind %s", model.Label(FlowElement, raw.Name), kind)
	}
	return f, nil
}

// EncodeFlow flattens a typed flow, setting only its own variant's marker.
func EncodeFlow(f model.Flow) RawFlow {
	raw := RawFlow{
		RawCommon:  rawCommon(f.Common),
		Equation:   f.Equation,
		Multiplier: f.Multiplier,
		Function:   f.Function,
	}

	switch v := f.Variant.(type) {
	case model.ConveyorLeakage:
		raw.HasLeak = true
		raw.LeakFraction = v.Fraction
		raw.LeakIntegers = v.Integers
		raw.LeakStart = v.Start
		raw.LeakEnd = v.End
	case model.QueueOverflow:
		raw.HasOverflow = true
		raw.Equation = nil
	case model.BasicFlow:
		raw.NonNegative = v.NonNegative
	}
	return raw
}

// AssembleFlow reads a <flow> element into a raw record without deciding its
// variant.
func AssembleFlow(el structure.Element) (RawFlow, error) {
	var raw RawFlow
	common, err := assembleCommon(el)
	if err != nil {
		return raw, labelled(model.Label(FlowElement, common.Name), err)
	}
	raw.RawCommon = common
	label := model.Label(FlowElement, raw.Name)

	raw.Equation = structure.ChildTextPtr(el, "eqn")
	raw.Multiplier = structure.ChildTextPtr(el, "multiplier")

	if gf := structure.Child(el, graphical.ElementName); gf != nil {
		if raw.Function, err = graphical.Decode(gf); err != nil {
			return raw, labelled(label, err)
		}
	}

	raw.HasLeak = structure.Has(el, markerLeak)
	raw.LeakFraction = structure.ChildTextPtr(el, "leak_fraction")
	raw.LeakIntegers = structure.Has(el, "leak_integers")
	if raw.LeakStart, err = structure.ChildValue[float64](el, "leak_start"); err != nil {
		return raw, labelled(label, err)
	}
	if raw.LeakEnd, err = structure.ChildValue[float64](el, "leak_end"); err != nil {
		return raw, labelled(label, err)
	}

	raw.HasOverflow = structure.Has(el, markerOverflow)

	if raw.NonNegative, err = assembleNonNegative(el); err != nil {
		return raw, labelled(label, err)
	}
	return raw, nil
}

// WriteFlow writes a raw flow as a <flow> element.
func WriteFlow(w structure.Writer, raw RawFlow) {
	w.Open(FlowElement)
	writeCommonAttrs(w, raw.RawCommon)

	structure.WriteTextPtr(w, "eqn", raw.Equation)
	structure.WriteTextPtr(w, "multiplier", raw.Multiplier)
	if raw.Function != nil {
		graphical.Encode(w, raw.Function)
	}

	if raw.HasLeak {
		structure.WriteMarker(w, markerLeak)
	}
	structure.WriteTextPtr(w, "leak_fraction", raw.LeakFraction)
	if raw.LeakIntegers {
		structure.WriteMarker(w, "leak_integers")
	}
	if raw.LeakStart != nil {
		structure.WriteText(w, "leak_start", structure.FormatFloat(*raw.LeakStart))
	}
	if raw.LeakEnd != nil {
		structure.WriteText(w, "leak_end", structure.FormatFloat(*raw.LeakEnd))
	}

	if raw.HasOverflow {
		structure.WriteMarker(w, markerOverflow)
	}
	writeNonNegative(w, raw.NonNegative)

	writeCommonChildren(w, raw.RawCommon)
	w.Close()
}

// DecodeFlow reads a <flow> element into a typed flow. Marker conflicts are
// rejected with a *TypeConflictError listing all of them.
func DecodeFlow(el structure.Element) (model.Flow, error) {
	raw, err := AssembleFlow(el)
	if err != nil {
		return model.Flow{}, err
	}
	if conflicts := ValidateFlowMarkers(raw); len(conflicts) > 0 {
		return model.Flow{}, &TypeConflictError{Definition: model.Label(FlowElement, raw.Name), Conflicts: conflicts}
	}
	return ConstructFlow(ClassifyFlow(raw), raw)
}

// MarshalFlow writes a typed flow.
func MarshalFlow(w structure.Writer, f model.Flow) {
	WriteFlow(w, EncodeFlow(f))
}
