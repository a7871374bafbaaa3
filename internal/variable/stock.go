package variable

import (
	"fmt"
	"slices"
	"strings"

	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/specialistvlad/sdvars/internal/structure"
)

// StockKind is the classified variant of a stock.
type StockKind int

const (
	StockBasic StockKind = iota
	StockNonNegative
	StockQueue
	StockConveyor
)

func (k StockKind) String() string {
	switch k {
	case StockBasic:
		return "basic"
	case StockNonNegative:
		return "non-negative"
	case StockQueue:
		return "queue"
	case StockConveyor:
		return "conveyor"
	default:
		return fmt.Sprintf("StockKind(%d)", int(k))
	}
}

var stockPrecedence = precedence[StockKind, RawStock]{
	rules: []markerRule[StockKind, RawStock]{
		{kind: StockConveyor, marker: markerConveyor, present: func(r *RawStock) bool { return r.HasConveyor }},
		{kind: StockQueue, marker: markerQueue, present: func(r *RawStock) bool { return r.HasQueue }},
		{kind: StockNonNegative, marker: markerNonNegative, present: func(r *RawStock) bool { return r.NonNegative.Declared() }},
	},
	fallback: StockBasic,
}

// ClassifyStock picks the variant of a raw stock: conveyor, then queue, then
// non-negative, then basic.
func ClassifyStock(raw RawStock) StockKind {
	return stockPrecedence.classify(&raw)
}

// ValidateStockMarkers reports every pair of mutually exclusive stock markers
// present together. An empty result means the markers are consistent.
func ValidateStockMarkers(raw RawStock) []string {
	return stockPrecedence.conflicts(&raw)
}

// ConstructStock builds the typed stock for kind from raw.
func ConstructStock(kind StockKind, raw RawStock) (model.Stock, error) {
	s := model.Stock{
		Common:   raw.RawCommon.model(),
		Initial:  raw.Initial,
		Inflows:  slices.Clone(raw.Inflows),
		Outflows: slices.Clone(raw.Outflows),
	}

	switch kind {
	case StockConveyor:
		if raw.Length == nil {
			return model.Stock{}, &structure.MissingFieldError{Definition: model.Label(StockElement, raw.Name), Field: "length"}
		}
		s.Variant = model.Conveyor{
			Length:          *raw.Length,
			Capacity:        raw.Capacity,
			InflowLimit:     raw.InflowLimit,
			Sample:          raw.Sample,
			Arrest:          raw.Arrest,
			Discrete:        raw.Discrete,
			BatchIntegrity:  raw.BatchIntegrity,
			OneAtATime:      raw.OneAtATime,
			ExponentialLeak: raw.ExponentialLeak,
		}
	case StockQueue:
		s.Variant = model.Queue{}
	case StockNonNegative:
		s.Variant = model.BasicStock{NonNegative: raw.NonNegative}
	case StockBasic:
		s.Variant = model.BasicStock{}
	default:
		return model.Stock{}, fmt.Errorf("%s: unknown stock kind %s", model.Label(StockElement, raw.Name), kind)
	}
	return s, nil
}

// EncodeStock flattens a typed stock, setting only its own variant's marker.
func EncodeStock(s model.Stock) RawStock {
	raw := RawStock{
		RawCommon: rawCommon(s.Common),
		Initial:   s.Initial,
		Inflows:   slices.Clone(s.Inflows),
		Outflows:  slices.Clone(s.Outflows),
	}

	switch v := s.Variant.(type) {
	case model.Conveyor:
		length := v.Length
		raw.HasConveyor = true
		raw.Length = &length
		raw.Capacity = v.Capacity
		raw.InflowLimit = v.InflowLimit
		raw.Sample = v.Sample
		raw.Arrest = v.Arrest
		raw.Discrete = v.Discrete
		raw.BatchIntegrity = v.BatchIntegrity
		raw.OneAtATime = v.OneAtATime
		raw.ExponentialLeak = v.ExponentialLeak
	case model.Queue:
		raw.HasQueue = true
	case model.BasicStock:
		raw.NonNegative = v.NonNegative
	}
	return raw
}

// AssembleStock reads a <stock> element into a raw record without deciding
// its variant.
func AssembleStock(el structure.Element) (RawStock, error) {
	var raw RawStock
	common, err := assembleCommon(el)
	if err != nil {
		return raw, labelled(model.Label(StockElement, common.Name), err)
	}
	raw.RawCommon = common
	label := model.Label(StockElement, raw.Name)

	raw.Initial, _ = structure.ChildText(el, "eqn")
	for _, in := range structure.ChildrenNamed(el, "inflow") {
		raw.Inflows = append(raw.Inflows, strings.TrimSpace(in.Text()))
	}
	for _, out := range structure.ChildrenNamed(el, "outflow") {
		raw.Outflows = append(raw.Outflows, strings.TrimSpace(out.Text()))
	}

	if c := structure.Child(el, markerConveyor); c != nil {
		raw.HasConveyor = true
		raw.Length = structure.ChildTextPtr(c, "len")
		raw.Capacity = structure.ChildTextPtr(c, "capacity")
		raw.InflowLimit = structure.ChildTextPtr(c, "in_limit")
		raw.Sample = structure.ChildTextPtr(c, "sample")
		raw.Arrest = structure.ChildTextPtr(c, "arrest")
		for _, flag := range []struct {
			name string
			dst  **bool
		}{
			{"discrete", &raw.Discrete},
			{"batch_integrity", &raw.BatchIntegrity},
			{"one_at_a_time", &raw.OneAtATime},
			{"exponential_leak", &raw.ExponentialLeak},
		} {
			if *flag.dst, err = structure.AttrPtr[bool](c, flag.name); err != nil {
				return raw, labelled(label, err)
			}
		}
	}

	raw.HasQueue = structure.Has(el, markerQueue)

	if raw.NonNegative, err = assembleNonNegative(el); err != nil {
		return raw, labelled(label, err)
	}
	return raw, nil
}

// WriteStock writes a raw stock as a <stock> element.
func WriteStock(w structure.Writer, raw RawStock) {
	w.Open(StockElement)
	writeCommonAttrs(w, raw.RawCommon)

	if raw.Initial != "" {
		structure.WriteText(w, "eqn", raw.Initial)
	}
	for _, in := range raw.Inflows {
		structure.WriteText(w, "inflow", in)
	}
	for _, out := range raw.Outflows {
		structure.WriteText(w, "outflow", out)
	}

	if raw.HasConveyor {
		w.Open(markerConveyor)
		for _, flag := range []struct {
			name string
			val  *bool
		}{
			{"discrete", raw.Discrete},
			{"batch_integrity", raw.BatchIntegrity},
			{"one_at_a_time", raw.OneAtATime},
			{"exponential_leak", raw.ExponentialLeak},
		} {
			if flag.val != nil {
				w.Attr(flag.name, structure.FormatBool(*flag.val))
			}
		}
		structure.WriteTextPtr(w, "len", raw.Length)
		structure.WriteTextPtr(w, "capacity", raw.Capacity)
		structure.WriteTextPtr(w, "in_limit", raw.InflowLimit)
		structure.WriteTextPtr(w, "sample", raw.Sample)
		structure.WriteTextPtr(w, "arrest", raw.Arrest)
		w.Close()
	}
	if raw.HasQueue {
		structure.WriteMarker(w, markerQueue)
	}
	writeNonNegative(w, raw.NonNegative)

	writeCommonChildren(w, raw.RawCommon)
	w.Close()
}

// DecodeStock reads a <stock> element into a typed stock. Marker conflicts
// are rejected with a *TypeConflictError listing all of them.
func DecodeStock(el structure.Element) (model.Stock, error) {
	raw, err := AssembleStock(el)
	if err != nil {
		return model.Stock{}, err
	}
	if conflicts := ValidateStockMarkers(raw); len(conflicts) > 0 {
		return model.Stock{}, &TypeConflictError{Definition: model.Label(StockElement, raw.Name), Conflicts: conflicts}
	}
	return ConstructStock(ClassifyStock(raw), raw)
}

// MarshalStock writes a typed stock.
func MarshalStock(w structure.Writer, s model.Stock) {
	WriteStock(w, EncodeStock(s))
}
