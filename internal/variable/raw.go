package variable

import (
	"fmt"
	"slices"

	"github.com/specialistvlad/sdvars/internal/events"
	"github.com/specialistvlad/sdvars/internal/graphical"
	"github.com/specialistvlad/sdvars/internal/model"
	"github.com/specialistvlad/sdvars/internal/structure"
)

// Element and marker tags of the interchange format.
const (
	StockElement = "stock"
	FlowElement  = "flow"

	markerConveyor    = "conveyor"
	markerQueue       = "queue"
	markerNonNegative = "non_negative"
	markerLeak        = "leak"
	markerOverflow    = "overflow"
)

// RawCommon is the flattened form of the fields stocks and flows share.
type RawCommon struct {
	Name        string
	Access      model.Access
	AutoExport  bool
	Units       string
	Doc         string
	Dimensions  []string
	Display     *structure.Node
	EventPoster *events.Poster
}

// RawStock carries every field any stock variant may use. Which of them
// matter is decided by the marker fields.
type RawStock struct {
	RawCommon

	Initial  string
	Inflows  []string
	Outflows []string

	HasConveyor     bool
	Length          *string
	Capacity        *string
	InflowLimit     *string
	Sample          *string
	Arrest          *string
	Discrete        *bool
	BatchIntegrity  *bool
	OneAtATime      *bool
	ExponentialLeak *bool

	HasQueue bool

	NonNegative model.NonNegative
}

// RawFlow carries every field any flow variant may use.
type RawFlow struct {
	RawCommon

	Equation   *string
	Multiplier *string
	Function   *graphical.Table

	HasLeak      bool
	LeakFraction *string
	LeakIntegers bool
	LeakStart    *float64
	LeakEnd      *float64

	HasOverflow bool

	NonNegative model.NonNegative
}

func (c RawCommon) model() model.Common {
	return model.Common{
		Name:        c.Name,
		Access:      c.Access,
		AutoExport:  c.AutoExport,
		Units:       c.Units,
		Doc:         model.Documentation(c.Doc),
		Dimensions:  slices.Clone(c.Dimensions),
		Display:     c.Display,
		EventPoster: c.EventPoster,
	}
}

func rawCommon(c model.Common) RawCommon {
	return RawCommon{
		Name:        c.Name,
		Access:      c.Access,
		AutoExport:  c.AutoExport,
		Units:       c.Units,
		Doc:         string(c.Doc),
		Dimensions:  slices.Clone(c.Dimensions),
		Display:     c.Display,
		EventPoster: c.EventPoster,
	}
}

// assembleCommon reads the shared attributes and children of a definition.
func assembleCommon(el structure.Element) (RawCommon, error) {
	var c RawCommon
	c.Name, _ = el.Attr("name")

	if text, ok := el.Attr("access"); ok {
		a, err := model.ParseAccess(text)
		if err != nil {
			return c, err
		}
		c.Access = a
	}

	var err error
	if c.AutoExport, err = structure.Attr(el, "autoexport", false); err != nil {
		return c, err
	}

	c.Units, _ = structure.ChildText(el, "units")
	c.Doc, _ = structure.ChildText(el, "doc")

	if dims := structure.Child(el, "dimensions"); dims != nil {
		for _, d := range structure.ChildrenNamed(dims, "dim") {
			name, ok := d.Attr("name")
			if !ok {
				return c, &structure.MissingFieldError{Definition: "dim", Field: "name"}
			}
			c.Dimensions = append(c.Dimensions, name)
		}
	}

	if display := structure.Child(el, "display"); display != nil {
		c.Display = structure.Copy(display)
	}

	if ep := structure.Child(el, events.ElementName); ep != nil {
		if c.EventPoster, err = events.Decode(ep); err != nil {
			return c, err
		}
	}
	return c, nil
}

func writeCommonAttrs(w structure.Writer, c RawCommon) {
	if c.Name != "" {
		w.Attr("name", c.Name)
	}
	if c.Access != model.AccessNone {
		w.Attr("access", string(c.Access))
	}
	if c.AutoExport {
		w.Attr("autoexport", structure.FormatBool(true))
	}
}

func writeCommonChildren(w structure.Writer, c RawCommon) {
	if c.Units != "" {
		structure.WriteText(w, "units", c.Units)
	}
	if c.Doc != "" {
		structure.WriteText(w, "doc", c.Doc)
	}
	if len(c.Dimensions) > 0 {
		w.Open("dimensions")
		for _, d := range c.Dimensions {
			w.Open("dim")
			w.Attr("name", d)
			w.Close()
		}
		w.Close()
	}
	if c.EventPoster != nil {
		events.Encode(w, c.EventPoster)
	}
	if c.Display != nil {
		structure.WriteNode(w, c.Display)
	}
}

func writeNonNegative(w structure.Writer, n model.NonNegative) {
	body, ok := n.Body()
	if !ok {
		return
	}
	structure.WriteText(w, markerNonNegative, body)
}

func assembleNonNegative(el structure.Element) (model.NonNegative, error) {
	text, ok := structure.ChildText(el, markerNonNegative)
	if !ok {
		return model.NonNegativeUnset, nil
	}
	return model.ParseNonNegative(text)
}

// labelled prefixes an assembly error with the definition it came from while
// keeping it reachable through errors.As.
func labelled(label string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", label, err)
}
