package graphical

import (
	"github.com/specialistvlad/sdvars/internal/structure"
)

// Element and attribute names of the interchange format.
const (
	ElementName = "gf"

	xscaleElement = "xscale"
	yscaleElement = "yscale"
	xptsElement   = "xpts"
	yptsElement   = "ypts"
	sepAttribute  = "sep"
)

// Decode reads a <gf> element. It checks literal formats only; call Validate
// for the semantic rules.
func Decode(el structure.Element) (*Table, error) {
	t := &Table{}

	var err error
	if t.Name, err = structure.Attr(el, "name", ""); err != nil {
		return nil, err
	}
	kind, _ := el.Attr("type")
	if t.Policy, err = ParsePolicy(kind); err != nil {
		return nil, &structure.LiteralFormatError{Field: "type", Text: kind, Want: "continuous, extrapolate or discrete", Err: err}
	}
	if t.XScale, err = decodeScale(el, xscaleElement); err != nil {
		return nil, err
	}
	if t.YScale, err = decodeScale(el, yscaleElement); err != nil {
		return nil, err
	}
	if t.X, t.XSep, err = decodePoints(el, xptsElement); err != nil {
		return nil, err
	}
	if t.Y, t.YSep, err = decodePoints(el, yptsElement); err != nil {
		return nil, err
	}
	// An explicit but empty <xpts/> still selects ExplicitPairs.
	if t.X == nil && structure.Has(el, xptsElement) {
		t.X = []float64{}
	}
	if t.Y == nil && structure.Has(el, yptsElement) {
		t.Y = []float64{}
	}
	return t, nil
}

func decodeScale(el structure.Element, name string) (*Scale, error) {
	c := structure.Child(el, name)
	if c == nil {
		return nil, nil
	}
	min, err := structure.Attr(c, "min", 0.0)
	if err != nil {
		return nil, err
	}
	max, err := structure.Attr(c, "max", 0.0)
	if err != nil {
		return nil, err
	}
	return &Scale{Min: min, Max: max}, nil
}

func decodePoints(el structure.Element, name string) ([]float64, string, error) {
	c := structure.Child(el, name)
	if c == nil {
		return nil, "", nil
	}
	sep, _ := c.Attr(sepAttribute)
	values, err := structure.ParseNumbers(name, c.Text(), sep)
	if err != nil {
		return nil, "", err
	}
	return values, sep, nil
}

// Encode writes t as a <gf> element.
func Encode(w structure.Writer, t *Table) {
	w.Open(ElementName)
	if t.Name != "" {
		w.Attr("name", t.Name)
	}
	if t.Policy != Continuous {
		w.Attr("type", t.Policy.String())
	}
	encodeScale(w, xscaleElement, t.XScale)
	encodeScale(w, yscaleElement, t.YScale)
	if t.X != nil {
		encodePoints(w, xptsElement, t.X, t.XSep)
	}
	if t.Y != nil {
		encodePoints(w, yptsElement, t.Y, t.YSep)
	}
	w.Close()
}

func encodeScale(w structure.Writer, name string, s *Scale) {
	if s == nil {
		return
	}
	w.Open(name)
	w.Attr("min", structure.FormatFloat(s.Min))
	w.Attr("max", structure.FormatFloat(s.Max))
	w.Close()
}

func encodePoints(w structure.Writer, name string, values []float64, sep string) {
	w.Open(name)
	if sep != "" {
		w.Attr(sepAttribute, sep)
	}
	if text := structure.FormatNumbers(values, sep); text != "" {
		w.Text(text)
	}
	w.Close()
}
