package events

import (
	"fmt"

	"github.com/specialistvlad/sdvars/internal/structure"
)

// ElementName is the tag of an event poster.
const ElementName = "event_poster"

// Decode reads an <event_poster> element. Enumerated literals are kept
// verbatim; Validate decides whether they are acceptable.
func Decode(el structure.Element) (*Poster, error) {
	p := &Poster{}

	var err error
	if p.Min, err = requiredFloat(el, ElementName, "min"); err != nil {
		return nil, err
	}
	if p.Max, err = requiredFloat(el, ElementName, "max"); err != nil {
		return nil, err
	}

	for i, tel := range structure.ChildrenNamed(el, "threshold") {
		t, err := decodeThreshold(tel, fmt.Sprintf("threshold %d", i))
		if err != nil {
			return nil, err
		}
		p.Thresholds = append(p.Thresholds, t)
	}
	return p, nil
}

func decodeThreshold(el structure.Element, where string) (Threshold, error) {
	var t Threshold

	var err error
	if t.Value, err = requiredFloat(el, where, "value"); err != nil {
		return t, err
	}
	if dir, ok := el.Attr("direction"); ok {
		d := Direction(dir)
		t.Direction = &d
	}
	if t.Repeat, err = structure.AttrPtr[string](el, "repeat"); err != nil {
		return t, err
	}
	if t.Interval, err = structure.AttrPtr[string](el, "interval"); err != nil {
		return t, err
	}

	for _, eel := range structure.ChildrenNamed(el, "event") {
		e := Event{Text: eel.Text()}
		if action, ok := eel.Attr("sim_action"); ok {
			a := Action(action)
			e.Action = &a
		}
		t.Events = append(t.Events, e)
	}
	return t, nil
}

func requiredFloat(el structure.Element, where, name string) (float64, error) {
	if _, ok := el.Attr(name); !ok {
		return 0, &structure.MissingFieldError{Definition: where, Field: name}
	}
	return structure.Attr(el, name, 0.0)
}

// Encode writes p as an <event_poster> element.
func Encode(w structure.Writer, p *Poster) {
	w.Open(ElementName)
	w.Attr("min", structure.FormatFloat(p.Min))
	w.Attr("max", structure.FormatFloat(p.Max))
	for _, t := range p.Thresholds {
		w.Open("threshold")
		w.Attr("value", structure.FormatFloat(t.Value))
		if t.Direction != nil {
			w.Attr("direction", string(*t.Direction))
		}
		if t.Repeat != nil {
			w.Attr("repeat", *t.Repeat)
		}
		if t.Interval != nil {
			w.Attr("interval", *t.Interval)
		}
		for _, e := range t.Events {
			w.Open("event")
			if e.Action != nil {
				w.Attr("sim_action", string(*e.Action))
			}
			if e.Text != "" {
				w.Text(e.Text)
			}
			w.Close()
		}
		w.Close()
	}
	w.Close()
}
