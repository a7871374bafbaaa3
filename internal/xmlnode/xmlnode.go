// Package xmlnode reads and writes the XML rendition of the structural tree.
// Namespaces are dropped on read, so XMILE documents with a default namespace
// decode the same as bare ones.
//
// Text of an element without child elements is kept exactly as written.
// Inside an element with children, character data is layout: each run is
// trimmed and blank runs are dropped.
package xmlnode

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/sdvars/internal/structure"
)

// Parse decodes an XML document into a Node tree rooted at its document
// element.
func Parse(source string, data []byte) (*structure.Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var (
		root  *structure.Node
		stack []*structure.Node
		texts [][]string
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &structure.StructuralError{Source: source, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := structure.NewNode(t.Name.Local)
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || a.Name.Local == "xmlns" {
					continue
				}
				n.Attrs = append(n.Attrs, structure.Attribute{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) > 0 {
				stack[len(stack)-1].Append(n)
			} else if root != nil {
				return nil, &structure.StructuralError{Source: source, Err: fmt.Errorf("second root element %q", n.Tag)}
			} else {
				root = n
			}
			stack = append(stack, n)
			texts = append(texts, nil)
		case xml.EndElement:
			last := len(stack) - 1
			stack[last].Content = content(stack[last], texts[last])
			stack, texts = stack[:last], texts[:last]
		case xml.CharData:
			if len(texts) > 0 {
				texts[len(texts)-1] = append(texts[len(texts)-1], string(t))
			}
		}
	}

	if root == nil {
		return nil, &structure.StructuralError{Source: source, Err: errors.New("no root element")}
	}
	return root, nil
}

func content(n *structure.Node, runs []string) string {
	if len(n.Nodes) == 0 {
		return strings.Join(runs, "")
	}
	var kept []string
	for _, r := range runs {
		if r = strings.TrimSpace(r); r != "" {
			kept = append(kept, r)
		}
	}
	return strings.Join(kept, " ")
}

// Render encodes a Node tree as indented XML without a prolog.
func Render(root structure.Element) ([]byte, error) {
	var buf bytes.Buffer
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := encode(enc, root); err != nil {
		return nil, &structure.StructuralError{Source: "xml writer", Err: err}
	}
	if err := enc.Flush(); err != nil {
		return nil, &structure.StructuralError{Source: "xml writer", Err: err}
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func encode(enc *xml.Encoder, el structure.Element) error {
	start := xml.StartElement{Name: xml.Name{Local: el.Name()}}
	for _, a := range el.Attributes() {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	if text := el.Text(); text != "" {
		if err := enc.EncodeToken(xml.CharData(text)); err != nil {
			return err
		}
	}
	for _, c := range el.Children() {
		if err := encode(enc, c); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}
