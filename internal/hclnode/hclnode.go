// Package hclnode reads and writes the HCL rendition of the structural tree.
//
// Every element is a block and every attribute a string-valued attribute.
// Inline text lives in the reserved "text" attribute, so
//
//	stock {
//	  name = "population"
//	  eqn { text = "100" }
//	  non_negative {}
//	}
//
// is the same tree as the XML form. On read, a single block label is accepted
// as shorthand for the "name" attribute (`stock "population" { ... }`).
// Numbers and bools are accepted wherever a string is, and normalized to
// their literal text.
//
// An element attribute that is itself named "text" is written as "attr_text".
// Names that already start with "attr_" gain one more prefix, and the reader
// strips exactly one, so every attribute name survives the round trip.
package hclnode

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/specialistvlad/sdvars/internal/structure"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// TextAttribute is the attribute that carries an element's inline text.
const TextAttribute = "text"

// EscapePrefix marks an attribute name that would otherwise collide with
// TextAttribute.
const EscapePrefix = "attr_"

func escapeName(name string) string {
	if name == TextAttribute || strings.HasPrefix(name, EscapePrefix) {
		return EscapePrefix + name
	}
	return name
}

func unescapeName(name string) string {
	return strings.TrimPrefix(name, EscapePrefix)
}

// Parse decodes an HCL file whose body holds exactly one top-level block.
func Parse(filename string, src []byte) (*structure.Node, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, &structure.StructuralError{Source: filename, Err: diags}
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, &structure.StructuralError{Source: filename, Err: fmt.Errorf("unexpected body type %T", file.Body)}
	}
	if len(body.Attributes) > 0 || len(body.Blocks) != 1 {
		return nil, &structure.StructuralError{Source: filename, Err: errors.New("expected exactly one top-level block and no top-level attributes")}
	}

	n, diags := fromBlock(body.Blocks[0])
	if diags.HasErrors() {
		return nil, &structure.StructuralError{Source: filename, Err: diags}
	}
	return n, nil
}

func fromBlock(block *hclsyntax.Block) (*structure.Node, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	n := structure.NewNode(block.Type)

	switch len(block.Labels) {
	case 0:
	case 1:
		n.SetAttr("name", block.Labels[0])
	default:
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Too many block labels",
			Detail:   fmt.Sprintf("A %q block accepts at most one label, its name.", block.Type),
			Subject:  block.DefRange().Ptr(),
		})
		return nil, diags
	}

	// Attributes come back as a map; restore source order.
	attrs := make([]*hclsyntax.Attribute, 0, len(block.Body.Attributes))
	for _, attr := range block.Body.Attributes {
		attrs = append(attrs, attr)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	for _, attr := range attrs {
		text, attrDiags := literal(attr)
		diags = append(diags, attrDiags...)
		if attrDiags.HasErrors() {
			continue
		}
		if attr.Name == TextAttribute {
			n.Content = text
			continue
		}
		n.SetAttr(unescapeName(attr.Name), text)
	}

	for _, child := range block.Body.Blocks {
		c, childDiags := fromBlock(child)
		diags = append(diags, childDiags...)
		if c != nil {
			n.Append(c)
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}
	return n, diags
}

// literal evaluates an attribute without an evaluation context and renders
// the primitive result as text.
func literal(attr *hclsyntax.Attribute) (string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() || !val.Type().IsPrimitiveType() {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   fmt.Sprintf("Attribute %q must be a string, number or bool literal.", attr.Name),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Invalid attribute value",
			Detail:   fmt.Sprintf("Attribute %q cannot be read as text: %s.", attr.Name, err),
			Subject:  attr.Expr.Range().Ptr(),
		}}
	}
	return str.AsString(), diags
}

// Render encodes an element tree as an HCL file with one top-level block.
func Render(root structure.Element) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	if err := writeBlock(f.Body(), root); err != nil {
		return nil, &structure.StructuralError{Source: "hcl writer", Err: err}
	}
	return f.Bytes(), nil
}

func writeBlock(body *hclwrite.Body, el structure.Element) error {
	if !hclsyntax.ValidIdentifier(el.Name()) {
		return fmt.Errorf("element name %q is not a valid HCL identifier", el.Name())
	}
	block := body.AppendNewBlock(el.Name(), nil).Body()
	for _, a := range el.Attributes() {
		if !hclsyntax.ValidIdentifier(a.Name) {
			return fmt.Errorf("element %q: attribute name %q is not a valid HCL identifier", el.Name(), a.Name)
		}
		block.SetAttributeValue(escapeName(a.Name), cty.StringVal(a.Value))
	}
	if text := el.Text(); text != "" {
		block.SetAttributeValue(TextAttribute, cty.StringVal(text))
	}
	for _, c := range el.Children() {
		if err := writeBlock(block, c); err != nil {
			return err
		}
	}
	return nil
}
