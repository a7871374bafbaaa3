package structure

import (
	"errors"
	"fmt"
)

// Writer is the write side of the structural tree. Implementations keep the
// first failure and report it when the document is finished, in the manner
// of bufio.Writer, so encoders can emit a whole definition without checking
// every call.
type Writer interface {
	Open(name string)
	Attr(name, value string)
	Text(text string)
	Close()
}

// Builder is a Writer that assembles a Node tree.
type Builder struct {
	root  *Node
	stack []*Node
	err   error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) fail(format string, args ...any) {
	if b.err == nil {
		b.err = &StructuralError{Source: "writer", Err: fmt.Errorf(format, args...)}
	}
}

func (b *Builder) top() *Node {
	if len(b.stack) == 0 {
		return nil
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) Open(name string) {
	if name == "" {
		b.fail("element name must not be empty")
		return
	}
	n := NewNode(name)
	if parent := b.top(); parent != nil {
		parent.Append(n)
	} else if b.root != nil {
		b.fail("second root element %q", name)
		return
	} else {
		b.root = n
	}
	b.stack = append(b.stack, n)
}

func (b *Builder) Attr(name, value string) {
	n := b.top()
	if n == nil {
		b.fail("attribute %q outside of an element", name)
		return
	}
	n.SetAttr(name, value)
}

func (b *Builder) Text(text string) {
	n := b.top()
	if n == nil {
		b.fail("text outside of an element")
		return
	}
	n.Content += text
}

func (b *Builder) Close() {
	if len(b.stack) == 0 {
		b.fail("close without a matching open")
		return
	}
	b.stack = b.stack[:len(b.stack)-1]
}

// Result returns the finished tree or the first recorded failure.
func (b *Builder) Result() (*Node, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) != 0 {
		return nil, &StructuralError{Source: "writer", Err: fmt.Errorf("element %q was never closed", b.top().Tag)}
	}
	if b.root == nil {
		return nil, &StructuralError{Source: "writer", Err: errors.New("empty document")}
	}
	return b.root, nil
}

// WriteNode replays an Element subtree into a Writer.
func WriteNode(w Writer, el Element) {
	if el == nil {
		return
	}
	w.Open(el.Name())
	for _, a := range el.Attributes() {
		w.Attr(a.Name, a.Value)
	}
	if text := el.Text(); text != "" {
		w.Text(text)
	}
	for _, c := range el.Children() {
		WriteNode(w, c)
	}
	w.Close()
}

// WriteText writes a child element holding only text.
func WriteText(w Writer, name, text string) {
	w.Open(name)
	if text != "" {
		w.Text(text)
	}
	w.Close()
}

// WriteTextPtr writes a text child when text is non-nil.
func WriteTextPtr(w Writer, name string, text *string) {
	if text != nil {
		WriteText(w, name, *text)
	}
}

// WriteMarker writes an empty child element.
func WriteMarker(w Writer, name string) {
	w.Open(name)
	w.Close()
}
