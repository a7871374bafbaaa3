package structure

// Element is the read side of the structural tree.
type Element interface {
	// Name is the element's tag, without namespace.
	Name() string
	// Attr looks up an attribute by name.
	Attr(name string) (string, bool)
	// Attributes lists every attribute in document order.
	Attributes() []Attribute
	// Children lists child elements in document order.
	Children() []Element
	// Text is the element's inline text content. Leaf text is kept as
	// written; parsers may drop layout whitespace around child elements.
	Text() string
}

// Attribute is a single name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Node is the in-memory Element implementation produced by the parsers and
// by Builder.
type Node struct {
	Tag     string
	Attrs   []Attribute
	Nodes   []*Node
	Content string
}

// NewNode creates an empty node with the given tag.
func NewNode(tag string) *Node {
	return &Node{Tag: tag}
}

func (n *Node) Name() string { return n.Tag }

func (n *Node) Attr(name string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func (n *Node) Attributes() []Attribute { return n.Attrs }

func (n *Node) Children() []Element {
	out := make([]Element, len(n.Nodes))
	for i, c := range n.Nodes {
		out[i] = c
	}
	return out
}

func (n *Node) Text() string { return n.Content }

// SetAttr replaces the value of an existing attribute or appends a new one.
func (n *Node) SetAttr(name, value string) {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			n.Attrs[i].Value = value
			return
		}
	}
	n.Attrs = append(n.Attrs, Attribute{Name: name, Value: value})
}

// Append adds child nodes at the end of the child list.
func (n *Node) Append(children ...*Node) {
	n.Nodes = append(n.Nodes, children...)
}

// Copy deep-copies any Element into a Node. Decoders use it to keep opaque
// pass-through subtrees such as display hints.
func Copy(el Element) *Node {
	if el == nil {
		return nil
	}
	if n, ok := el.(*Node); ok && n == nil {
		return nil
	}
	out := &Node{Tag: el.Name(), Content: el.Text()}
	if attrs := el.Attributes(); len(attrs) > 0 {
		out.Attrs = append([]Attribute(nil), attrs...)
	}
	for _, c := range el.Children() {
		out.Nodes = append(out.Nodes, Copy(c))
	}
	return out
}

// Child returns the first child with the given name, or nil.
func Child(el Element, name string) Element {
	for _, c := range el.Children() {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns every child with the given name, in document order.
func ChildrenNamed(el Element, name string) []Element {
	var out []Element
	for _, c := range el.Children() {
		if c.Name() == name {
			out = append(out, c)
		}
	}
	return out
}

// Has reports whether a child with the given name is present.
func Has(el Element, name string) bool {
	return Child(el, name) != nil
}

// ChildText returns the text of the first child with the given name.
func ChildText(el Element, name string) (string, bool) {
	c := Child(el, name)
	if c == nil {
		return "", false
	}
	return c.Text(), true
}

// ChildTextPtr is ChildText returning nil when the child is absent.
func ChildTextPtr(el Element, name string) *string {
	text, ok := ChildText(el, name)
	if !ok {
		return nil
	}
	return &text
}

// Find walks the tree depth-first and returns the first element with the
// given name, including el itself.
func Find(el Element, name string) Element {
	if el == nil {
		return nil
	}
	if el.Name() == name {
		return el
	}
	for _, c := range el.Children() {
		if found := Find(c, name); found != nil {
			return found
		}
	}
	return nil
}
