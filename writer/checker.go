package writer

import (
	"github.com/andaru/cimxml/cimerr"
	"github.com/andaru/cimxml/grammar"
)

type frame struct {
	elem    grammar.ElementType
	content bool
	attrs   []grammar.Attribute
}

// checker is the well-formedness state machine for an operation log.
// Top level elements must be SIMPLEREQ.
type checker struct {
	stack []frame
	// requests counts closed top level SIMPLEREQ elements
	requests int
}

func (c *checker) depth() int { return len(c.stack) }

func (c *checker) top() grammar.ElementType {
	if len(c.stack) == 0 {
		return grammar.None
	}
	return c.stack[len(c.stack)-1].elem
}

func malformed(elem grammar.ElementType, format string, args ...interface{}) error {
	return cimerr.MalformedSequence(cimerr.WithElement(elem.Tag()), cimerr.WithMessagef(format, args...))
}

func (c *checker) step(o op) error {
	var cur *frame
	if n := len(c.stack); n > 0 {
		cur = &c.stack[n-1]
	}
	switch o.kind {
	case opStart:
		if !o.elem.IsStart() {
			return malformed(o.elem, "%s is not an element start", o.elem)
		}
		if cur == nil && o.elem != grammar.SimpleReqStart {
			return malformed(o.elem, "top level element must be SIMPLEREQ")
		}
		if cur != nil {
			cur.content = true
		}
		c.stack = append(c.stack, frame{elem: o.elem})
	case opEnd:
		if cur == nil {
			return malformed(grammar.None, "end without open element")
		}
		c.stack = c.stack[:len(c.stack)-1]
		if len(c.stack) == 0 {
			c.requests++
		}
	case opAttr:
		if cur == nil {
			return malformed(grammar.None, "attribute %s outside an element", o.attr)
		}
		if cur.content {
			return malformed(cur.elem, "attribute %s after content", o.attr)
		}
		if o.attr == grammar.AttrUnknown {
			return malformed(cur.elem, "unknown attribute")
		}
		for _, a := range cur.attrs {
			if a == o.attr {
				return malformed(cur.elem, "duplicate attribute %s", o.attr)
			}
		}
		cur.attrs = append(cur.attrs, o.attr)
	case opText:
		if cur == nil {
			return malformed(grammar.None, "text outside an element")
		}
		cur.content = true
	}
	return nil
}

// finish reports elements left open
func (c *checker) finish() error {
	if len(c.stack) > 0 {
		return malformed(c.top(), "element not closed")
	}
	return nil
}

// validate runs a fresh checker over the whole log and returns the
// number of requests in it
func validate(ops []op) (int, error) {
	var c checker
	for _, o := range ops {
		if err := c.step(o); err != nil {
			return 0, err
		}
	}
	return c.requests, c.finish()
}
