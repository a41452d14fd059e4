package depot

import (
	"github.com/TheBitDrifter/mask"
)

type Operation int

const (
	OpAnd Operation = iota
	OpOr
	OpNot
)

type compositeNode struct {
	op         Operation
	children   []QueryNode
	components []Component
}

type query struct {
	root QueryNode
}

func newQuery() Query {
	return &query{}
}

func newCompositeNode(op Operation, components []Component) *compositeNode {
	return &compositeNode{
		op:         op,
		children:   make([]QueryNode, 0),
		components: components,
	}
}

// componentMask marks the bits the world assigned to components. complete is
// false if any of them has no bit in this world.
func componentMask(world World, components ...Component) (m mask.Mask, complete bool) {
	complete = true
	for _, comp := range components {
		row, ok := world.RowIndexFor(comp)
		if !ok {
			complete = false
			continue
		}
		m.Mark(row)
	}
	return m, complete
}

func (n *compositeNode) Evaluate(signature mask.Mask, world World) bool {
	// Build mask at evaluation time
	nodeMask, complete := componentMask(world, n.components...)

	switch n.op {
	case OpAnd:
		if !complete || !signature.ContainsAll(nodeMask) {
			return false
		}
		for _, child := range n.children {
			if !child.Evaluate(signature, world) {
				return false
			}
		}
		return true

	case OpOr:
		if signature.ContainsAny(nodeMask) {
			return true
		}
		for _, child := range n.children {
			if child.Evaluate(signature, world) {
				return true
			}
		}
		return false

	case OpNot:
		if len(n.children) == 0 {
			return signature.ContainsNone(nodeMask)
		}
		for _, child := range n.children {
			if child.Evaluate(signature, world) {
				return false
			}
		}
		return !signature.ContainsAny(nodeMask)
	}
	return false
}

func (q *query) And(items ...interface{}) QueryNode {
	return q.node(OpAnd, items...)
}

func (q *query) Or(items ...interface{}) QueryNode {
	return q.node(OpOr, items...)
}

func (q *query) Not(items ...interface{}) QueryNode {
	return q.node(OpNot, items...)
}

func (q *query) node(op Operation, items ...interface{}) QueryNode {
	components, children := q.processItems(items...)
	node := newCompositeNode(op, components)
	node.children = children
	if q.root == nil {
		q.root = node
	}
	return node
}

func (q *query) processItems(items ...interface{}) ([]Component, []QueryNode) {
	components := make([]Component, 0)
	children := make([]QueryNode, 0)

	for _, item := range items {
		switch v := item.(type) {
		case QueryNode:
			children = append(children, v)
		case Component:
			components = append(components, v)
		case []Component:
			components = append(components, v...)
		}
	}

	return components, children
}

func (q *query) Evaluate(signature mask.Mask, world World) bool {
	if q.root == nil {
		return false
	}
	return q.root.Evaluate(signature, world)
}
