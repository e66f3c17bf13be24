package syntax

// Walk visits node and all of its descendants depth-first, parent before
// children, children in source order. The visitor returns false to skip the
// children of the node it was given.
func Walk(node Node, visit func(Node) bool) {
	if node == nil {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range Children(node) {
		Walk(child, visit)
	}
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	switch n := node.(type) {
	case *Program:
		return n.Body
	case *CallExpr:
		return prepend(n.Callee, n.Args)
	case *MemberExpr:
		var out []Node
		if n.Object != nil {
			out = append(out, n.Object)
		}
		if n.Property != nil {
			out = append(out, n.Property)
		}
		if n.Computed != nil {
			out = append(out, n.Computed)
		}
		return out
	case *TemplateLit:
		return n.Parts
	case *FuncExpr:
		if n.Body == nil {
			return n.Params
		}
		return append(append([]Node(nil), n.Params...), n.Body)
	case *Other:
		return n.Children
	case *Ident, *StringLit, *NumberLit:
		return nil
	default:
		return nil
	}
}

func prepend(first Node, rest []Node) []Node {
	if first == nil {
		return rest
	}
	out := make([]Node, 0, len(rest)+1)
	out = append(out, first)
	return append(out, rest...)
}
