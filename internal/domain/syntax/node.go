// Package syntax defines the typed syntax tree the test-case locator walks.
//
// Parsers convert their concrete trees into these node variants. Only the
// shapes the locator cares about get their own type; everything else is an
// *Other node that just carries its children. Location and byte range are
// optional because not every producer can supply them.
package syntax

// Location is a 1-based line span.
type Location struct {
	StartLine int
	EndLine   int
}

// Range is a half-open byte range [Start, End) into the source text.
type Range struct {
	Start int
	End   int
}

// Meta carries the optional position metadata shared by all nodes.
type Meta struct {
	Loc   *Location
	Range *Range
}

// Position returns the node's metadata.
func (m Meta) Position() Meta { return m }

// StartLine returns the first line of the node, or 0 when unknown.
func (m Meta) StartLine() int {
	if m.Loc == nil {
		return 0
	}
	return m.Loc.StartLine
}

// EndLine returns the last line of the node, or 0 when unknown.
func (m Meta) EndLine() int {
	if m.Loc == nil {
		return 0
	}
	return m.Loc.EndLine
}

// Node is implemented by every variant below. The set is closed.
type Node interface {
	Position() Meta
	node()
}

// Program is the root of a parsed file.
type Program struct {
	Meta
	Body []Node
}

// CallExpr is a call such as test('name', async () => {}).
type CallExpr struct {
	Meta
	Callee Node
	Args   []Node
}

// Ident is a bare identifier.
type Ident struct {
	Meta
	Name string
}

// MemberExpr is a property access such as test.step. Property is nil for
// computed accesses (test['step']), whose property has no name.
type MemberExpr struct {
	Meta
	Object   Node
	Property *Ident
	Computed Node
}

// StringLit is a quoted string literal. Value is the decoded content and
// Raw is the literal's source text including quotes.
type StringLit struct {
	Meta
	Value string
	Raw   string
}

// TemplateLit is a backtick template. Value is only meaningful when
// HasSubstitutions is false.
type TemplateLit struct {
	Meta
	Value            string
	Raw              string
	HasSubstitutions bool
	Parts            []Node
}

// NumberLit is a numeric literal.
type NumberLit struct {
	Meta
	Raw string
}

// FuncExpr is an arrow function or function expression. Body is nil when
// the producer could not supply it.
type FuncExpr struct {
	Meta
	Arrow  bool
	Params []Node
	Body   Node
}

// Other is any node the locator does not need to inspect.
type Other struct {
	Meta
	Type     string
	Children []Node
}

func (*Program) node()     {}
func (*CallExpr) node()    {}
func (*Ident) node()       {}
func (*MemberExpr) node()  {}
func (*StringLit) node()   {}
func (*TemplateLit) node() {}
func (*NumberLit) node()   {}
func (*FuncExpr) node()    {}
func (*Other) node()       {}
